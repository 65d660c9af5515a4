// Package render provides server-side rendering of VNode trees to HTML.
//
// It is the host engine collate components are rendered with:
//
//   - HTML5 element rendering with void and boolean attribute handling
//   - Text and attribute escaping
//   - Deferred components rendered in their own owner scope
//   - Full page rendering with DOCTYPE, head, body
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// # Scopes
//
// Every render pass runs under a fresh scope.Owner. Each KindComponent node
// gets a child Owner, and the component's output is rendered inside it.
// A context Provider therefore reaches exactly the subtree it wraps, and a
// re-render starts from clean scopes with no values left over from the
// previous pass.
//
// # Errors
//
// Render returns write errors and unknown node kinds. Panics raised by
// components propagate to the caller unchanged.
package render
