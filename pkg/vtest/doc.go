// Package vtest provides testing helpers for components rendered with the
// collate host renderer.
//
// # Mounting
//
// Render mounts a tree and keeps its output; Rerender swaps in a new tree,
// the way a component test re-renders with new props:
//
//	screen := vtest.Render(t, Provider(Props{A: "a"}, Probe()))
//	// screen.FirstChild() == `<div>...</div>`
//	screen.Rerender(Provider(Props{A: "1"}, Probe()))
//
// FirstChild returns the HTML of the first top-level node after components
// are expanded and fragments flattened, and "" when nothing rendered.
//
// # Render Assertions
//
//	vtest.ExpectContains(t, node, "Welcome")
//	vtest.ExpectNotContains(t, node, "Login")
//	vtest.ExpectHTML(t, node, "<p>exact</p>")
package vtest
