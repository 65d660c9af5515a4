// Package vdom provides the virtual DOM node model used by collate.
//
// The VDOM is the in-memory render tree that layers and components return.
// It is deliberately small: collate only needs elements, text, fragments and
// deferred components to express wrapper layers.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// # Components
//
// A Component renders lazily. Wrapping one with Comp (or passing it as a
// child) produces a KindComponent node that the renderer evaluates inside
// its own owner scope, which is what lets context providers reach
// descendants only.
//
// # Children
//
// Children normalizes a variadic child list into nil, a single node, or a
// Fragment. It is how a built collate component turns its call-site
// children into the single children slot threaded through every layer.
package vdom
