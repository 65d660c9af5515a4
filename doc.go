// Package collate composes wrapper layers into a single component.
//
// Applications often need several independent providers (router, theme,
// locale, store) around their root. Nesting them by hand produces deep,
// hard-to-reorder code. A Collator folds an ordered list of layers into one
// component that threads a shared props value and a single children slot
// through every layer:
//
//	var Provider = collate.New[AppProps]().
//	    Add(func(p AppProps, children *vdom.VNode) *vdom.VNode {
//	        return RouterContext.Provider(p.Router, children)
//	    }).
//	    Add(func(p AppProps, children *vdom.VNode) *vdom.VNode {
//	        return ThemeContext.Provider(p.Theme, children)
//	    }).
//	    Add(func(p AppProps, children *vdom.VNode) *vdom.VNode {
//	        return StoreContext.Provider(p.Store, children)
//	    }).
//	    Build()
//
//	func App(p AppProps) *vdom.VNode {
//	    return Provider(p, Routes())
//	}
//
// # Ordering
//
// The first layer added is the outermost wrapper and the last layer added
// is the innermost, closest to the children. In the example above the
// store provider can read the theme, and the theme can read the router.
//
// # Props
//
// Every layer receives the same props value. Only the children argument
// differs: the innermost layer gets the call-site children, and each outer
// layer gets the output of the layer inside it. Props are passed by value;
// for struct props a layer cannot affect what other layers see.
//
// # Empty Collators
//
// A Collator with no layers builds a component that renders its children
// unchanged inside a Fragment, and nothing at all when there are none.
//
// # Errors
//
// Collators define no errors. A panic raised by a layer propagates to the
// renderer unchanged.
package collate
