package collate

import "github.com/vango-dev/collate/pkg/vdom"

// RenderFunc renders props around children. It is both the signature of a
// single layer and of the function a Collator accumulates. children is nil
// when nothing was supplied.
type RenderFunc[P any] func(props P, children *vdom.VNode) *vdom.VNode

// Component is the finalized output of Build. Calling it returns a
// KindComponent node, so the layers run when the host renders the node,
// inside that node's own scope. Children follow the vdom child convention
// (*vdom.VNode, []*vdom.VNode, string, vdom.Component, nil).
type Component[P any] func(props P, children ...any) *vdom.VNode

// Collator accumulates wrapper layers. It is an immutable value: Add
// returns a new Collator and never changes the receiver, so a partially
// built Collator can be shared and extended in different directions.
//
// The zero value is an empty Collator.
type Collator[P any] struct {
	render RenderFunc[P]
	layers int
}

// New returns an empty Collator. Building it yields a component that
// renders its children unchanged.
func New[P any]() Collator[P] {
	return Collator[P]{}
}

// Collate returns a Collator seeded with render. A nil render yields an
// empty Collator, the same as New.
func Collate[P any](render RenderFunc[P]) Collator[P] {
	if render == nil {
		return Collator[P]{}
	}
	return Collator[P]{render: render, layers: 1}
}

// Add returns a new Collator with layer as the innermost wrapper: layer
// receives the original children and its output becomes the children of
// every layer added before it. Layers are called in render order only
// when the built component renders. A nil layer is ignored.
//
//	Provider := collate.New[Props]().
//	    Add(routerLayer). // outermost
//	    Add(themeLayer).
//	    Add(storeLayer).  // innermost, closest to the children
//	    Build()
func (c Collator[P]) Add(layer RenderFunc[P]) Collator[P] {
	if layer == nil {
		return c
	}
	if c.render == nil {
		return Collator[P]{render: layer, layers: 1}
	}

	outer := c.render
	return Collator[P]{
		render: func(props P, children *vdom.VNode) *vdom.VNode {
			return outer(props, layer(props, children))
		},
		layers: c.layers + 1,
	}
}

// AddAll adds each layer in order, so layers[0] ends up outermost among
// them.
func (c Collator[P]) AddAll(layers ...RenderFunc[P]) Collator[P] {
	for _, layer := range layers {
		c = c.Add(layer)
	}
	return c
}

// Empty reports whether no layer has been added.
func (c Collator[P]) Empty() bool {
	return c.render == nil
}

// Len returns the number of layers folded into the Collator.
func (c Collator[P]) Len() int {
	return c.layers
}

// Render invokes the composed layers directly, without a component
// boundary. An empty Collator returns children in a Fragment.
//
// Use Render to inline the layers into a component that is already
// rendering; use Build for a standalone component.
func (c Collator[P]) Render(props P, children *vdom.VNode) *vdom.VNode {
	if c.render == nil {
		return vdom.Fragment(children)
	}
	return c.render(props, children)
}

// Build returns a component that renders props and children through the
// composed layers. It may be called any number of times; each result
// behaves identically.
func (c Collator[P]) Build() Component[P] {
	render := c.render
	if render == nil {
		return func(_ P, children ...any) *vdom.VNode {
			return vdom.Comp(vdom.Func(func() *vdom.VNode {
				return vdom.Fragment(children...)
			}))
		}
	}

	return func(props P, children ...any) *vdom.VNode {
		slot := vdom.Children(children...)
		return vdom.Comp(vdom.Func(func() *vdom.VNode {
			return render(props, slot)
		}))
	}
}
