package render

import (
	"github.com/vango-dev/collate/pkg/scope"
	"github.com/vango-dev/collate/pkg/vdom"
)

// Resolve expands every component and flattens every fragment in node,
// returning the top-level nodes the tree emits. Components run in scopes
// exactly as they do in a render pass, so the result reflects provided
// context values. The input tree is not modified.
func Resolve(node *vdom.VNode) []*vdom.VNode {
	pass := scope.NewOwner(scope.Current())
	defer pass.Dispose()

	var out []*vdom.VNode
	scope.WithOwner(pass, func() {
		out = resolveInto(nil, node)
	})
	return out
}

func resolveInto(dst []*vdom.VNode, node *vdom.VNode) []*vdom.VNode {
	if node == nil {
		return dst
	}

	switch node.Kind {
	case vdom.KindFragment:
		for _, child := range node.Children {
			dst = resolveInto(dst, child)
		}
	case vdom.KindComponent:
		if node.Comp == nil {
			return dst
		}
		owner := scope.NewOwner(scope.Current())
		scope.WithOwner(owner, func() {
			dst = resolveInto(dst, node.Comp.Render())
		})
	case vdom.KindElement:
		var children []*vdom.VNode
		for _, child := range node.Children {
			children = resolveInto(children, child)
		}
		dst = append(dst, &vdom.VNode{
			Kind:     vdom.KindElement,
			Tag:      node.Tag,
			Props:    node.Props,
			Key:      node.Key,
			Children: children,
		})
	default:
		dst = append(dst, node)
	}
	return dst
}
