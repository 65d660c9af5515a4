package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
// Accepts *VNode, []*VNode, string and Component children; nil is skipped.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0, len(children)),
	}
	node.Children = appendChildren(node.Children, children)
	return node
}

// Group is an alias for Fragment.
func Group(children ...any) *VNode {
	return Fragment(children...)
}

// Children normalizes a child list into a single node: nil when the list
// is empty, the child itself when there is exactly one, and a Fragment
// otherwise.
func Children(children ...any) *VNode {
	nodes := appendChildren(nil, children)
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		return nodes[0]
	default:
		return &VNode{Kind: KindFragment, Children: nodes}
	}
}

// appendChildren flattens child arguments onto dst.
func appendChildren(dst []*VNode, children []any) []*VNode {
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				dst = append(dst, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					dst = append(dst, c)
				}
			}
		case []any:
			dst = appendChildren(dst, v)
		case string:
			dst = append(dst, Text(v))
		case Component:
			if n := Comp(v); n != nil {
				dst = append(dst, n)
			}
		}
	}
	return dst
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Range maps a slice to VNodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		if node := fn(item, i); node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Key creates a key attribute for reconciliation.
func Key(key any) Attr {
	return attr("key", fmt.Sprintf("%v", key))
}

// Nothing returns nil, useful for conditional rendering.
func Nothing() *VNode {
	return nil
}
