package scope

import "github.com/vango-dev/collate/pkg/vdom"

// Context carries a typed value down the component tree.
// Create a context with CreateContext, provide values with Provider,
// and read them with Use.
//
// Example:
//
//	var ThemeContext = scope.CreateContext("light")
//
//	func App() *vdom.VNode {
//	    return ThemeContext.Provider("dark",
//	        Header(),
//	        Main(),
//	    )
//	}
//
//	func Button() *vdom.VNode {
//	    return vdom.Comp(vdom.Func(func() *vdom.VNode {
//	        return vdom.Button(vdom.Class("btn-" + ThemeContext.Use()))
//	    }))
//	}
type Context[T any] struct {
	// key uniquely identifies this context in owner value maps
	key any

	defaultValue T
}

// contextKey wraps Context to create a unique, comparable key type.
type contextKey[T any] struct {
	ctx *Context[T]
}

// CreateContext creates a new context with the given default value.
// The default value is returned by Use when no Provider is found.
func CreateContext[T any](defaultValue T) *Context[T] {
	ctx := &Context[T]{defaultValue: defaultValue}
	ctx.key = contextKey[T]{ctx: ctx}
	return ctx
}

// Provider wraps children with this context's value. It returns a
// component node; when rendered, the value is stored on that component's
// own scope, so descendants see it and siblings do not.
func (c *Context[T]) Provider(value T, children ...any) *vdom.VNode {
	return vdom.Comp(&providerComponent[T]{
		ctx:      c,
		value:    value,
		children: children,
	})
}

// Use returns the value of the nearest Provider above the current render
// scope, or the default value when there is none (including outside a
// render).
func (c *Context[T]) Use() T {
	if owner := Current(); owner != nil {
		if value, ok := owner.GetValue(c.key); ok {
			if typed, ok := value.(T); ok {
				return typed
			}
		}
	}
	return c.defaultValue
}

// Default returns the default value for this context.
func (c *Context[T]) Default() T {
	return c.defaultValue
}

type providerComponent[T any] struct {
	ctx      *Context[T]
	value    T
	children []any
}

func (p *providerComponent[T]) Render() *vdom.VNode {
	if owner := Current(); owner != nil {
		owner.SetValue(p.ctx.key, p.value)
	}
	return vdom.Fragment(p.children...)
}
