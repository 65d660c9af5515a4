// Package scope provides render scopes (owners) and typed contexts for the
// collate host renderer.
//
// Every component node is rendered inside its own Owner, a child of the
// Owner of the component that produced it. Context values live on owners:
// a Provider stores its value on its own scope and Use walks up the
// hierarchy to the nearest one. Because scopes follow tree position rather
// than call order, a layer may build its Provider before the outer
// providers have run; the value is resolved when the subtree renders.
//
// The current Owner is tracked per goroutine. Renders are synchronous, so
// WithOwner brackets a component render and restores the previous scope
// when it returns.
//
// Usage:
//
//	var LocaleContext = scope.CreateContext("en")
//
//	root := scope.NewOwner(nil)
//	scope.WithOwner(root, func() {
//	    root.SetValue(key, value)
//	})
package scope
