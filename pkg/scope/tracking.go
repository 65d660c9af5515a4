package scope

import (
	"runtime"
	"sync"
)

// trackingContext holds the render scope state for a goroutine.
type trackingContext struct {
	// currentOwner is the Owner of the component currently rendering.
	currentOwner *Owner
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// getGoroutineID returns a unique identifier for the current goroutine,
// parsed from the "goroutine <id> " prefix of the runtime stack.
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	var id uint64
	for i := len("goroutine "); i < n; i++ {
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

func getTrackingContext() *trackingContext {
	gid := getGoroutineID()
	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*trackingContext)
	}
	ctx := &trackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

// setCurrentOwner sets the current owner and returns the previous one so
// it can be restored.
// Clearing the owner drops the goroutine's entry, so goroutines that
// leave a render hold no tracking state.
func setCurrentOwner(o *Owner) *Owner {
	if o == nil {
		gid := getGoroutineID()
		ctx, ok := trackingContexts.LoadAndDelete(gid)
		if !ok {
			return nil
		}
		return ctx.(*trackingContext).currentOwner
	}

	ctx := getTrackingContext()
	old := ctx.currentOwner
	ctx.currentOwner = o
	return old
}

// Current returns the Owner of the component currently rendering on this
// goroutine, or nil outside a render.
func Current() *Owner {
	if ctx, ok := trackingContexts.Load(getGoroutineID()); ok {
		return ctx.(*trackingContext).currentOwner
	}
	return nil
}

// WithOwner runs fn with owner as the current scope, restoring the
// previous scope afterwards, including when fn panics.
func WithOwner(owner *Owner, fn func()) {
	old := setCurrentOwner(owner)
	defer setCurrentOwner(old)
	fn()
}
