package scope

import (
	"sync"
	"sync/atomic"
)

// globalIDCounter is the source of unique owner IDs.
var globalIDCounter uint64

func nextID() uint64 {
	return atomic.AddUint64(&globalIDCounter, 1)
}

// Owner represents a component scope. Owners form a hierarchy that mirrors
// the rendered component tree: the renderer creates one child Owner per
// component node, and context values stored on an Owner are visible to
// that component's descendants only.
type Owner struct {
	id uint64

	// parent is nil for the root Owner.
	parent *Owner

	children   []*Owner
	childrenMu sync.Mutex

	// values stores context values for this scope.
	values   map[any]any
	valuesMu sync.RWMutex

	cleanups   []func()
	cleanupsMu sync.Mutex

	disposed atomic.Bool
}

// NewOwner creates a new Owner with the given parent.
// The new Owner is registered as a child of the parent.
// If parent is nil, creates a root Owner.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}
	if parent != nil {
		parent.addChild(o)
	}
	return o
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent Owner, or nil if this is a root Owner.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// Depth returns the number of ancestors above this Owner.
func (o *Owner) Depth() int {
	depth := 0
	for p := o.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

// Children returns a snapshot of the child Owners.
func (o *Owner) Children() []*Owner {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	out := make([]*Owner, len(o.children))
	copy(out, o.children)
	return out
}

// IsDisposed returns true if this Owner has been disposed.
func (o *Owner) IsDisposed() bool {
	return o.disposed.Load()
}

func (o *Owner) addChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	o.children = append(o.children, child)
}

func (o *Owner) removeChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// SetValue sets a value on this Owner.
func (o *Owner) SetValue(key, value any) {
	o.valuesMu.Lock()
	defer o.valuesMu.Unlock()
	if o.values == nil {
		o.values = make(map[any]any)
	}
	o.values[key] = value
}

// GetValue retrieves a value from this Owner or its nearest ancestor.
func (o *Owner) GetValue(key any) (any, bool) {
	for cur := o; cur != nil; cur = cur.parent {
		cur.valuesMu.RLock()
		val, ok := cur.values[key]
		cur.valuesMu.RUnlock()
		if ok {
			return val, true
		}
	}
	return nil, false
}

// OnCleanup registers fn to run when this Owner is disposed.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed.Load() {
		fn()
		return
	}
	o.cleanupsMu.Lock()
	defer o.cleanupsMu.Unlock()
	o.cleanups = append(o.cleanups, fn)
}

// Dispose tears down this Owner and its children, children first and in
// reverse creation order, then runs cleanups in reverse registration order.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}
	if o.parent != nil {
		o.parent.removeChild(o)
	}

	o.childrenMu.Lock()
	children := o.children
	o.children = nil
	o.childrenMu.Unlock()
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	o.cleanupsMu.Lock()
	cleanups := o.cleanups
	o.cleanups = nil
	o.cleanupsMu.Unlock()
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}

	o.valuesMu.Lock()
	o.values = nil
	o.valuesMu.Unlock()
}
