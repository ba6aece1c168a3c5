package singleton

import (
	"sync"
	"sync/atomic"
)

// NewLazy returns an accessor that runs ctor on its first call and returns
// the cached result on every call after that. Concurrent first calls block
// until the single construction finishes. If ctor panics, every call
// re-panics with the same value.
func NewLazy[T any](ctor func() T) func() T {
	return sync.OnceValue(ctor)
}

// Lazy is the process-wide instance behind LazyInstance.
type Lazy struct {
	serial uint64
}

// Serial reports which construction produced this instance. Always 1.
func (l *Lazy) Serial() uint64 { return l.serial }

var (
	lazyBuilt    atomic.Uint64
	lazyInstance = NewLazy(func() *Lazy {
		return &Lazy{serial: lazyBuilt.Add(1)}
	})
)

// LazyInstance returns the process-wide Lazy instance.
// Safe for concurrent use.
func LazyInstance() *Lazy {
	return lazyInstance()
}
