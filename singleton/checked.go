package singleton

import (
	"sync"
	"sync/atomic"
)

// State is the lifecycle of a CheckedCell.
type State int32

const (
	StateUninitialized State = iota
	StateInitializing
	StateInitialized
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateInitialized:
		return "initialized"
	default:
		return "unknown"
	}
}

// CheckedCell lazily constructs a value using double-checked locking.
//
// The value is published through an atomic.Pointer, so the unlocked fast path
// never observes a partially built value. The constructor runs at most once
// and on at most one goroutine. It must not return nil; a nil result is not
// cached and the next Get constructs again.
//
// A CheckedCell must not be copied after first use.
type CheckedCell[T any] struct {
	instance atomic.Pointer[T]
	state    atomic.Int32
	mu       sync.Mutex
	ctor     func() *T
}

// NewCheckedCell returns an empty cell that will build its value with ctor.
func NewCheckedCell[T any](ctor func() *T) *CheckedCell[T] {
	return &CheckedCell[T]{ctor: ctor}
}

// Get returns the value, constructing it on the first call.
func (c *CheckedCell[T]) Get() *T {
	if p := c.instance.Load(); p != nil {
		return p
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// another goroutine may have finished while we waited for the lock
	if p := c.instance.Load(); p != nil {
		return p
	}

	c.state.Store(int32(StateInitializing))
	defer func() {
		if c.instance.Load() == nil {
			c.state.Store(int32(StateUninitialized))
		}
	}()

	p := c.ctor()
	if p != nil {
		c.instance.Store(p)
		c.state.Store(int32(StateInitialized))
	}
	return p
}

// State reports where the cell is in its lifecycle.
func (c *CheckedCell[T]) State() State {
	return State(c.state.Load())
}

// DoubleChecked is the process-wide instance behind DoubleCheckedInstance.
type DoubleChecked struct {
	serial uint64
}

// Serial reports which construction produced this instance. Always 1.
func (d *DoubleChecked) Serial() uint64 { return d.serial }

var (
	doubleCheckedBuilt atomic.Uint64
	doubleChecked      = NewCheckedCell(func() *DoubleChecked {
		return &DoubleChecked{serial: doubleCheckedBuilt.Add(1)}
	})
)

// DoubleCheckedInstance returns the process-wide DoubleChecked instance.
// Safe for concurrent use.
func DoubleCheckedInstance() *DoubleChecked {
	return doubleChecked.Get()
}
