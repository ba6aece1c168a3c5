package singleton

import "sync/atomic"

// NaiveCell lazily constructs a value on first Get with no synchronization.
//
// It is correct only if the first Get cannot race with another Get. Under a
// concurrent first access several goroutines may each observe nil and each
// run the constructor, so callers can end up holding different instances.
type NaiveCell[T any] struct {
	instance *T
	ctor     func() *T
}

// NewNaiveCell returns an empty cell that will build its value with ctor.
func NewNaiveCell[T any](ctor func() *T) *NaiveCell[T] {
	return &NaiveCell[T]{ctor: ctor}
}

// Get returns the cached value, constructing it first if needed.
func (c *NaiveCell[T]) Get() *T {
	if c.instance == nil {
		c.instance = c.ctor()
	}
	return c.instance
}

// Naive is the process-wide instance behind GetInstance.
type Naive struct {
	serial uint64
}

// Serial reports which construction produced this instance (1 for the first).
func (n *Naive) Serial() uint64 { return n.serial }

var (
	naiveBuilt atomic.Uint64
	naive      = NewNaiveCell(func() *Naive {
		return &Naive{serial: naiveBuilt.Add(1)}
	})
)

// GetInstance returns the process-wide Naive instance.
//
// Only safe when the first call happens on a single goroutine.
func GetInstance() *Naive {
	return naive.Get()
}
