// Package singleton shows three ways to lazily create a single process-wide
// instance, from broken to idiomatic.
//
//   - Naive (GetInstance): a plain nil check. Correct only when a single
//     goroutine performs the first access. Kept deliberately unsafe as a
//     negative example; concurrent first calls can construct several instances.
//
//   - DoubleChecked (DoubleCheckedInstance): double-checked locking. The fast
//     path is a lock-free atomic load; only the first callers take the mutex,
//     re-check, and construct. atomic.Pointer gives the publication guarantee
//     the fast path depends on: a reader either sees nil or a fully built value.
//
//   - Lazy (LazyInstance): delegates everything to sync.OnceValue. This is the
//     variant to reach for in real code.
//
// Each variant is also available as a generic building block (NaiveCell,
// CheckedCell, NewLazy) so the same construction guarantees can be applied to
// any type and exercised in tests with fresh state.
//
// Every process-wide instance reports a Serial: the ordinal of its
// construction within its variant. A correct singleton only ever reports 1.
package singleton
