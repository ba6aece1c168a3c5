// Package creational is a small catalogue of object-construction idioms in Go.
//
// Each idiom lives in its own package and shares no code with the others:
//
//   - builder:   a Builder interface driven by a stateless Director through
//     three fixed recipes, plus a recording builder and a zap logging decorator
//   - prototype: Car / CarFactory (independent clones) and Library
//     (expensive construction, shallow Clone that shares the book list)
//   - singleton: naive, double-checked locking and sync.OnceValue variants,
//     each as a process-wide accessor and as a generic cell
//
// Supporting packages:
//
//   - config:         viper-backed settings for the demo CLI (CREATIONAL_ env prefix)
//   - cmd/creational: cobra CLI that runs every idiom and logs with zap
//
// The library packages never panic on their own; failures inside user
// supplied builders or constructors propagate to the caller unchanged.
package creational
