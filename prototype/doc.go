// Package prototype creates objects by copying an existing instance instead of
// constructing them from scratch.
//
// Two flavors are provided:
//
//   - Car / CarFactory: the factory owns a single prototype Car and hands out
//     independent clones. Callers never receive the prototype itself.
//
//   - Library: building a Library from a title runs an expensive step
//     (generating the book list and then waiting). Clone skips that step and
//     shares the already built book list with the new instance.
//
// Library.Clone is a shallow copy on purpose. The clone's BooksList shares its
// backing array with the source, so writing BooksList[i] on one instance is
// visible from every instance in the same lineage. Treat the list as read-only
// after construction.
package prototype
