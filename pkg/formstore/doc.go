// Package formstore keeps live form engines between HTTP requests.
//
// Each page render attaches a new engine and stores it under a random UUID.
// Later field events look the engine up by that id and run under a
// per-instance mutex, so events for one form are applied in arrival order
// while different forms proceed in parallel. The store is bounded by capacity
// (least recently used instance goes first) and by an idle TTL.
package formstore
