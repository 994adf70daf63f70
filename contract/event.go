// Package contract exposes the minimal event interface shared by every
// concrete event variant and consumed by the dispatch side.
package contract

// Event is the polymorphic surface of one dispatched event value.
//
// Implementations must be immutable after construction, so a value may be
// read concurrently without synchronization. Clone must copy every field the
// concrete variant owns, inherited and own alike; a variant whose clone
// silently drops its added fields breaks redispatch.
type Event interface {
	// Type returns the kind string used to route the event to listeners
	// registered for that kind.
	Type() string
	Bubbles() bool
	Cancelable() bool
	// Clone returns a new, independently owned copy of the event. It never
	// fails and never shares mutable state with the receiver.
	Clone() Event
	// String returns a string containing the properties of the event.
	String() string
}
