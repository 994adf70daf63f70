// Package event provides the base value of the event hierarchy.
package event

import (
	"fmt"

	"github.com/panda-media/events/contract"
)

// Event types
const (
	ACTIVATE = "activate"
	CANCEL   = "cancel"
	CHANGE   = "change"
	CLEAR    = "clear"
	CLOSE    = "close"
	COMPLETE = "complete"
	CONNECT  = "connect"
	OPEN     = "open"
)

// Event carries the fields common to every variant: the kind string and the
// bubbles/cancelable flags. It is immutable after Init.
type Event struct {
	typ        string
	bubbles    bool
	cancelable bool
}

var _ contract.Event = (*Event)(nil)

// Option configures an Event during New.
type Option func(*options)

type options struct {
	bubbles    bool
	cancelable bool
}

// WithBubbles sets the bubbles flag, false by default.
func WithBubbles(bubbles bool) Option {
	return func(o *options) { o.bubbles = bubbles }
}

// WithCancelable sets the cancelable flag, false by default.
func WithCancelable(cancelable bool) Option {
	return func(o *options) { o.cancelable = cancelable }
}

// New creates an Event object. Any string is accepted as the type; no
// validation is performed.
func New(typ string, opts ...Option) *Event {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return new(Event).Init(typ, o.bubbles, o.cancelable)
}

// Init this class. Variant packages call it to chain base construction.
func (e *Event) Init(typ string, bubbles, cancelable bool) *Event {
	e.typ = typ
	e.bubbles = bubbles
	e.cancelable = cancelable
	return e
}

// Type returns the kind string set at construction.
func (e *Event) Type() string { return e.typ }

// Bubbles reports whether the event participates in the bubbling phase.
func (e *Event) Bubbles() bool { return e.bubbles }

// Cancelable reports whether the behavior associated with the event can be
// prevented.
func (e *Event) Cancelable() bool { return e.cancelable }

// Clone an instance of an Event.
func (e *Event) Clone() contract.Event {
	return new(Event).Init(e.typ, e.bubbles, e.cancelable)
}

// String returns a string containing all the properties of the Event object.
func (e *Event) String() string {
	return fmt.Sprintf("[Event type=%q bubbles=%t cancelable=%t]", e.typ, e.bubbles, e.cancelable)
}
