// Package errorevent provides the event dispatched when an asynchronous
// operation fails.
package errorevent

import (
	"fmt"

	"github.com/panda-media/events/contract"
	"github.com/panda-media/events/event"
)

// ErrorEvent types
const (
	ERROR = "error"
)

// ErrorEvent extends Event with a human-readable detail and a numeric error
// code. The fields describe a failure that occurred elsewhere; constructing
// or cloning the event itself cannot fail.
type ErrorEvent struct {
	event.Event
	text    string
	errorID int
}

var _ contract.Event = (*ErrorEvent)(nil)

// Option configures an ErrorEvent during New.
type Option func(*options)

type options struct {
	bubbles    bool
	cancelable bool
	text       string
	errorID    int
}

// WithBubbles sets the bubbles flag, false by default.
func WithBubbles(bubbles bool) Option {
	return func(o *options) { o.bubbles = bubbles }
}

// WithCancelable sets the cancelable flag, false by default.
func WithCancelable(cancelable bool) Option {
	return func(o *options) { o.cancelable = cancelable }
}

// WithText sets the human-readable detail, empty by default.
func WithText(text string) Option {
	return func(o *options) { o.text = text }
}

// WithErrorID sets the numeric error code, 0 by default.
func WithErrorID(errorID int) Option {
	return func(o *options) { o.errorID = errorID }
}

// New creates an ErrorEvent object.
func New(typ string, opts ...Option) *ErrorEvent {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return new(ErrorEvent).Init(typ, o.bubbles, o.cancelable, o.text, o.errorID)
}

// Init this class.
func (e *ErrorEvent) Init(typ string, bubbles, cancelable bool, text string, errorID int) *ErrorEvent {
	e.Event.Init(typ, bubbles, cancelable)
	e.text = text
	e.errorID = errorID
	return e
}

// Text returns the human-readable detail of the failure.
func (e *ErrorEvent) Text() string { return e.text }

// ErrorID returns the numeric code of the failure.
func (e *ErrorEvent) ErrorID() int { return e.errorID }

// Clone an instance of an ErrorEvent.
func (e *ErrorEvent) Clone() contract.Event {
	return new(ErrorEvent).Init(e.Type(), e.Bubbles(), e.Cancelable(), e.text, e.errorID)
}

// String returns a string containing all the properties of the ErrorEvent
// object.
func (e *ErrorEvent) String() string {
	return fmt.Sprintf("[ErrorEvent type=%q bubbles=%t cancelable=%t text=%q errorID=%d]",
		e.Type(), e.Bubbles(), e.Cancelable(), e.text, e.errorID)
}
