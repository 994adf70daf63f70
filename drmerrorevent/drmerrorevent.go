// Package drmerrorevent provides the event dispatched when the DRM subsystem
// fails to acquire or apply a content voucher.
package drmerrorevent

import (
	"fmt"

	"github.com/panda-media/events/contract"
	"github.com/panda-media/events/errorevent"
)

// DRMErrorEvent types
const (
	DRM_ERROR = "drmError"
)

// DRMErrorEvent extends ErrorEvent with a finer-grained sub-error code and
// flags telling the host whether a DRM module or system update would resolve
// the failure.
type DRMErrorEvent struct {
	errorevent.ErrorEvent
	subErrorID         int
	drmUpdateNeeded    bool
	systemUpdateNeeded bool
}

var _ contract.Event = (*DRMErrorEvent)(nil)

// Option configures a DRMErrorEvent during New.
type Option func(*options)

type options struct {
	bubbles            bool
	cancelable         bool
	text               string
	errorID            int
	subErrorID         int
	drmUpdateNeeded    bool
	systemUpdateNeeded bool
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

// WithSubErrorID sets the finer-grained error code, 0 by default.
func WithSubErrorID(subErrorID int) Option {
	return func(o *options) { o.subErrorID = subErrorID }
}

// WithDRMUpdateNeeded marks the failure as resolvable by a DRM module update.
func WithDRMUpdateNeeded(needed bool) Option {
	return func(o *options) { o.drmUpdateNeeded = needed }
}

// WithSystemUpdateNeeded marks the failure as resolvable by a system update.
func WithSystemUpdateNeeded(needed bool) Option {
	return func(o *options) { o.systemUpdateNeeded = needed }
}

// New creates a DRMErrorEvent object.
func New(typ string, opts ...Option) *DRMErrorEvent {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return new(DRMErrorEvent).Init(typ, o.bubbles, o.cancelable, o.text, o.errorID,
		o.subErrorID, o.drmUpdateNeeded, o.systemUpdateNeeded)
}

// Init this class.
func (e *DRMErrorEvent) Init(typ string, bubbles, cancelable bool, text string, errorID,
	subErrorID int, drmUpdateNeeded, systemUpdateNeeded bool) *DRMErrorEvent {
	e.ErrorEvent.Init(typ, bubbles, cancelable, text, errorID)
	e.subErrorID = subErrorID
	e.drmUpdateNeeded = drmUpdateNeeded
	e.systemUpdateNeeded = systemUpdateNeeded
	return e
}

// SubErrorID returns the finer-grained error code.
func (e *DRMErrorEvent) SubErrorID() int { return e.subErrorID }

// DRMUpdateNeeded reports whether updating the DRM module would resolve the
// failure.
func (e *DRMErrorEvent) DRMUpdateNeeded() bool { return e.drmUpdateNeeded }

// SystemUpdateNeeded reports whether updating the system would resolve the
// failure.
func (e *DRMErrorEvent) SystemUpdateNeeded() bool { return e.systemUpdateNeeded }

// Clone an instance of a DRMErrorEvent.
func (e *DRMErrorEvent) Clone() contract.Event {
	return new(DRMErrorEvent).Init(e.Type(), e.Bubbles(), e.Cancelable(), e.Text(), e.ErrorID(),
		e.subErrorID, e.drmUpdateNeeded, e.systemUpdateNeeded)
}

// String returns a string containing all the properties of the DRMErrorEvent
// object.
func (e *DRMErrorEvent) String() string {
	return fmt.Sprintf("[DRMErrorEvent type=%q text=%q errorID=%d subErrorID=%d drmUpdateNeeded=%t systemUpdateNeeded=%t]",
		e.Type(), e.Text(), e.ErrorID(), e.subErrorID, e.drmUpdateNeeded, e.systemUpdateNeeded)
}
