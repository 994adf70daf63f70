// Package drmauthenticationerrorevent provides the event dispatched when
// authentication against a media-rights server is rejected.
package drmauthenticationerrorevent

import (
	"fmt"

	"github.com/panda-media/events/contract"
	"github.com/panda-media/events/errorevent"
)

// DRMAuthenticationErrorEvent types
const (
	AUTHENTICATION_ERROR = "authenticationError"
)

// DRMAuthenticationErrorEvent extends ErrorEvent with a finer-grained
// sub-error code and the identity of the rejecting rights server. The server
// URL and domain are optional: a nil value means the producer did not supply
// one, which is distinct from an empty string.
type DRMAuthenticationErrorEvent struct {
	errorevent.ErrorEvent
	subErrorID int
	serverURL  *string
	domain     *string
}

var _ contract.Event = (*DRMAuthenticationErrorEvent)(nil)

// Option configures a DRMAuthenticationErrorEvent during New.
type Option func(*options)

type options struct {
	bubbles    bool
	cancelable bool
	text       string
	errorID    int
	subErrorID int
	serverURL  *string
	domain     *string
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

// WithServerURL sets the URL of the rejecting rights server, absent by
// default.
func WithServerURL(serverURL string) Option {
	return func(o *options) { o.serverURL = &serverURL }
}

// WithDomain sets the content domain of the rights server, absent by default.
func WithDomain(domain string) Option {
	return func(o *options) { o.domain = &domain }
}

// New creates a DRMAuthenticationErrorEvent object. Any string is accepted as
// the type and any error codes are accepted; this is a data carrier, not a
// validating constructor.
func New(typ string, opts ...Option) *DRMAuthenticationErrorEvent {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return new(DRMAuthenticationErrorEvent).Init(typ, o.bubbles, o.cancelable, o.text,
		o.errorID, o.subErrorID, o.serverURL, o.domain)
}

// Init this class. The optional string pointers are copied so the event never
// shares them with the caller.
func (e *DRMAuthenticationErrorEvent) Init(typ string, bubbles, cancelable bool, text string,
	errorID, subErrorID int, serverURL, domain *string) *DRMAuthenticationErrorEvent {
	e.ErrorEvent.Init(typ, bubbles, cancelable, text, errorID)
	e.subErrorID = subErrorID
	e.serverURL = copyString(serverURL)
	e.domain = copyString(domain)
	return e
}

// SubErrorID returns the finer-grained error code.
func (e *DRMAuthenticationErrorEvent) SubErrorID() int { return e.subErrorID }

// ServerURL returns the URL of the rejecting rights server, or nil if the
// producer did not supply one. The returned pointer is a copy; writing
// through it cannot alter the event.
func (e *DRMAuthenticationErrorEvent) ServerURL() *string { return copyString(e.serverURL) }

// Domain returns the content domain of the rights server, or nil if the
// producer did not supply one. The returned pointer is a copy; writing
// through it cannot alter the event.
func (e *DRMAuthenticationErrorEvent) Domain() *string { return copyString(e.domain) }

// Clone an instance of a DRMAuthenticationErrorEvent. Every field, inherited
// and own, is copied by value; absent optional fields stay absent.
func (e *DRMAuthenticationErrorEvent) Clone() contract.Event {
	return new(DRMAuthenticationErrorEvent).Init(e.Type(), e.Bubbles(), e.Cancelable(),
		e.Text(), e.ErrorID(), e.subErrorID, e.serverURL, e.domain)
}

// String returns a string containing all the properties of the
// DRMAuthenticationErrorEvent object.
func (e *DRMAuthenticationErrorEvent) String() string {
	return fmt.Sprintf("[DRMAuthenticationErrorEvent type=%q text=%q errorID=%d subErrorID=%d serverURL=%s domain=%s]",
		e.Type(), e.Text(), e.ErrorID(), e.subErrorID, deref(e.serverURL), deref(e.domain))
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func deref(p *string) string {
	if p == nil {
		return "<absent>"
	}
	return *p
}
