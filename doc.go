// Package events implements the event-object model of an emulated multimedia
// runtime's event-dispatch subsystem.
//
// The model is a small closed hierarchy of immutable, cloneable event values:
//
//   - event.Event: type, bubbles, cancelable
//   - errorevent.ErrorEvent: adds text and errorID
//   - drmerrorevent.DRMErrorEvent: adds subErrorID and update flags
//   - drmauthenticationerrorevent.DRMAuthenticationErrorEvent: adds
//     subErrorID, serverURL and domain
//
// Every variant satisfies contract.Event and supplies its own Clone that
// copies the full field set, so a single logical event can be handed to any
// number of independent consumers without aliasing. This package holds the
// EventDispatcher that routes event values to listeners registered for their
// kind string. It makes no ordering, bubbling or capture guarantees.
package events
