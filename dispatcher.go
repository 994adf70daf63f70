package events

import (
	"container/list"
	"reflect"
	"sync"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"

	"github.com/panda-media/events/contract"
)

// EventHandler consumes one event. A handler registered for a kind receives
// every dispatched event whose Type matches that kind.
type EventHandler func(contract.Event)

type listener struct {
	handler EventHandler
	count   int
}

// EventDispatcher routes event values to listeners registered for their kind
// string. It is safe for concurrent use. Delivery order among listeners of
// the same kind is unspecified.
type EventDispatcher struct {
	mu        sync.Mutex
	listeners map[string]*list.List
	logger    *zap.Logger
}

// NewEventDispatcher creates a dispatcher. A nil logger disables logging.
func NewEventDispatcher(logger *zap.Logger) *EventDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventDispatcher{logger: logger}
}

// AddEventListener registers handler for the given kind. A count greater
// than zero limits how many deliveries the handler receives before it is
// removed; zero means unlimited. A nil handler is ignored.
func (d *EventDispatcher) AddEventListener(kind string, handler EventHandler, count int) {
	if handler == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.listeners == nil {
		d.listeners = make(map[string]*list.List)
	}

	listeners := d.listeners[kind]
	if listeners == nil {
		listeners = list.New()
		d.listeners[kind] = listeners
	}

	listeners.PushBack(&listener{handler, count})
}

// RemoveEventListener unregisters handler from the given kind. A nil handler
// removes every listener of that kind.
func (d *EventDispatcher) RemoveEventListener(kind string, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()

	listeners := d.listeners[kind]
	if listeners == nil {
		return
	}

	if handler == nil {
		listeners.Init()
		return
	}

	p := reflect.ValueOf(handler).Pointer()

	for el := listeners.Front(); el != nil; el = el.Next() {
		ln := el.Value.(*listener)
		if reflect.ValueOf(ln.handler).Pointer() == p {
			listeners.Remove(el)
			break
		}
	}
}

// HasEventListener reports whether any listener is registered for the kind.
func (d *EventDispatcher) HasEventListener(kind string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	listeners := d.listeners[kind]
	return listeners != nil && listeners.Len() > 0
}

// DispatchEvent delivers e synchronously to every listener registered for
// e.Type(). A panicking listener is recovered and logged; it never reaches
// the producer.
func (d *EventDispatcher) DispatchEvent(e contract.Event) {
	for _, handler := range d.take(e.Type()) {
		d.invoke(handler, e)
	}
}

// DispatchEventConcurrently delivers an independently owned clone of e to
// each registered listener on its own goroutine and waits for all of them to
// return. Listeners never share the dispatched value, so none of them needs
// to synchronize around it.
func (d *EventDispatcher) DispatchEventConcurrently(e contract.Event) {
	handlers := d.take(e.Type())
	if len(handlers) == 0 {
		return
	}

	var wg conc.WaitGroup
	for _, handler := range handlers {
		handler := handler
		wg.Go(func() {
			d.invoke(handler, e.Clone())
		})
	}
	wg.Wait()
}

// take snapshots the handlers registered for kind, consuming one delivery
// from each count-limited listener. Handlers run outside the lock so they
// may register or remove listeners themselves.
func (d *EventDispatcher) take(kind string) []EventHandler {
	d.mu.Lock()
	defer d.mu.Unlock()

	listeners := d.listeners[kind]
	if listeners == nil {
		return nil
	}

	handlers := make([]EventHandler, 0, listeners.Len())

	var next *list.Element
	for el := listeners.Front(); el != nil; el = next {
		next = el.Next()

		ln := el.Value.(*listener)
		handlers = append(handlers, ln.handler)

		if ln.count > 0 {
			ln.count--
			if ln.count == 0 {
				listeners.Remove(el)
			}
		}
	}

	return handlers
}

func (d *EventDispatcher) invoke(handler EventHandler, e contract.Event) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("event handler panicked",
				zap.String("type", e.Type()),
				zap.Any("panic", r))
		}
	}()

	handler(e)
}
