package events_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/panda-media/events"
	"github.com/panda-media/events/contract"
	drmauth "github.com/panda-media/events/drmauthenticationerrorevent"
	"github.com/panda-media/events/event"
)

func TestDispatchRoutesByKind(t *testing.T) {
	t.Parallel()

	d := events.NewEventDispatcher(nil)

	var got []contract.Event
	d.AddEventListener(drmauth.AUTHENTICATION_ERROR, func(e contract.Event) {
		got = append(got, e)
	}, 0)

	d.DispatchEvent(event.New(event.COMPLETE))
	d.DispatchEvent(drmauth.New(drmauth.AUTHENTICATION_ERROR, drmauth.WithSubErrorID(42)))

	require.Len(t, got, 1)
	failure, ok := got[0].(*drmauth.DRMAuthenticationErrorEvent)
	require.True(t, ok)
	assert.Equal(t, 42, failure.SubErrorID())
}

func TestCountLimitedListener(t *testing.T) {
	t.Parallel()

	d := events.NewEventDispatcher(nil)

	calls := 0
	d.AddEventListener(event.CLOSE, func(contract.Event) { calls++ }, 2)

	for i := 0; i < 5; i++ {
		d.DispatchEvent(event.New(event.CLOSE))
	}

	assert.Equal(t, 2, calls)
	assert.False(t, d.HasEventListener(event.CLOSE))
}

func TestRemoveEventListener(t *testing.T) {
	t.Parallel()

	d := events.NewEventDispatcher(nil)

	calls := 0
	handler := func(contract.Event) { calls++ }

	d.AddEventListener(event.CONNECT, handler, 0)
	require.True(t, d.HasEventListener(event.CONNECT))

	d.RemoveEventListener(event.CONNECT, handler)
	assert.False(t, d.HasEventListener(event.CONNECT))

	d.DispatchEvent(event.New(event.CONNECT))
	assert.Zero(t, calls)
}

func TestRemoveAllListenersOfKind(t *testing.T) {
	t.Parallel()

	d := events.NewEventDispatcher(nil)
	d.AddEventListener(event.CLEAR, func(contract.Event) {}, 0)
	d.AddEventListener(event.CLEAR, func(contract.Event) {}, 0)

	d.RemoveEventListener(event.CLEAR, nil)
	assert.False(t, d.HasEventListener(event.CLEAR))
}

func TestListenerPanicIsRecoveredAndLogged(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.ErrorLevel)
	d := events.NewEventDispatcher(zap.New(core))

	delivered := 0
	d.AddEventListener(event.CANCEL, func(contract.Event) { panic("listener bug") }, 0)
	d.AddEventListener(event.CANCEL, func(contract.Event) { delivered++ }, 0)

	require.NotPanics(t, func() {
		d.DispatchEvent(event.New(event.CANCEL))
	})

	assert.Equal(t, 1, delivered, "remaining listeners still run")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "event handler panicked", logs.All()[0].Message)
}

func TestConcurrentDispatchDeliversClones(t *testing.T) {
	t.Parallel()

	d := events.NewEventDispatcher(nil)

	var mu sync.Mutex
	var got []contract.Event
	record := func(e contract.Event) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e)
	}
	d.AddEventListener(drmauth.AUTHENTICATION_ERROR, record, 0)
	d.AddEventListener(drmauth.AUTHENTICATION_ERROR, record, 0)

	original := drmauth.New(drmauth.AUTHENTICATION_ERROR,
		drmauth.WithErrorID(3001),
		drmauth.WithSubErrorID(42),
		drmauth.WithServerURL("https://drm.example.com/auth"),
	)
	d.DispatchEventConcurrently(original)

	require.Len(t, got, 2)
	require.NotSame(t, got[0], got[1])

	for _, e := range got {
		clone, ok := e.(*drmauth.DRMAuthenticationErrorEvent)
		require.True(t, ok)
		require.NotSame(t, original, clone)
		assert.Equal(t, 3001, clone.ErrorID())
		assert.Equal(t, 42, clone.SubErrorID())
		require.NotNil(t, clone.ServerURL())
		assert.Equal(t, "https://drm.example.com/auth", *clone.ServerURL())
	}
}

func TestDispatchWithNoListeners(t *testing.T) {
	t.Parallel()

	d := events.NewEventDispatcher(nil)
	require.NotPanics(t, func() {
		d.DispatchEvent(event.New(event.OPEN))
		d.DispatchEventConcurrently(event.New(event.OPEN))
	})
}
