package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversToAllSubscribers(t *testing.T) {
	bus := NewBus[int]()
	a, cancelA := bus.Subscribe()
	defer cancelA()
	b, cancelB := bus.Subscribe()
	defer cancelB()

	bus.Publish(3)
	assert.Equal(t, 3, receive(t, a))
	assert.Equal(t, 3, receive(t, b))
}

func TestBus_SlowSubscriberSeesLatest(t *testing.T) {
	bus := NewBus[int]()
	ch, cancel := bus.Subscribe()
	defer cancel()

	bus.Publish(1)
	bus.Publish(2)
	bus.Publish(5)
	assert.Equal(t, 5, receive(t, ch))

	select {
	case v := <-ch:
		t.Fatalf("unexpected extra value %d", v)
	default:
	}
}

func TestBus_CancelClosesAndUnregisters(t *testing.T) {
	bus := NewBus[string]()
	ch, cancel := bus.Subscribe()
	require.Equal(t, 1, bus.Subscribers())

	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, bus.Subscribers())

	bus.Publish("ignored")
}

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for value")
	}
	var zero T
	return zero
}
