package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastReachesAllClients(t *testing.T) {
	b := NewBroadcaster()
	first := make(chan Event, 1)
	second := make(chan Event, 1)
	b.Register(first)
	b.Register(second)

	b.Broadcast(Event{Name: "stats", Data: 42})

	for _, client := range []chan Event{first, second} {
		select {
		case event := <-client:
			assert.Equal(t, "stats", event.Name)
			assert.Equal(t, 42, event.Data)
		case <-time.After(time.Second):
			t.Fatal("client did not receive the event")
		}
	}
}

func TestUnregisterClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	client := make(chan Event, 1)
	b.Register(client)
	require.Equal(t, 1, b.ClientCount())

	b.Unregister(client)
	assert.Equal(t, 0, b.ClientCount())
	_, open := <-client
	assert.False(t, open)

	// a second unregister of the same channel is a no-op
	b.Unregister(client)
}

func TestSlowClientIsDropped(t *testing.T) {
	b := NewBroadcaster()
	// unbuffered and never read, so the send times out
	stuck := make(chan Event)
	b.Register(stuck)

	b.Broadcast(Event{Name: "stats", Data: 1})

	assert.Equal(t, 0, b.ClientCount())
}
