package services

import (
	"context"
	"testing"

	"VisionCare360/sse"
	"VisionCare360/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertNotificationOnFormCollections(t *testing.T) {
	n, ok := InsertNotification(util.AppointmentCollection, "insert")
	require.True(t, ok)
	assert.Equal(t, util.AppointmentCollection, n.Collection)
	assert.Equal(t, "New appointment request received", n.Message)

	n, ok = InsertNotification(util.ContactCollection, "insert")
	require.True(t, ok)
	assert.Equal(t, "New contact message received", n.Message)
}

func TestInsertNotificationIgnoresNonInserts(t *testing.T) {
	for _, op := range []string{"update", "replace", "delete"} {
		_, ok := InsertNotification(util.AppointmentCollection, op)
		assert.False(t, ok, op)
	}
}

// Content edits refresh the snapshot but never chime.
func TestInsertNotificationIgnoresContentCollections(t *testing.T) {
	_, ok := InsertNotification(util.DoctorCollection, "insert")
	assert.False(t, ok)
	_, ok = InsertNotification(util.ServiceCollection, "insert")
	assert.False(t, ok)
}

/*
* Existing documents reach a fresh client as the initial stats frame
* Only an insert observed on the stream afterwards raises a
* notification event, and exactly one of it
 */
func TestDashboardStreamNotifiesOnNewInsertsOnly(t *testing.T) {
	hub := NewDashboardHub()
	client := make(chan sse.Event, 8)
	hub.Broadcaster.Register(client)

	// the snapshot a subscriber gets on connect, however much data it
	// already holds
	hub.Broadcaster.Broadcast(sse.Event{Name: "stats", Data: hub.Stats()})

	// one new booking plus noise observed on the change streams
	changes := []struct{ collection, op string }{
		{util.AppointmentCollection, "insert"},
		{util.AppointmentCollection, "update"},
		{util.ContactCollection, "delete"},
	}
	for _, change := range changes {
		if notification, ok := InsertNotification(change.collection, change.op); ok {
			hub.Broadcaster.Broadcast(sse.Event{Name: "notification", Data: notification})
		}
	}
	hub.Broadcaster.Unregister(client)

	notifications := 0
	for event := range client {
		if event.Name == "notification" {
			notifications++
		}
	}
	assert.Equal(t, 1, notifications)
}

func TestDegradedModeStartsOnePoller(t *testing.T) {
	hub := NewDashboardHub()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.True(t, hub.fallbackToPolling(ctx))

	// later failed watchers must not add pollers
	assert.False(t, hub.fallbackToPolling(ctx))
	assert.False(t, hub.fallbackToPolling(ctx))
}
