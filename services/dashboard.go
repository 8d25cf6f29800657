package services

import (
	"context"
	"sync"
	"time"

	"VisionCare360/config/db"
	"VisionCare360/sse"
	"VisionCare360/util"

	"github.com/rs/zerolog/log"
)

// Notification is the new-item signal the admin panel turns into a chime
// and a toast. It only fires for documents inserted after the hub's
// initial load, never for the load itself.
type Notification struct {
	Collection string `json:"collection"`
	Message    string `json:"message"`
}

var notificationMessages = map[string]string{
	util.AppointmentCollection: "New appointment request received",
	util.ContactCollection:     "New contact message received",
}

/*
* Decide whether one change event is a new-item signal
* Only inserts on the two public form collections notify, everything
* else just refreshes the snapshot silently
 */
func InsertNotification(collection, operationType string) (Notification, bool) {
	if operationType != "insert" {
		return Notification{}, false
	}
	msg, ok := notificationMessages[collection]
	if !ok {
		return Notification{}, false
	}
	return Notification{Collection: collection, Message: msg}, true
}

// DashboardHub keeps the live dashboard snapshot current and fans it out
// over SSE. One hub per process.
type DashboardHub struct {
	Broadcaster *sse.Broadcaster

	pollOnce sync.Once

	mu    sync.RWMutex
	stats DashboardStats
}

func NewDashboardHub() *DashboardHub {
	return &DashboardHub{Broadcaster: sse.NewBroadcaster()}
}

func (h *DashboardHub) Stats() DashboardStats {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.stats
}

/*
* Fetch all four watched collections and recompute the snapshot
 */
func (h *DashboardHub) Recompute(ctx context.Context) (DashboardStats, error) {
	appointments, err := FetchAllAppointments(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	doctors, err := FetchAllDoctors(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	services, err := FetchAllServices(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	contacts, err := FetchAllContactRequests(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	stats := ComputeDashboardStats(appointments, doctors, services, contacts, time.Now())
	h.mu.Lock()
	h.stats = stats
	h.mu.Unlock()
	return stats, nil
}

// RecomputeAndBroadcast refreshes the snapshot and pushes it to every
// connected client. Used by the watchers and the midnight rollover job.
func (h *DashboardHub) RecomputeAndBroadcast(ctx context.Context) {
	stats, err := h.Recompute(ctx)
	if err != nil {
		log.Error().Err(err).Msg("dashboard recompute failed")
		return
	}
	h.Broadcaster.Broadcast(sse.Event{Name: "stats", Data: stats})
}

/*
* Load the initial snapshot, then watch the four collections
* The initial load raises no notification, that is existing data, only
* inserts observed on the change streams do
 */
func (h *DashboardHub) Start(ctx context.Context) error {
	if _, err := h.Recompute(ctx); err != nil {
		return err
	}

	watched := []string{
		util.AppointmentCollection,
		util.ContactCollection,
		util.DoctorCollection,
		util.ServiceCollection,
	}
	for _, name := range watched {
		go h.watch(ctx, name)
	}
	return nil
}

/*
* Follow one collection's change stream until the context is cancelled
* Change streams need a replica set, on a standalone Mongo the watches
* fail and the hub degrades to one shared 30s poller
 */
func (h *DashboardHub) watch(ctx context.Context, collection string) {
	coll := db.OpenCollections(collection)
	stream, err := db.Watch(ctx, coll)
	if err != nil {
		log.Warn().Err(err).Str("collection", collection).Msg("change stream unavailable")
		h.fallbackToPolling(ctx)
		return
	}
	defer stream.Close(ctx)

	for stream.Next(ctx) {
		var event struct {
			OperationType string `bson:"operationType"`
		}
		if err := stream.Decode(&event); err != nil {
			log.Error().Err(err).Str("collection", collection).Msg("failed to decode change event")
			continue
		}

		if notification, ok := InsertNotification(collection, event.OperationType); ok {
			h.Broadcaster.Broadcast(sse.Event{Name: "notification", Data: notification})
		}
		h.RecomputeAndBroadcast(ctx)
	}

	if err := stream.Err(); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Str("collection", collection).Msg("change stream closed")
	}
}

// fallbackToPolling starts the shared degraded-mode poller. Every
// failed watcher lands here but only the first call starts it, so the
// snapshot is refreshed and broadcast once per tick, not once per
// failed watch. Reports whether this call was the one that started it.
func (h *DashboardHub) fallbackToPolling(ctx context.Context) bool {
	started := false
	h.pollOnce.Do(func() {
		log.Warn().Msg("dashboard degraded to polling, new-item notifications disabled")
		go h.poll(ctx)
		started = true
	})
	return started
}

func (h *DashboardHub) poll(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			h.RecomputeAndBroadcast(ctx)
		case <-ctx.Done():
			return
		}
	}
}
