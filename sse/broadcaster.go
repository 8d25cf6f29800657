package sse

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Event is one server-sent event. Name distinguishes a stats snapshot
// from a new-item notification so the admin panel can chime on the
// latter only.
type Event struct {
	Name string
	Data interface{}
}

// Broadcaster fans events out to every connected dashboard client.
type Broadcaster struct {
	clients map[chan Event]bool
	mu      sync.Mutex
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{clients: make(map[chan Event]bool)}
}

func (b *Broadcaster) Register(client chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clients[client] = true
}

func (b *Broadcaster) Unregister(client chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.clients[client]; ok {
		delete(b.clients, client)
		close(client)
	}
}

func (b *Broadcaster) ClientCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

/*
* Send the event to every registered client
* A client that cannot take the event within a second is dropped
 */
func (b *Broadcaster) Broadcast(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for client := range b.clients {
		select {
		case client <- event:
		case <-time.After(1 * time.Second):
			delete(b.clients, client)
			close(client)
		}
	}
}

/*
* Serve the SSE stream on a gin context until the client disconnects
* first sends the event returned by initial, if any
 */
func (b *Broadcaster) Serve(c *gin.Context, initial *Event) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	client := make(chan Event, 8)
	b.Register(client)
	defer b.Unregister(client)

	if initial != nil {
		writeEvent(c, *initial)
	}

	for {
		select {
		case event, ok := <-client:
			if !ok {
				return
			}
			writeEvent(c, event)
		case <-c.Request.Context().Done():
			return
		}
	}
}

func writeEvent(c *gin.Context, event Event) {
	payload, err := json.Marshal(event.Data)
	if err != nil {
		return
	}
	fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event.Name, payload)
	c.Writer.Flush()
}
