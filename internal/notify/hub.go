package notify

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// EventType names a dashboard notification
type EventType string

const (
	EventPollCreated       EventType = "poll_created"
	EventPollUpdated       EventType = "poll_updated"
	EventPollDeleted       EventType = "poll_deleted"
	EventResponseSubmitted EventType = "response_submitted"
)

// Event is the envelope pushed to dashboard subscribers
type Event struct {
	Type    EventType       `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans dashboard events out to subscribers over channels. Publishers
// never touch subscriber state directly; all coordination goes through the
// hub goroutine.
type Hub struct {
	subscribers map[*Subscriber]struct{}
	mu          sync.RWMutex

	register   chan *Subscriber
	unregister chan *Subscriber
	broadcast  chan *Event
}

// Subscriber is one connected dashboard client
type Subscriber struct {
	Send chan []byte
	hub  *Hub
}

// NewHub creates the hub and starts its dispatch loop
func NewHub() *Hub {
	h := &Hub{
		subscribers: make(map[*Subscriber]struct{}),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		broadcast:   make(chan *Event, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			h.subscribers[sub] = struct{}{}
			n := len(h.subscribers)
			h.mu.Unlock()
			slog.Debug("dashboard subscriber connected", "subscribers", n)

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.subscribers[sub]; ok {
				delete(h.subscribers, sub)
				close(sub.Send)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			h.mu.RLock()
			for sub := range h.subscribers {
				select {
				case sub.Send <- data:
				default:
					// slow subscriber, drop the event
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Subscribe registers a new subscriber
func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{
		Send: make(chan []byte, 64),
		hub:  h,
	}
	h.register <- sub
	return sub
}

// Unsubscribe removes a subscriber and closes its channel
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.unregister <- sub
}

// Count reports the number of connected subscribers
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// BroadcastEvent publishes an event to every subscriber (implements
// service.Broadcaster)
func (h *Hub) BroadcastEvent(event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.broadcast <- &Event{
		Type:    EventType(event),
		Payload: data,
	}
}
