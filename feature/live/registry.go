package live

import (
	"sync"
	"time"
)

// Event is one change notification fanned out to live subscribers.
type Event struct {
	Type      string    `json:"type"`
	EventType string    `json:"event_type"`
	Category  string    `json:"category"`
	PageID    string    `json:"page_id"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// Subscriber receives broadcast events. Send returning an error marks the
// subscriber dead.
type Subscriber interface {
	Send(Event) error
}

// Registry is the process-wide set of live subscribers. It is safe for
// concurrent register/unregister/broadcast; whether a subscriber registering
// during an in-flight broadcast receives that event is unspecified.
type Registry struct {
	mu   sync.Mutex
	subs map[Subscriber]struct{}
}

// NewRegistry creates an empty subscriber registry.
func NewRegistry() *Registry {
	return &Registry{subs: make(map[Subscriber]struct{})}
}

// Register adds a subscriber.
func (r *Registry) Register(s Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[s] = struct{}{}
}

// Unregister removes a subscriber. Removing an unknown subscriber is a no-op.
func (r *Registry) Unregister(s Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subs, s)
}

// Len returns the current subscriber count.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// Clear drops every subscriber, for shutdown.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = make(map[Subscriber]struct{})
}

// Broadcast delivers the event to every registered subscriber and returns
// the number of successful deliveries. Subscribers whose delivery fails are
// unregistered as part of the same call. Delivery is best effort,
// at-least-once from the caller's perspective.
func (r *Registry) Broadcast(ev Event) int {
	r.mu.Lock()
	targets := make([]Subscriber, 0, len(r.subs))
	for s := range r.subs {
		targets = append(targets, s)
	}
	r.mu.Unlock()

	delivered := 0
	var dead []Subscriber
	for _, s := range targets {
		if err := s.Send(ev); err != nil {
			dead = append(dead, s)
			continue
		}
		delivered++
	}

	for _, s := range dead {
		r.Unregister(s)
	}
	return delivered
}
