package notify

import "sync"

// Topic names one of the independent state silos. Subscribers use topics to
// decide which part of a rendered view is stale.
type Topic string

const (
	TopicCatalog  Topic = "catalog"
	TopicProgress Topic = "progress"
	TopicNotes    Topic = "notes"
	TopicStreak   Topic = "streak"
	// TopicAll fires once after a backup import replaces every silo.
	TopicAll Topic = "all"
)

// Hub is a synchronous change-notification fan-out. Usecases publish after a
// successful mutation; presentation layers subscribe and re-read. Delivery
// happens on the publisher's goroutine in subscription order, which keeps
// "writes happen synchronously before the next read" true for subscribers.
type Hub struct {
	mu   sync.Mutex
	subs []func(Topic)
}

func NewHub() *Hub {
	return &Hub{}
}

func (h *Hub) Subscribe(fn func(Topic)) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs = append(h.subs, fn)
}

func (h *Hub) Publish(topic Topic) {
	h.mu.Lock()
	subs := make([]func(Topic), len(h.subs))
	copy(subs, h.subs)
	h.mu.Unlock()
	for _, fn := range subs {
		fn(topic)
	}
}
