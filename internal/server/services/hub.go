package services

import (
	"sync"

	"github.com/dmitrijs2005/railticket/internal/observe"
)

// Hub signals WatchUser streams that a user row changed. Each user has a
// revision counter; subscribers re-read the row whenever it moves. Topics are
// dropped when their last subscriber leaves.
type Hub struct {
	mu     sync.Mutex
	topics map[string]*observe.Value[uint64]
}

func NewHub() *Hub {
	return &Hub{topics: make(map[string]*observe.Value[uint64])}
}

// Subscribe returns a channel that yields once immediately and again after
// every Notify for userID. Bursts of notifications may coalesce.
func (h *Hub) Subscribe(userID string) (<-chan uint64, func()) {
	h.mu.Lock()
	topic, ok := h.topics[userID]
	if !ok {
		topic = observe.NewValue[uint64](0)
		h.topics[userID] = topic
	}
	ch, cancel := topic.Subscribe()
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			cancel()
			h.mu.Lock()
			if topic.Subscribers() == 0 && h.topics[userID] == topic {
				delete(h.topics, userID)
			}
			h.mu.Unlock()
		})
	}
}

// Notify bumps the revision of userID. Without subscribers it does nothing.
func (h *Hub) Notify(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if topic, ok := h.topics[userID]; ok {
		topic.Store(topic.Load() + 1)
	}
}

// Watchers reports the number of open subscriptions across all users.
func (h *Hub) Watchers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, t := range h.topics {
		n += t.Subscribers()
	}
	return n
}
