// Package observe holds a value that readers can poll or subscribe to.
//
// Subscribers get a channel with a buffer of one that always holds the most
// recent value they have not received yet. Slow subscribers miss
// intermediate values but never the latest one, and Store never blocks.
package observe

import "sync"

type Value[T any] struct {
	mu   sync.Mutex
	v    T
	subs map[int]chan T
	next int
}

func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{v: initial, subs: make(map[int]chan T)}
}

func (o *Value[T]) Load() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.v
}

// Store replaces the value and notifies every subscriber.
func (o *Value[T]) Store(v T) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.v = v
	for _, ch := range o.subs {
		offerLatest(ch, v)
	}
}

// Subscribe returns a channel primed with the current value. cancel removes
// the subscription and closes the channel; it may be called more than once.
func (o *Value[T]) Subscribe() (<-chan T, func()) {
	ch := make(chan T, 1)

	o.mu.Lock()
	id := o.next
	o.next++
	o.subs[id] = ch
	ch <- o.v
	o.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			o.mu.Lock()
			delete(o.subs, id)
			close(ch)
			o.mu.Unlock()
		})
	}
	return ch, cancel
}

// Subscribers reports how many subscriptions are open.
func (o *Value[T]) Subscribers() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subs)
}

// offerLatest replaces whatever is buffered in ch with v. Callers hold the
// lock, so no other sender can fill the slot in between.
func offerLatest[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}
