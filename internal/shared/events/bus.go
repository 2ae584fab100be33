// Package events fans signals out to in-process subscribers.
package events

import "sync"

// Bus delivers the latest published value to each subscriber. Publishing never blocks: a
// subscriber that has not consumed the previous value sees only the newest one.
type Bus[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan T
}

func NewBus[T any]() *Bus[T] {
	return &Bus[T]{subs: map[int]chan T{}}
}

// Subscribe registers a subscriber. The returned cancel func closes the channel.
func (b *Bus[T]) Subscribe() (<-chan T, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	ch := make(chan T, 1)
	b.subs[id] = ch
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// Publish hands value to every subscriber, replacing any value still pending.
func (b *Bus[T]) Publish(value T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- value:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- value:
			default:
			}
		}
	}
}

// Subscribers returns the number of active subscribers.
func (b *Bus[T]) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
