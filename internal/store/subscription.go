package store

import (
	"context"

	"github.com/dvarga/shoplist/internal/model"
)

// Subscription is a live view of the full item set. The channel carries
// one complete snapshot per committed mutation, starting with the
// contents at subscribe time. Each subscriber holds a one-slot buffer
// with latest-wins coalescing: a slow consumer skips intermediate
// snapshots but always sees the most recent committed state.
type Subscription struct {
	store *ItemStore
	ch    chan []model.ShoppingItem
}

// Items returns the snapshot channel. It is closed by Close.
func (sub *Subscription) Items() <-chan []model.ShoppingItem {
	return sub.ch
}

// Close detaches the subscription from the store and closes the snapshot
// channel. Closing twice is safe; the store itself is unaffected.
func (sub *Subscription) Close() {
	sub.store.unsubscribe(sub)
}

// push delivers a snapshot without blocking, replacing any undelivered
// older snapshot. Only called with the store's mutex held, so it never
// races the close in unsubscribe.
func (sub *Subscription) push(items []model.ShoppingItem) {
	for {
		select {
		case sub.ch <- items:
			return
		default:
			select {
			case <-sub.ch:
			default:
			}
		}
	}
}

// Subscribe registers a new live view of all items. The current contents
// (possibly empty) are delivered immediately; every committed mutation
// after that produces a fresh snapshot.
func (s *ItemStore) Subscribe() (*Subscription, error) {
	sub := &Subscription{
		store: s,
		ch:    make(chan []model.ShoppingItem, 1),
	}

	// Read and register under the lock so a write committing in between
	// cannot slip past both the initial snapshot and the notify fan-out.
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.List(context.Background())
	if err != nil {
		return nil, err
	}

	s.subs[sub] = struct{}{}
	sub.push(items)

	return sub, nil
}

func (s *ItemStore) unsubscribe(sub *Subscription) {
	s.mu.Lock()
	if _, ok := s.subs[sub]; ok {
		delete(s.subs, sub)
		close(sub.ch)
	}
	s.mu.Unlock()
}

// notify reads the committed item set and pushes it to every subscriber.
// Called after each successful mutation. The read happens under the same
// lock as the fan-out: two racing mutations must not publish their
// snapshots in the opposite order from their reads, or the coalescing
// buffer would retain the older state with no corrective push. A failed
// read-back skips the emission; subscribers keep their previous snapshot
// and the stream stays open.
func (s *ItemStore) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.List(context.Background())
	if err != nil {
		return
	}
	for sub := range s.subs {
		sub.push(items)
	}
}
