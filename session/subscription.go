package session

import (
	"sync"

	"city-portal/models"
)

// Subscription is a live callback registration. Unsubscribe is
// idempotent.
type Subscription struct {
	once   sync.Once
	cancel func()
}

func (s *Subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

type listenerSet struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func(*models.Session)
}

func newListenerSet() *listenerSet {
	return &listenerSet{listeners: map[int]func(*models.Session){}}
}

func (l *listenerSet) add(cb func(*models.Session)) *Subscription {
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.listeners[id] = cb
	l.mu.Unlock()

	return &Subscription{cancel: func() {
		l.mu.Lock()
		delete(l.listeners, id)
		l.mu.Unlock()
	}}
}

func (l *listenerSet) notify(s *models.Session) {
	l.mu.Lock()
	callbacks := make([]func(*models.Session), 0, len(l.listeners))
	for _, cb := range l.listeners {
		callbacks = append(callbacks, cb)
	}
	l.mu.Unlock()

	for _, cb := range callbacks {
		cb(s)
	}
}
