package session

import (
	"context"
	"sync"

	"city-portal/models"
)

// Provider holds the single shared session value. On construction it
// asks the auth client for the current session once and then tracks
// auth-state changes; each change replaces the held value and is fanned
// out to the provider's own subscribers. Errors from the initial fetch
// leave the session empty.
type Provider struct {
	mu      sync.RWMutex
	current *models.Session

	authSub   *Subscription
	listeners *listenerSet
}

func NewProvider(ctx context.Context, auth AuthClient) *Provider {
	p := &Provider{listeners: newListenerSet()}

	if current, err := auth.GetSession(ctx); err == nil {
		p.current = current
	}

	p.authSub = auth.OnAuthStateChange(p.set)
	return p
}

func (p *Provider) set(s *models.Session) {
	p.mu.Lock()
	p.current = s
	p.mu.Unlock()
	p.listeners.notify(s)
}

// Current returns the held session, or nil when signed out or when the
// held token has lapsed since the last auth-state change.
func (p *Provider) Current() *models.Session {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.current != nil && p.current.Expired() {
		return nil
	}
	return p.current
}

// Subscribe registers a callback fired on every session replacement.
func (p *Provider) Subscribe(cb func(*models.Session)) *Subscription {
	return p.listeners.add(cb)
}

// Close detaches the provider from the auth client.
func (p *Provider) Close() {
	if p.authSub != nil {
		p.authSub.Unsubscribe()
	}
}
