package state

import (
	"context"
	"sync"

	"github.com/fevziatanoglu/cafe-management/client"
	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

// Cafe is a single slot: the admin owns one cafe profile.
type Cafe struct {
	notifier

	api *client.CafesService

	mu      sync.RWMutex
	cafe    *domain.Cafe
	loading bool
}

func NewCafe(api *client.CafesService) *Cafe {
	return &Cafe{api: api}
}

func (s *Cafe) Fetch(ctx context.Context) client.Envelope {
	s.setLoading(true)

	cafe, env := s.api.Get(ctx)

	s.mu.Lock()
	if env.Success {
		s.cafe = cafe
	}
	s.loading = false
	s.mu.Unlock()

	s.notify()
	return env
}

func (s *Cafe) Create(ctx context.Context, req client.CafeRequest) (*domain.Cafe, client.Envelope) {
	cafe, env := s.api.Create(ctx, req)
	if env.Success && cafe != nil {
		s.set(cafe)
	}
	return cafe, env
}

func (s *Cafe) Update(ctx context.Context, id string, req client.CafeRequest) (*domain.Cafe, client.Envelope) {
	cafe, env := s.api.Update(ctx, id, req)
	if env.Success && cafe != nil {
		s.set(cafe)
	}
	return cafe, env
}

func (s *Cafe) set(cafe *domain.Cafe) {
	s.mu.Lock()
	s.cafe = cafe
	s.mu.Unlock()
	s.notify()
}

func (s *Cafe) Current() *domain.Cafe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cafe
}

func (s *Cafe) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Cafe) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
	s.notify()
}
