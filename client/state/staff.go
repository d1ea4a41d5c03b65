package state

import (
	"context"
	"sync"

	"github.com/fevziatanoglu/cafe-management/client"
	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

type Staff struct {
	notifier

	api *client.StaffService

	mu       sync.RWMutex
	staff    []domain.User
	selected *domain.User
	loading  bool
}

func NewStaff(api *client.StaffService) *Staff {
	return &Staff{api: api}
}

func (s *Staff) Fetch(ctx context.Context) client.Envelope {
	s.setLoading(true)

	staff, env := s.api.List(ctx)

	s.mu.Lock()
	if env.Success {
		s.staff = staff
	}
	s.loading = false
	s.mu.Unlock()

	s.notify()
	return env
}

// Get loads a single staff account into the selected slot.
func (s *Staff) Get(ctx context.Context, id string) (*domain.User, client.Envelope) {
	user, env := s.api.Get(ctx, id)
	if env.Success && user != nil {
		s.setSelected(user)
	}
	return user, env
}

func (s *Staff) Create(ctx context.Context, req client.StaffRequest) (*domain.User, client.Envelope) {
	user, env := s.api.Create(ctx, req)
	if env.Success && user != nil {
		s.mu.Lock()
		s.staff = append(s.staff, *user)
		s.mu.Unlock()
		s.notify()
	}
	return user, env
}

func (s *Staff) Update(ctx context.Context, id string, req client.StaffRequest) (*domain.User, client.Envelope) {
	user, env := s.api.Update(ctx, id, req)
	if env.Success && user != nil {
		s.mu.Lock()
		for i, u := range s.staff {
			if u.ID == user.ID {
				s.staff[i] = *user
				break
			}
		}
		s.selected = user
		s.mu.Unlock()
		s.notify()
	}
	return user, env
}

func (s *Staff) Delete(ctx context.Context, id string) client.Envelope {
	env := s.api.Delete(ctx, id)
	if env.Success {
		s.mu.Lock()
		for i, u := range s.staff {
			if u.ID.Hex() == id {
				s.staff = append(s.staff[:i], s.staff[i+1:]...)
				break
			}
		}
		if s.selected != nil && s.selected.ID.Hex() == id {
			s.selected = nil
		}
		s.mu.Unlock()
		s.notify()
	}
	return env
}

func (s *Staff) All() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.User, len(s.staff))
	copy(out, s.staff)
	return out
}

func (s *Staff) Selected() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == nil {
		return nil
	}
	out := *s.selected
	return &out
}

func (s *Staff) setSelected(user *domain.User) {
	s.mu.Lock()
	s.selected = user
	s.mu.Unlock()
	s.notify()
}

func (s *Staff) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Staff) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
	s.notify()
}
