package state

import (
	"context"
	"sync"

	"github.com/fevziatanoglu/cafe-management/client"
	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

// Session holds the logged-in user and access token. It backs the client's
// TokenSource, so every API call reads the current token through it.
type Session struct {
	notifier

	api *client.AuthService

	mu      sync.RWMutex
	session *domain.Session
}

func NewSession(api *client.AuthService) *Session {
	return &Session{api: api}
}

// AccessToken implements client.TokenSource.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return ""
	}
	return s.session.Token
}

func (s *Session) Login(ctx context.Context, username, password string) (*domain.Session, client.Envelope) {
	session, env := s.api.Login(ctx, client.LoginRequest{Username: username, Password: password})
	if env.Success && session != nil {
		s.set(session)
	}
	return session, env
}

// Restore refreshes the session from the refresh token cookie, typically on
// app start.
func (s *Session) Restore(ctx context.Context) client.Envelope {
	session, env := s.api.Refresh(ctx)
	if env.Success && session != nil {
		s.set(session)
	}
	return env
}

func (s *Session) Logout(ctx context.Context) client.Envelope {
	env := s.api.Logout(ctx)

	// drop local state regardless, the server token may already be gone
	s.set(nil)

	return env
}

func (s *Session) set(session *domain.Session) {
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()
	s.notify()
}

func (s *Session) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *Session) LoggedIn() bool {
	return s.Current() != nil
}

// User returns the logged-in user, or nil.
func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil
	}
	u := s.session.User
	return &u
}
