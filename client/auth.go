package client

import (
	"context"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

type AuthService struct {
	c *Client
}

func (c *Client) Auth() *AuthService {
	return &AuthService{c: c}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*domain.User, Envelope) {
	return into[*domain.User](s.c.Post(ctx, "/auth/register", req))
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*domain.Session, Envelope) {
	return into[*domain.Session](s.c.Post(ctx, "/auth/login", req))
}

// Refresh exchanges the refresh token cookie for a new session. The cookie
// rides on the http client's jar, not on this SDK.
func (s *AuthService) Refresh(ctx context.Context) (*domain.Session, Envelope) {
	return into[*domain.Session](s.c.Post(ctx, "/auth/refresh", nil))
}

func (s *AuthService) Logout(ctx context.Context) Envelope {
	return s.c.Post(ctx, "/auth/logout", nil)
}
