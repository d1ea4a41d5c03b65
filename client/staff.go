package client

import (
	"context"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

type StaffService struct {
	c *Client
}

func (c *Client) Staff() *StaffService {
	return &StaffService{c: c}
}

type StaffRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
	Image    string `json:"image,omitempty"`
}

func (s *StaffService) List(ctx context.Context) ([]domain.User, Envelope) {
	return into[[]domain.User](s.c.Get(ctx, "/staff"))
}

func (s *StaffService) Get(ctx context.Context, id string) (*domain.User, Envelope) {
	return into[*domain.User](s.c.Get(ctx, "/staff/"+id))
}

func (s *StaffService) Create(ctx context.Context, req StaffRequest) (*domain.User, Envelope) {
	return into[*domain.User](s.c.Post(ctx, "/staff", req))
}

func (s *StaffService) Update(ctx context.Context, id string, req StaffRequest) (*domain.User, Envelope) {
	return into[*domain.User](s.c.Put(ctx, "/staff/"+id, req))
}

func (s *StaffService) Delete(ctx context.Context, id string) Envelope {
	return s.c.Delete(ctx, "/staff/"+id)
}
