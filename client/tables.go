package client

import (
	"context"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

type TablesService struct {
	c *Client
}

func (c *Client) Tables() *TablesService {
	return &TablesService{c: c}
}

type TableRequest struct {
	Number string `json:"number"`
	Status string `json:"status,omitempty"`
}

type TableStatusRequest struct {
	Status string `json:"status"`
}

func (s *TablesService) List(ctx context.Context) ([]domain.Table, Envelope) {
	return into[[]domain.Table](s.c.Get(ctx, "/tables"))
}

func (s *TablesService) ListWithOrders(ctx context.Context) ([]domain.TableWithOrders, Envelope) {
	return into[[]domain.TableWithOrders](s.c.Get(ctx, "/tables/with-orders"))
}

func (s *TablesService) Get(ctx context.Context, id string) (*domain.Table, Envelope) {
	return into[*domain.Table](s.c.Get(ctx, "/tables/"+id))
}

func (s *TablesService) Create(ctx context.Context, req TableRequest) (*domain.Table, Envelope) {
	return into[*domain.Table](s.c.Post(ctx, "/tables", req))
}

func (s *TablesService) Update(ctx context.Context, id string, req TableRequest) (*domain.Table, Envelope) {
	return into[*domain.Table](s.c.Put(ctx, "/tables/"+id, req))
}

func (s *TablesService) UpdateStatus(ctx context.Context, id string, status domain.TableStatus) (*domain.Table, Envelope) {
	return into[*domain.Table](s.c.Patch(ctx, "/tables/"+id+"/status", TableStatusRequest{Status: string(status)}))
}

func (s *TablesService) Delete(ctx context.Context, id string) Envelope {
	return s.c.Delete(ctx, "/tables/"+id)
}
