package client

import (
	"context"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

type OrdersService struct {
	c *Client
}

func (c *Client) Orders() *OrdersService {
	return &OrdersService{c: c}
}

type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type OrderRequest struct {
	TableID string             `json:"tableId"`
	Items   []OrderItemRequest `json:"items"`
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}

func (s *OrdersService) List(ctx context.Context) ([]domain.Order, Envelope) {
	return into[[]domain.Order](s.c.Get(ctx, "/orders"))
}

func (s *OrdersService) ListPending(ctx context.Context) ([]domain.Order, Envelope) {
	return into[[]domain.Order](s.c.Get(ctx, "/orders/pending"))
}

func (s *OrdersService) ListPaid(ctx context.Context) ([]domain.Order, Envelope) {
	return into[[]domain.Order](s.c.Get(ctx, "/orders/paid"))
}

func (s *OrdersService) Get(ctx context.Context, id string) (*domain.Order, Envelope) {
	return into[*domain.Order](s.c.Get(ctx, "/orders/"+id))
}

func (s *OrdersService) Create(ctx context.Context, req OrderRequest) (*domain.Order, Envelope) {
	return into[*domain.Order](s.c.Post(ctx, "/orders", req))
}

func (s *OrdersService) Update(ctx context.Context, id string, req OrderRequest) (*domain.Order, Envelope) {
	return into[*domain.Order](s.c.Put(ctx, "/orders/"+id, req))
}

func (s *OrdersService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, Envelope) {
	return into[*domain.Order](s.c.Patch(ctx, "/orders/"+id+"/status", OrderStatusRequest{Status: string(status)}))
}

func (s *OrdersService) Delete(ctx context.Context, id string) Envelope {
	return s.c.Delete(ctx, "/orders/"+id)
}
