package state

import (
	"context"
	"sync"

	"github.com/fevziatanoglu/cafe-management/client"
	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

// Orders holds the active order list. Paid orders are history and load
// lazily into their own list. Pending is a selector over the active list,
// not a second copy of the data.
type Orders struct {
	notifier

	api *client.OrdersService

	mu       sync.RWMutex
	orders   []domain.Order
	paid     []domain.Order
	selected *domain.Order
	loading  bool
}

func NewOrders(api *client.OrdersService) *Orders {
	return &Orders{api: api}
}

// Fetch replaces the whole active order list. A failed call leaves the
// current list untouched.
func (s *Orders) Fetch(ctx context.Context) client.Envelope {
	s.setLoading(true)

	orders, env := s.api.List(ctx)

	s.mu.Lock()
	if env.Success {
		s.orders = orders
	}
	s.loading = false
	s.mu.Unlock()

	s.notify()
	return env
}

// FetchPaid loads order history on demand.
func (s *Orders) FetchPaid(ctx context.Context) client.Envelope {
	orders, env := s.api.ListPaid(ctx)

	s.mu.Lock()
	if env.Success {
		s.paid = orders
	}
	s.mu.Unlock()

	s.notify()
	return env
}

// Get loads a single order into the selected slot without touching the
// list.
func (s *Orders) Get(ctx context.Context, id string) (*domain.Order, client.Envelope) {
	order, env := s.api.Get(ctx, id)
	if env.Success && order != nil {
		s.setSelected(order)
	}
	return order, env
}

func (s *Orders) Create(ctx context.Context, req client.OrderRequest) (*domain.Order, client.Envelope) {
	order, env := s.api.Create(ctx, req)
	if env.Success && order != nil {
		s.ApplyCreated(*order)
	}
	return order, env
}

func (s *Orders) Update(ctx context.Context, id string, req client.OrderRequest) (*domain.Order, client.Envelope) {
	order, env := s.api.Update(ctx, id, req)
	if env.Success && order != nil {
		s.setSelected(order)
		s.ApplyUpdated(*order)
	}
	return order, env
}

func (s *Orders) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, client.Envelope) {
	order, env := s.api.UpdateStatus(ctx, id, status)
	if env.Success && order != nil {
		s.setSelected(order)
		s.ApplyUpdated(*order)
	}
	return order, env
}

func (s *Orders) Delete(ctx context.Context, id string) client.Envelope {
	env := s.api.Delete(ctx, id)
	if env.Success {
		s.ApplyDeleted(id)
	}
	return env
}

// ApplyCreated upserts the order. Both a successful create call and a live
// order.created event land here, so replaying either is idempotent.
func (s *Orders) ApplyCreated(order domain.Order) {
	s.upsert(order)
	s.notify()
}

// ApplyUpdated upserts the order. An update for an order this client never
// saw still lands, which keeps two dashboards consistent.
func (s *Orders) ApplyUpdated(order domain.Order) {
	s.upsert(order)
	s.notify()
}

// ApplyDeleted removes the order if present. Deleting an absent id is a
// no-op.
func (s *Orders) ApplyDeleted(id string) {
	s.mu.Lock()
	for i, o := range s.orders {
		if o.ID.Hex() == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			break
		}
	}
	if s.selected != nil && s.selected.ID.Hex() == id {
		s.selected = nil
	}
	s.mu.Unlock()

	s.notify()
}

func (s *Orders) upsert(order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected != nil && s.selected.ID == order.ID {
		tmp := order
		s.selected = &tmp
	}

	for i, o := range s.orders {
		if o.ID == order.ID {
			s.orders[i] = order
			return
		}
	}
	s.orders = append(s.orders, order)
}

// All returns a copy of the active order list.
func (s *Orders) All() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Pending selects the unpaid orders from the active list.
func (s *Orders) Pending() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Order
	for _, o := range s.orders {
		if o.Status != domain.OrderStatusPaid {
			out = append(out, o)
		}
	}
	return out
}

// Paid returns the lazily fetched order history.
func (s *Orders) Paid() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, len(s.paid))
	copy(out, s.paid)
	return out
}

// Selected returns the order loaded by Get, kept fresh by updates and
// cleared when the order is deleted.
func (s *Orders) Selected() *domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == nil {
		return nil
	}
	out := *s.selected
	return &out
}

func (s *Orders) setSelected(order *domain.Order) {
	s.mu.Lock()
	s.selected = order
	s.mu.Unlock()
	s.notify()
}

func (s *Orders) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Orders) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
	s.notify()
}
