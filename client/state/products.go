package state

import (
	"context"
	"sync"

	"github.com/fevziatanoglu/cafe-management/client"
	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

type Products struct {
	notifier

	api *client.ProductsService

	mu       sync.RWMutex
	products []domain.Product
	selected *domain.Product
	loading  bool
}

func NewProducts(api *client.ProductsService) *Products {
	return &Products{api: api}
}

func (s *Products) Fetch(ctx context.Context) client.Envelope {
	s.setLoading(true)

	products, env := s.api.List(ctx)

	s.mu.Lock()
	if env.Success {
		s.products = products
	}
	s.loading = false
	s.mu.Unlock()

	s.notify()
	return env
}

// Get loads a single product into the selected slot.
func (s *Products) Get(ctx context.Context, id string) (*domain.Product, client.Envelope) {
	product, env := s.api.Get(ctx, id)
	if env.Success && product != nil {
		s.setSelected(product)
	}
	return product, env
}

func (s *Products) Create(ctx context.Context, req client.ProductRequest) (*domain.Product, client.Envelope) {
	product, env := s.api.Create(ctx, req)
	if env.Success && product != nil {
		s.mu.Lock()
		s.products = append(s.products, *product)
		s.mu.Unlock()
		s.notify()
	}
	return product, env
}

func (s *Products) Update(ctx context.Context, id string, req client.ProductRequest) (*domain.Product, client.Envelope) {
	product, env := s.api.Update(ctx, id, req)
	if env.Success && product != nil {
		s.setSelected(product)
		s.replace(*product)
	}
	return product, env
}

func (s *Products) SetAvailability(ctx context.Context, id string, available bool) (*domain.Product, client.Envelope) {
	product, env := s.api.SetAvailability(ctx, id, available)
	if env.Success && product != nil {
		s.replace(*product)
	}
	return product, env
}

func (s *Products) Delete(ctx context.Context, id string) client.Envelope {
	env := s.api.Delete(ctx, id)
	if env.Success {
		s.mu.Lock()
		for i, p := range s.products {
			if p.ID.Hex() == id {
				s.products = append(s.products[:i], s.products[i+1:]...)
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

func (s *Products) replace(product domain.Product) {
	s.mu.Lock()
	for i, p := range s.products {
		if p.ID == product.ID {
			s.products[i] = product
			break
		}
	}
	s.mu.Unlock()

	s.notify()
}

func (s *Products) All() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Available selects the products currently on sale.
func (s *Products) Available() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Product
	for _, p := range s.products {
		if p.Available {
			out = append(out, p)
		}
	}
	return out
}

func (s *Products) Selected() *domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == nil {
		return nil
	}
	out := *s.selected
	return &out
}

func (s *Products) setSelected(product *domain.Product) {
	s.mu.Lock()
	s.selected = product
	s.mu.Unlock()
	s.notify()
}

func (s *Products) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Products) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
	s.notify()
}
