package state

import (
	"context"
	"sync"

	"github.com/fevziatanoglu/cafe-management/client"
	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

// Tables holds the joined table view: each table with its open orders.
type Tables struct {
	notifier

	api *client.TablesService

	mu       sync.RWMutex
	tables   []domain.TableWithOrders
	selected *domain.Table
	loading  bool
}

func NewTables(api *client.TablesService) *Tables {
	return &Tables{api: api}
}

// Fetch replaces the joined table list.
func (s *Tables) Fetch(ctx context.Context) client.Envelope {
	s.setLoading(true)

	tables, env := s.api.ListWithOrders(ctx)

	s.mu.Lock()
	if env.Success {
		s.tables = tables
	}
	s.loading = false
	s.mu.Unlock()

	s.notify()
	return env
}

// Get loads a single table into the selected slot.
func (s *Tables) Get(ctx context.Context, id string) (*domain.Table, client.Envelope) {
	table, env := s.api.Get(ctx, id)
	if env.Success && table != nil {
		s.setSelected(table)
	}
	return table, env
}

func (s *Tables) Create(ctx context.Context, req client.TableRequest) (*domain.Table, client.Envelope) {
	table, env := s.api.Create(ctx, req)
	if env.Success && table != nil {
		s.mu.Lock()
		s.tables = append(s.tables, domain.TableWithOrders{Table: *table})
		s.mu.Unlock()
		s.notify()
	}
	return table, env
}

func (s *Tables) Update(ctx context.Context, id string, req client.TableRequest) (*domain.Table, client.Envelope) {
	table, env := s.api.Update(ctx, id, req)
	if env.Success && table != nil {
		s.setSelected(table)
		s.applyTable(*table)
	}
	return table, env
}

func (s *Tables) UpdateStatus(ctx context.Context, id string, status domain.TableStatus) (*domain.Table, client.Envelope) {
	table, env := s.api.UpdateStatus(ctx, id, status)
	if env.Success && table != nil {
		s.applyTable(*table)
	}
	return table, env
}

func (s *Tables) Delete(ctx context.Context, id string) client.Envelope {
	env := s.api.Delete(ctx, id)
	if env.Success {
		s.mu.Lock()
		for i, t := range s.tables {
			if t.ID.Hex() == id {
				s.tables = append(s.tables[:i], s.tables[i+1:]...)
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

// applyTable replaces the table fields by id while keeping the joined
// orders, since table endpoints return the bare table.
func (s *Tables) applyTable(table domain.Table) {
	s.mu.Lock()
	for i, t := range s.tables {
		if t.ID == table.ID {
			s.tables[i].Table = table
			break
		}
	}
	s.mu.Unlock()

	s.notify()
}

// All returns a copy of the joined table list.
func (s *Tables) All() []domain.TableWithOrders {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.TableWithOrders, len(s.tables))
	copy(out, s.tables)
	return out
}

func (s *Tables) Selected() *domain.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == nil {
		return nil
	}
	out := *s.selected
	return &out
}

func (s *Tables) setSelected(table *domain.Table) {
	s.mu.Lock()
	s.selected = table
	s.mu.Unlock()
	s.notify()
}

func (s *Tables) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Tables) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
	s.notify()
}
