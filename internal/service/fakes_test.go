package service

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"github.com/fevziatanoglu/cafe-management/internal/queue"
)

// in-memory repo fakes for service tests

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[primitive.ObjectID]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[primitive.ObjectID]*domain.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = primitive.NewObjectID()
	clone := *order
	r.orders[order.ID] = &clone
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, adminID, id primitive.ObjectID) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok || order.AdminID != adminID {
		return nil, fmt.Errorf("order not found")
	}
	clone := *order
	return &clone, nil
}

func (r *fakeOrderRepo) ListByAdmin(ctx context.Context, adminID primitive.ObjectID) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Order
	for _, o := range r.orders {
		if o.AdminID == adminID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByStatus(ctx context.Context, adminID primitive.ObjectID, status domain.OrderStatus) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Order
	for _, o := range r.orders {
		if o.AdminID == adminID && o.Status == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListUnpaid(ctx context.Context, adminID primitive.ObjectID) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Order
	for _, o := range r.orders {
		if o.AdminID == adminID && o.Status != domain.OrderStatusPaid {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByTable(ctx context.Context, adminID, tableID primitive.ObjectID) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Order
	for _, o := range r.orders {
		if o.AdminID == adminID && o.TableID == tableID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.ID]; !ok {
		return fmt.Errorf("order not found")
	}
	clone := *order
	r.orders[order.ID] = &clone
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, adminID, id primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok || order.AdminID != adminID {
		return nil, fmt.Errorf("order not found")
	}
	order.Status = status
	clone := *order
	return &clone, nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, adminID, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok || order.AdminID != adminID {
		return fmt.Errorf("order not found")
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) CountUnpaidByTable(ctx context.Context, adminID, tableID primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, o := range r.orders {
		if o.AdminID == adminID && o.TableID == tableID && o.Status != domain.OrderStatusPaid {
			count++
		}
	}
	return count, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[primitive.ObjectID]*domain.Product)}
}

func (r *fakeProductRepo) add(p domain.Product) domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	clone := p
	r.products[p.ID] = &clone
	return p
}

func (r *fakeProductRepo) Create(ctx context.Context, product *domain.Product) error {
	*product = r.add(*product)
	return nil
}

func (r *fakeProductRepo) CreateMany(ctx context.Context, products []domain.Product) error {
	for _, p := range products {
		r.add(p)
	}
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, adminID, id primitive.ObjectID) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok || p.AdminID != adminID {
		return nil, fmt.Errorf("product not found")
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProductRepo) GetManyByIDs(ctx context.Context, adminID primitive.ObjectID, ids []primitive.ObjectID) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok && p.AdminID == adminID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListByAdmin(ctx context.Context, adminID primitive.ObjectID) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Product
	for _, p := range r.products {
		if p.AdminID == adminID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListAvailableByMenu(ctx context.Context, menuID primitive.ObjectID) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Product
	for _, p := range r.products {
		if p.MenuID == menuID && p.Available {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product not found")
	}
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) SetAvailability(ctx context.Context, adminID, id primitive.ObjectID, available bool) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok || p.AdminID != adminID {
		return nil, fmt.Errorf("product not found")
	}
	p.Available = available
	clone := *p
	return &clone, nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, adminID, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok || p.AdminID != adminID {
		return fmt.Errorf("product not found")
	}
	delete(r.products, id)
	return nil
}

type fakeTableRepo struct {
	mu     sync.Mutex
	tables map[primitive.ObjectID]*domain.Table
}

func newFakeTableRepo() *fakeTableRepo {
	return &fakeTableRepo{tables: make(map[primitive.ObjectID]*domain.Table)}
}

func (r *fakeTableRepo) Create(ctx context.Context, table *domain.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	table.ID = primitive.NewObjectID()
	clone := *table
	r.tables[table.ID] = &clone
	return nil
}

func (r *fakeTableRepo) GetByID(ctx context.Context, adminID, id primitive.ObjectID) (*domain.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tables[id]
	if !ok || t.AdminID != adminID {
		return nil, fmt.Errorf("table not found")
	}
	clone := *t
	return &clone, nil
}

func (r *fakeTableRepo) ListByAdmin(ctx context.Context, adminID primitive.ObjectID) ([]domain.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Table
	for _, t := range r.tables {
		if t.AdminID == adminID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTableRepo) ListWithOrders(ctx context.Context, adminID primitive.ObjectID) ([]domain.TableWithOrders, error) {
	tables, _ := r.ListByAdmin(ctx, adminID)

	out := make([]domain.TableWithOrders, 0, len(tables))
	for _, t := range tables {
		out = append(out, domain.TableWithOrders{Table: t})
	}
	return out, nil
}

func (r *fakeTableRepo) Update(ctx context.Context, table *domain.Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tables[table.ID]; !ok {
		return fmt.Errorf("table not found")
	}
	clone := *table
	r.tables[table.ID] = &clone
	return nil
}

func (r *fakeTableRepo) UpdateStatus(ctx context.Context, adminID, id primitive.ObjectID, status domain.TableStatus) (*domain.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tables[id]
	if !ok || t.AdminID != adminID {
		return nil, fmt.Errorf("table not found")
	}
	t.Status = status
	clone := *t
	return &clone, nil
}

func (r *fakeTableRepo) Delete(ctx context.Context, adminID, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tables[id]
	if !ok || t.AdminID != adminID {
		return fmt.Errorf("table not found")
	}
	delete(r.tables, id)
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return fmt.Errorf("username already taken")
		}
	}

	user.ID = primitive.NewObjectID()
	if user.Role == domain.RoleAdmin {
		user.AdminID = user.ID
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

func (r *fakeUserRepo) ListStaffByAdmin(ctx context.Context, adminID primitive.ObjectID) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.User
	for _, u := range r.users {
		if u.AdminID == adminID && u.Role != domain.RoleAdmin {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return fmt.Errorf("user not found")
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, adminID, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok || u.AdminID != adminID {
		return fmt.Errorf("user not found")
	}
	delete(r.users, id)
	return nil
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*domain.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*domain.RefreshToken)}
}

func (r *fakeTokenRepo) Create(ctx context.Context, token *domain.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *token
	r.tokens[token.Value] = &clone
	return nil
}

func (r *fakeTokenRepo) GetByValue(ctx context.Context, value string) (*domain.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[value]
	if !ok {
		return nil, fmt.Errorf("refresh token not found")
	}
	clone := *t
	return &clone, nil
}

func (r *fakeTokenRepo) DeleteByValue(ctx context.Context, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tokens[value]; !ok {
		return fmt.Errorf("refresh token not found")
	}
	delete(r.tokens, value)
	return nil
}

func (r *fakeTokenRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for v, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, v)
		}
	}
	return nil
}

type fakeMenuRepo struct {
	mu    sync.Mutex
	menus map[primitive.ObjectID]*domain.Menu
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{menus: make(map[primitive.ObjectID]*domain.Menu)}
}

func (r *fakeMenuRepo) Create(ctx context.Context, menu *domain.Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	menu.ID = primitive.NewObjectID()
	clone := *menu
	r.menus[menu.ID] = &clone
	return nil
}

func (r *fakeMenuRepo) GetByAdmin(ctx context.Context, adminID primitive.ObjectID) (*domain.Menu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.menus {
		if m.AdminID == adminID {
			clone := *m
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("menu not found")
}

func (r *fakeMenuRepo) GetBySlug(ctx context.Context, slug string) (*domain.Menu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.menus {
		if m.Slug == slug {
			clone := *m
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("menu not found")
}

// recordBroker captures published events for assertions.
type recordBroker struct {
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	routingKey string
	body       []byte
}

func (b *recordBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	return nil
}

func (b *recordBroker) Subscribe(ctx context.Context, queueName string, handler queue.MessageHandler) error {
	return nil
}

func (b *recordBroker) PublishEvent(ctx context.Context, routingKey string, message []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events = append(b.events, recordedEvent{routingKey: routingKey, body: message})
	return nil
}

func (b *recordBroker) SubscribeEvents(ctx context.Context, bindingKey string, handler queue.MessageHandler) error {
	return nil
}

func (b *recordBroker) Close() error { return nil }

func (b *recordBroker) recorded() []recordedEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]recordedEvent, len(b.events))
	copy(out, b.events)
	return out
}
