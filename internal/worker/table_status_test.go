package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"github.com/fevziatanoglu/cafe-management/internal/service"
)

type stubTableRepo struct {
	tables map[primitive.ObjectID]domain.Table
}

func newStubTableRepo() *stubTableRepo {
	return &stubTableRepo{tables: make(map[primitive.ObjectID]domain.Table)}
}

func (r *stubTableRepo) Create(ctx context.Context, table *domain.Table) error {
	if table.ID.IsZero() {
		table.ID = primitive.NewObjectID()
	}
	r.tables[table.ID] = *table
	return nil
}

func (r *stubTableRepo) GetByID(ctx context.Context, adminID, id primitive.ObjectID) (*domain.Table, error) {
	table, ok := r.tables[id]
	if !ok || table.AdminID != adminID {
		return nil, fmt.Errorf("table not found")
	}
	out := table
	return &out, nil
}

func (r *stubTableRepo) ListByAdmin(ctx context.Context, adminID primitive.ObjectID) ([]domain.Table, error) {
	return nil, nil
}

func (r *stubTableRepo) ListWithOrders(ctx context.Context, adminID primitive.ObjectID) ([]domain.TableWithOrders, error) {
	return nil, nil
}

func (r *stubTableRepo) Update(ctx context.Context, table *domain.Table) error {
	r.tables[table.ID] = *table
	return nil
}

func (r *stubTableRepo) UpdateStatus(ctx context.Context, adminID, id primitive.ObjectID, status domain.TableStatus) (*domain.Table, error) {
	table, ok := r.tables[id]
	if !ok || table.AdminID != adminID {
		return nil, fmt.Errorf("table not found")
	}
	table.Status = status
	r.tables[id] = table
	out := table
	return &out, nil
}

func (r *stubTableRepo) Delete(ctx context.Context, adminID, id primitive.ObjectID) error {
	delete(r.tables, id)
	return nil
}

// stubOrderRepo only answers the unpaid count; the worker touches nothing
// else on the order side.
type stubOrderRepo struct {
	unpaidByTable map[primitive.ObjectID]int64
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{unpaidByTable: make(map[primitive.ObjectID]int64)}
}

func (r *stubOrderRepo) Create(ctx context.Context, order *domain.Order) error { return nil }

func (r *stubOrderRepo) GetByID(ctx context.Context, adminID, id primitive.ObjectID) (*domain.Order, error) {
	return nil, fmt.Errorf("order not found")
}

func (r *stubOrderRepo) ListByAdmin(ctx context.Context, adminID primitive.ObjectID) ([]domain.Order, error) {
	return nil, nil
}

func (r *stubOrderRepo) ListByStatus(ctx context.Context, adminID primitive.ObjectID, status domain.OrderStatus) ([]domain.Order, error) {
	return nil, nil
}

func (r *stubOrderRepo) ListUnpaid(ctx context.Context, adminID primitive.ObjectID) ([]domain.Order, error) {
	return nil, nil
}

func (r *stubOrderRepo) ListByTable(ctx context.Context, adminID, tableID primitive.ObjectID) ([]domain.Order, error) {
	return nil, nil
}

func (r *stubOrderRepo) Update(ctx context.Context, order *domain.Order) error { return nil }

func (r *stubOrderRepo) UpdateStatus(ctx context.Context, adminID, id primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error) {
	return nil, fmt.Errorf("order not found")
}

func (r *stubOrderRepo) Delete(ctx context.Context, adminID, id primitive.ObjectID) error {
	return nil
}

func (r *stubOrderRepo) CountUnpaidByTable(ctx context.Context, adminID, tableID primitive.ObjectID) (int64, error) {
	return r.unpaidByTable[tableID], nil
}

func newTableStatusFixture() (*TableStatusWorker, *stubTableRepo, *stubOrderRepo, primitive.ObjectID) {
	tableRepo := newStubTableRepo()
	orderRepo := newStubOrderRepo()
	adminID := primitive.NewObjectID()

	svc := service.NewTableService(tableRepo, orderRepo, zap.NewNop().Sugar())
	worker := NewTableStatusWorker(svc, nil, zap.NewNop().Sugar())

	return worker, tableRepo, orderRepo, adminID
}

func marshalEvent(t *testing.T, event domain.OrderEvent) []byte {
	t.Helper()

	body, err := json.Marshal(event)
	require.NoError(t, err)
	return body
}

func TestDeletedEventFreesTable(t *testing.T) {
	worker, tableRepo, orderRepo, adminID := newTableStatusFixture()

	table := domain.Table{ID: primitive.NewObjectID(), Number: "5", Status: domain.TableStatusOccupied, AdminID: adminID}
	tableRepo.tables[table.ID] = table
	orderRepo.unpaidByTable[table.ID] = 0

	// deleted events carry no order body, only the identifiers
	body := marshalEvent(t, domain.OrderEvent{
		EventType: domain.EventOrderDeleted,
		AdminID:   adminID.Hex(),
		OrderID:   primitive.NewObjectID().Hex(),
		TableID:   table.ID.Hex(),
		Timestamp: time.Now(),
	})

	require.NoError(t, worker.handleMessage(context.Background(), body))

	assert.Equal(t, domain.TableStatusEmpty, tableRepo.tables[table.ID].Status)
}

func TestCreatedEventOccupiesTable(t *testing.T) {
	worker, tableRepo, orderRepo, adminID := newTableStatusFixture()

	table := domain.Table{ID: primitive.NewObjectID(), Number: "2", Status: domain.TableStatusEmpty, AdminID: adminID}
	tableRepo.tables[table.ID] = table
	orderRepo.unpaidByTable[table.ID] = 1

	order := domain.Order{
		ID:      primitive.NewObjectID(),
		TableID: table.ID,
		Status:  domain.OrderStatusPending,
		AdminID: adminID,
	}
	body := marshalEvent(t, domain.OrderEvent{
		EventType: domain.EventOrderCreated,
		AdminID:   adminID.Hex(),
		OrderID:   order.ID.Hex(),
		TableID:   table.ID.Hex(),
		Order:     &order,
		Timestamp: time.Now(),
	})

	require.NoError(t, worker.handleMessage(context.Background(), body))

	assert.Equal(t, domain.TableStatusOccupied, tableRepo.tables[table.ID].Status)
}

func TestEventWithoutTableReferenceIsDropped(t *testing.T) {
	worker, tableRepo, _, adminID := newTableStatusFixture()

	table := domain.Table{ID: primitive.NewObjectID(), Number: "3", Status: domain.TableStatusOccupied, AdminID: adminID}
	tableRepo.tables[table.ID] = table

	body := marshalEvent(t, domain.OrderEvent{
		EventType: domain.EventOrderDeleted,
		AdminID:   adminID.Hex(),
		OrderID:   primitive.NewObjectID().Hex(),
		Timestamp: time.Now(),
	})

	require.NoError(t, worker.handleMessage(context.Background(), body))

	assert.Equal(t, domain.TableStatusOccupied, tableRepo.tables[table.ID].Status)
}

func TestMalformedEventIsAnError(t *testing.T) {
	worker, _, _, _ := newTableStatusFixture()

	err := worker.handleMessage(context.Background(), []byte("not json"))
	require.Error(t, err)
}
