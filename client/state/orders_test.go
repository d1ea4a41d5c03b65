package state

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/fevziatanoglu/cafe-management/client"
	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

func writeEnvelope(w http.ResponseWriter, status int, success bool, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": success,
		"message": message,
		"data":    data,
	})
}

func newOrders(t *testing.T, handler http.Handler) *Orders {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api := client.New(srv.URL, zap.NewNop().Sugar())
	return NewOrders(api.Orders())
}

func makeOrder(status domain.OrderStatus) domain.Order {
	return domain.Order{
		ID:     primitive.NewObjectID(),
		Status: status,
		Items: []domain.OrderItem{
			{ProductID: primitive.NewObjectID(), Name: "latte", Price: 5, Quantity: 1},
		},
		Total: 5,
	}
}

func TestFetchReplacesList(t *testing.T) {
	fresh := []domain.Order{makeOrder(domain.OrderStatusPending), makeOrder(domain.OrderStatusServed)}

	orders := newOrders(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "orders fetched", fresh)
	}))

	// stale local entry that the fetch should drop
	orders.ApplyCreated(makeOrder(domain.OrderStatusPending))

	env := orders.Fetch(context.Background())

	require.True(t, env.Success)
	got := orders.All()
	require.Len(t, got, 2)
	assert.Equal(t, fresh[0].ID, got[0].ID)
	assert.Equal(t, fresh[1].ID, got[1].ID)
	assert.False(t, orders.Loading())
}

func TestFetchFailureLeavesStateUntouched(t *testing.T) {
	orders := newOrders(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusInternalServerError, false, "the server encountered a problem", nil)
	}))

	existing := makeOrder(domain.OrderStatusPending)
	orders.ApplyCreated(existing)

	env := orders.Fetch(context.Background())

	assert.False(t, env.Success)
	got := orders.All()
	require.Len(t, got, 1)
	assert.Equal(t, existing.ID, got[0].ID)
	assert.False(t, orders.Loading())
}

func TestCreateAppends(t *testing.T) {
	created := makeOrder(domain.OrderStatusPending)

	orders := newOrders(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		writeEnvelope(w, http.StatusCreated, true, "order created", created)
	}))

	order, env := orders.Create(context.Background(), client.OrderRequest{
		TableID: primitive.NewObjectID().Hex(),
		Items:   []client.OrderItemRequest{{ProductID: created.Items[0].ProductID.Hex(), Quantity: 1}},
	})

	require.True(t, env.Success)
	require.NotNil(t, order)
	got := orders.All()
	require.Len(t, got, 1)
	assert.Equal(t, created.ID, got[0].ID)
}

func TestCreateFailureLeavesStateUntouched(t *testing.T) {
	orders := newOrders(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, false, "bad request", nil)
	}))

	order, env := orders.Create(context.Background(), client.OrderRequest{})

	assert.False(t, env.Success)
	assert.Nil(t, order)
	assert.Empty(t, orders.All())
}

func TestUpdateReplacesByID(t *testing.T) {
	original := makeOrder(domain.OrderStatusPending)
	updated := original
	updated.Status = domain.OrderStatusServed
	updated.Total = 25

	orders := newOrders(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "order updated", updated)
	}))

	orders.ApplyCreated(original)

	_, env := orders.Update(context.Background(), original.ID.Hex(), client.OrderRequest{})

	require.True(t, env.Success)
	got := orders.All()
	require.Len(t, got, 1)
	assert.Equal(t, domain.OrderStatusServed, got[0].Status)
	assert.Equal(t, 25.0, got[0].Total)
}

func TestDeleteRemovesByID(t *testing.T) {
	target := makeOrder(domain.OrderStatusPending)
	keep := makeOrder(domain.OrderStatusPending)

	orders := newOrders(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "order deleted", nil)
	}))

	orders.ApplyCreated(target)
	orders.ApplyCreated(keep)

	env := orders.Delete(context.Background(), target.ID.Hex())

	require.True(t, env.Success)
	got := orders.All()
	require.Len(t, got, 1)
	assert.Equal(t, keep.ID, got[0].ID)
}

func TestApplyDeletedAbsentIsNoop(t *testing.T) {
	orders := newOrders(t, http.NotFoundHandler())

	existing := makeOrder(domain.OrderStatusPending)
	orders.ApplyCreated(existing)

	orders.ApplyDeleted(primitive.NewObjectID().Hex())

	require.Len(t, orders.All(), 1)
}

func TestApplyCreatedIsIdempotent(t *testing.T) {
	orders := newOrders(t, http.NotFoundHandler())

	order := makeOrder(domain.OrderStatusPending)
	orders.ApplyCreated(order)
	orders.ApplyCreated(order)

	require.Len(t, orders.All(), 1)
}

func TestApplyUpdatedUnknownOrderLands(t *testing.T) {
	orders := newOrders(t, http.NotFoundHandler())

	// an update pushed for an order this client never fetched
	orders.ApplyUpdated(makeOrder(domain.OrderStatusPreparing))

	require.Len(t, orders.All(), 1)
}

func TestPushThenFetchConverges(t *testing.T) {
	order := makeOrder(domain.OrderStatusPending)
	final := order
	final.Status = domain.OrderStatusPaid

	orders := newOrders(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "orders fetched", []domain.Order{final})
	}))

	// stale push applied first, then the list fetch wins
	stale := order
	stale.Status = domain.OrderStatusServed
	orders.ApplyUpdated(stale)

	env := orders.Fetch(context.Background())

	require.True(t, env.Success)
	got := orders.All()
	require.Len(t, got, 1)
	assert.Equal(t, domain.OrderStatusPaid, got[0].Status)
}

func TestPendingIsASelector(t *testing.T) {
	orders := newOrders(t, http.NotFoundHandler())

	pending := makeOrder(domain.OrderStatusPending)
	preparing := makeOrder(domain.OrderStatusPreparing)
	paid := makeOrder(domain.OrderStatusPaid)

	orders.ApplyCreated(pending)
	orders.ApplyCreated(preparing)
	orders.ApplyCreated(paid)

	got := orders.Pending()
	require.Len(t, got, 2)
	for _, o := range got {
		assert.NotEqual(t, domain.OrderStatusPaid, o.Status)
	}

	// marking the order paid drops it from the selection without a
	// separate pending list to maintain
	nowPaid := pending
	nowPaid.Status = domain.OrderStatusPaid
	orders.ApplyUpdated(nowPaid)

	require.Len(t, orders.Pending(), 1)
	require.Len(t, orders.All(), 3)
}

func TestSubscribeNotifiesOnChange(t *testing.T) {
	orders := newOrders(t, http.NotFoundHandler())

	var calls int
	unsubscribe := orders.Subscribe(func() { calls++ })

	orders.ApplyCreated(makeOrder(domain.OrderStatusPending))
	assert.Equal(t, 1, calls)

	unsubscribe()
	orders.ApplyCreated(makeOrder(domain.OrderStatusPending))
	assert.Equal(t, 1, calls)
}

func TestSelectedFollowsOrder(t *testing.T) {
	order := makeOrder(domain.OrderStatusPending)

	orders := newOrders(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "order fetched", order)
	}))

	got, env := orders.Get(context.Background(), order.ID.Hex())
	require.True(t, env.Success)
	require.NotNil(t, got)

	selected := orders.Selected()
	require.NotNil(t, selected)
	assert.Equal(t, order.ID, selected.ID)

	// a live update on the same order refreshes the detail view
	updated := order
	updated.Status = domain.OrderStatusServed
	orders.ApplyUpdated(updated)
	assert.Equal(t, domain.OrderStatusServed, orders.Selected().Status)

	orders.ApplyDeleted(order.ID.Hex())
	assert.Nil(t, orders.Selected())
}
