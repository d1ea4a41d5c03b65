package state

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"github.com/fevziatanoglu/cafe-management/internal/queue"
)

// fakeBroker records event subscriptions so tests can push events directly.
type fakeBroker struct {
	bindingKey string
	handler    queue.MessageHandler
}

func (b *fakeBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	return nil
}

func (b *fakeBroker) Subscribe(ctx context.Context, queueName string, handler queue.MessageHandler) error {
	return nil
}

func (b *fakeBroker) PublishEvent(ctx context.Context, routingKey string, message []byte) error {
	return nil
}

func (b *fakeBroker) SubscribeEvents(ctx context.Context, bindingKey string, handler queue.MessageHandler) error {
	b.bindingKey = bindingKey
	b.handler = handler
	return nil
}

func (b *fakeBroker) Close() error { return nil }

func (b *fakeBroker) push(t *testing.T, event domain.OrderEvent) {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)
	require.NoError(t, b.handler(context.Background(), data))
}

func TestLiveOrdersAppliesEvents(t *testing.T) {
	adminID := primitive.NewObjectID().Hex()
	orders := newOrders(t, http.NotFoundHandler())
	broker := &fakeBroker{}

	live := NewLiveOrders(broker, orders, adminID, zap.NewNop().Sugar())
	require.NoError(t, live.Start())
	defer live.Stop()

	assert.Equal(t, domain.TenantRoutingKey(adminID), broker.bindingKey)

	order := makeOrder(domain.OrderStatusPending)

	broker.push(t, domain.OrderEvent{
		EventType: domain.EventOrderCreated,
		AdminID:   adminID,
		OrderID:   order.ID.Hex(),
		Order:     &order,
		Timestamp: time.Now(),
	})
	require.Len(t, orders.All(), 1)

	updated := order
	updated.Status = domain.OrderStatusServed
	broker.push(t, domain.OrderEvent{
		EventType: domain.EventOrderUpdated,
		AdminID:   adminID,
		OrderID:   order.ID.Hex(),
		Order:     &updated,
	})
	got := orders.All()
	require.Len(t, got, 1)
	assert.Equal(t, domain.OrderStatusServed, got[0].Status)

	broker.push(t, domain.OrderEvent{
		EventType: domain.EventOrderDeleted,
		AdminID:   adminID,
		OrderID:   order.ID.Hex(),
	})
	assert.Empty(t, orders.All())
}

func TestLiveOrdersIgnoresOtherTenants(t *testing.T) {
	adminID := primitive.NewObjectID().Hex()
	orders := newOrders(t, http.NotFoundHandler())
	broker := &fakeBroker{}

	live := NewLiveOrders(broker, orders, adminID, zap.NewNop().Sugar())
	require.NoError(t, live.Start())
	defer live.Stop()

	order := makeOrder(domain.OrderStatusPending)
	broker.push(t, domain.OrderEvent{
		EventType: domain.EventOrderCreated,
		AdminID:   primitive.NewObjectID().Hex(),
		OrderID:   order.ID.Hex(),
		Order:     &order,
	})

	assert.Empty(t, orders.All())
}

func TestLiveOrdersDeleteForUnknownOrderIsNoop(t *testing.T) {
	adminID := primitive.NewObjectID().Hex()
	orders := newOrders(t, http.NotFoundHandler())
	broker := &fakeBroker{}

	live := NewLiveOrders(broker, orders, adminID, zap.NewNop().Sugar())
	require.NoError(t, live.Start())
	defer live.Stop()

	broker.push(t, domain.OrderEvent{
		EventType: domain.EventOrderDeleted,
		AdminID:   adminID,
		OrderID:   primitive.NewObjectID().Hex(),
	})

	assert.Empty(t, orders.All())
}
