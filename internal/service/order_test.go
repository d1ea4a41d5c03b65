package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

func newOrderServiceForTest() (*OrderService, *fakeOrderRepo, *fakeProductRepo, *recordBroker, primitive.ObjectID) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo()
	broker := &recordBroker{}
	adminID := primitive.NewObjectID()

	svc := NewOrderService(orderRepo, productRepo, broker, zap.NewNop().Sugar())
	return svc, orderRepo, productRepo, broker, adminID
}

func TestCreateOrderSnapshotsProducts(t *testing.T) {
	svc, _, productRepo, broker, adminID := newOrderServiceForTest()

	latte := productRepo.add(domain.Product{Name: "latte", Price: 5, Available: true, AdminID: adminID})
	cake := productRepo.add(domain.Product{Name: "cheesecake", Price: 10, Available: true, AdminID: adminID})

	order, err := svc.CreateOrder(context.Background(), adminID, primitive.NewObjectID(), primitive.NewObjectID(), []OrderItemInput{
		{ProductID: latte.ID, Quantity: 3},
		{ProductID: cake.ID, Quantity: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, 25.0, order.Total)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "latte", order.Items[0].Name)
	assert.Equal(t, 5.0, order.Items[0].Price)
	assert.Equal(t, 3, order.Items[0].Quantity)

	// a created event goes to the tenant channel with the full order
	events := broker.recorded()
	require.Len(t, events, 1)
	assert.Equal(t, domain.TenantRoutingKey(adminID.Hex()), events[0].routingKey)

	var event domain.OrderEvent
	require.NoError(t, json.Unmarshal(events[0].body, &event))
	assert.Equal(t, domain.EventOrderCreated, event.EventType)
	require.NotNil(t, event.Order)
	assert.Equal(t, order.ID, event.Order.ID)
}

func TestCreateOrderSnapshotSurvivesPriceChange(t *testing.T) {
	svc, orderRepo, productRepo, _, adminID := newOrderServiceForTest()

	latte := productRepo.add(domain.Product{Name: "latte", Price: 5, Available: true, AdminID: adminID})

	order, err := svc.CreateOrder(context.Background(), adminID, primitive.NewObjectID(), primitive.NewObjectID(), []OrderItemInput{
		{ProductID: latte.ID, Quantity: 2},
	})
	require.NoError(t, err)

	// catalog price changes after the order exists
	latte.Price = 9
	productRepo.add(latte)

	stored, err := orderRepo.GetByID(context.Background(), adminID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, stored.Items[0].Price)
	assert.Equal(t, 10.0, stored.Total)
}

func TestCreateOrderRejectsUnavailableProduct(t *testing.T) {
	svc, _, productRepo, broker, adminID := newOrderServiceForTest()

	soup := productRepo.add(domain.Product{Name: "soup", Price: 7, Available: false, AdminID: adminID})

	_, err := svc.CreateOrder(context.Background(), adminID, primitive.NewObjectID(), primitive.NewObjectID(), []OrderItemInput{
		{ProductID: soup.ID, Quantity: 1},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
	assert.Empty(t, broker.recorded())
}

func TestCreateOrderRejectsUnknownProduct(t *testing.T) {
	svc, _, _, _, adminID := newOrderServiceForTest()

	_, err := svc.CreateOrder(context.Background(), adminID, primitive.NewObjectID(), primitive.NewObjectID(), []OrderItemInput{
		{ProductID: primitive.NewObjectID(), Quantity: 1},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateOrderRejectsBadQuantity(t *testing.T) {
	svc, _, productRepo, _, adminID := newOrderServiceForTest()

	latte := productRepo.add(domain.Product{Name: "latte", Price: 5, Available: true, AdminID: adminID})

	_, err := svc.CreateOrder(context.Background(), adminID, primitive.NewObjectID(), primitive.NewObjectID(), []OrderItemInput{
		{ProductID: latte.ID, Quantity: 0},
	})
	require.Error(t, err)

	_, err = svc.CreateOrder(context.Background(), adminID, primitive.NewObjectID(), primitive.NewObjectID(), nil)
	require.Error(t, err)
}

func TestUpdateOrderResnapshots(t *testing.T) {
	svc, _, productRepo, broker, adminID := newOrderServiceForTest()

	latte := productRepo.add(domain.Product{Name: "latte", Price: 5, Available: true, AdminID: adminID})

	order, err := svc.CreateOrder(context.Background(), adminID, primitive.NewObjectID(), primitive.NewObjectID(), []OrderItemInput{
		{ProductID: latte.ID, Quantity: 1},
	})
	require.NoError(t, err)

	// price changed between create and update; the update snapshots fresh
	latte.Price = 6
	productRepo.add(latte)

	updated, err := svc.UpdateOrder(context.Background(), adminID, order.ID, order.TableID, []OrderItemInput{
		{ProductID: latte.ID, Quantity: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, 24.0, updated.Total)
	assert.Equal(t, 6.0, updated.Items[0].Price)

	events := broker.recorded()
	require.Len(t, events, 2)

	var event domain.OrderEvent
	require.NoError(t, json.Unmarshal(events[1].body, &event))
	assert.Equal(t, domain.EventOrderUpdated, event.EventType)
}

func TestDeleteOrderPublishesIDOnly(t *testing.T) {
	svc, orderRepo, productRepo, broker, adminID := newOrderServiceForTest()

	latte := productRepo.add(domain.Product{Name: "latte", Price: 5, Available: true, AdminID: adminID})

	order, err := svc.CreateOrder(context.Background(), adminID, primitive.NewObjectID(), primitive.NewObjectID(), []OrderItemInput{
		{ProductID: latte.ID, Quantity: 1},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(context.Background(), adminID, order.ID))

	_, err = orderRepo.GetByID(context.Background(), adminID, order.ID)
	require.Error(t, err)

	events := broker.recorded()
	require.Len(t, events, 2)

	var event domain.OrderEvent
	require.NoError(t, json.Unmarshal(events[1].body, &event))
	assert.Equal(t, domain.EventOrderDeleted, event.EventType)
	assert.Equal(t, order.ID.Hex(), event.OrderID)
	assert.Equal(t, order.TableID.Hex(), event.TableID)
	assert.Nil(t, event.Order)
}

func TestTenantIsolation(t *testing.T) {
	svc, _, productRepo, _, adminID := newOrderServiceForTest()
	otherAdmin := primitive.NewObjectID()

	latte := productRepo.add(domain.Product{Name: "latte", Price: 5, Available: true, AdminID: adminID})

	order, err := svc.CreateOrder(context.Background(), adminID, primitive.NewObjectID(), primitive.NewObjectID(), []OrderItemInput{
		{ProductID: latte.ID, Quantity: 1},
	})
	require.NoError(t, err)

	// another tenant cannot see or delete the order
	_, err = svc.GetOrder(context.Background(), otherAdmin, order.ID)
	require.Error(t, err)
	require.Error(t, svc.DeleteOrder(context.Background(), otherAdmin, order.ID))

	// nor order this tenant's products
	_, err = svc.CreateOrder(context.Background(), otherAdmin, primitive.NewObjectID(), primitive.NewObjectID(), []OrderItemInput{
		{ProductID: latte.ID, Quantity: 1},
	})
	require.Error(t, err)
}

func TestListUnpaidOrders(t *testing.T) {
	svc, _, productRepo, _, adminID := newOrderServiceForTest()

	latte := productRepo.add(domain.Product{Name: "latte", Price: 5, Available: true, AdminID: adminID})

	first, err := svc.CreateOrder(context.Background(), adminID, primitive.NewObjectID(), primitive.NewObjectID(), []OrderItemInput{
		{ProductID: latte.ID, Quantity: 1},
	})
	require.NoError(t, err)

	_, err = svc.CreateOrder(context.Background(), adminID, primitive.NewObjectID(), primitive.NewObjectID(), []OrderItemInput{
		{ProductID: latte.ID, Quantity: 2},
	})
	require.NoError(t, err)

	_, err = svc.UpdateOrderStatus(context.Background(), adminID, first.ID, domain.OrderStatusPaid)
	require.NoError(t, err)

	unpaid, err := svc.ListUnpaidOrders(context.Background(), adminID)
	require.NoError(t, err)
	require.Len(t, unpaid, 1)
	assert.NotEqual(t, first.ID, unpaid[0].ID)
}
