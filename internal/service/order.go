package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"github.com/fevziatanoglu/cafe-management/internal/queue"
	"github.com/fevziatanoglu/cafe-management/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type OrderService struct {
	orderRepo   repo.OrderRepository
	productRepo repo.ProductRepository
	broker      queue.Broker
	logger      *zap.SugaredLogger
}

func NewOrderService(
	orderRepo repo.OrderRepository,
	productRepo repo.ProductRepository,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		broker:      broker,
		logger:      logger,
	}
}

type OrderItemInput struct {
	ProductID primitive.ObjectID
	Quantity  int
}

// CreateOrder snapshots product names and prices into the order items, so the
// order stays stable if the catalog changes later.
func (s *OrderService) CreateOrder(ctx context.Context, adminID, createdBy, tableID primitive.ObjectID, items []OrderItemInput) (*domain.Order, error) {
	snapshots, err := s.snapshotItems(ctx, adminID, items)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		TableID:   tableID,
		Items:     snapshots,
		Status:    domain.OrderStatusPending,
		CreatedBy: createdBy,
		AdminID:   adminID,
	}
	order.Total = order.ComputeTotal()

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publishEvent(ctx, domain.EventOrderCreated, order)

	s.logger.Infow("order created", "order_id", order.ID.Hex(), "table_id", tableID.Hex(), "total", order.Total)

	return order, nil
}

// UpdateOrder replaces the order's table and items. Item snapshots are taken
// again from the current catalog and the total is recomputed.
func (s *OrderService) UpdateOrder(ctx context.Context, adminID, id, tableID primitive.ObjectID, items []OrderItemInput) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, adminID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	snapshots, err := s.snapshotItems(ctx, adminID, items)
	if err != nil {
		return nil, err
	}

	order.TableID = tableID
	order.Items = snapshots
	order.Total = order.ComputeTotal()

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	s.publishEvent(ctx, domain.EventOrderUpdated, order)

	return order, nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, adminID, id primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orderRepo.UpdateStatus(ctx, adminID, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.publishEvent(ctx, domain.EventOrderUpdated, order)

	s.logger.Infow("order status updated", "order_id", id.Hex(), "status", status)

	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, adminID, id primitive.ObjectID) error {
	order, err := s.orderRepo.GetByID(ctx, adminID, id)
	if err != nil {
		return fmt.Errorf("failed to get order: %w", err)
	}

	if err := s.orderRepo.Delete(ctx, adminID, id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	// the order body is gone, but the table it sat on still needs its
	// status reconciled
	event := domain.OrderEvent{
		EventType: domain.EventOrderDeleted,
		AdminID:   adminID.Hex(),
		OrderID:   id.Hex(),
		TableID:   order.TableID.Hex(),
		Timestamp: time.Now(),
	}
	s.publish(ctx, order.AdminID.Hex(), event)

	s.logger.Infow("order deleted", "order_id", id.Hex())

	return nil
}

func (s *OrderService) GetOrder(ctx context.Context, adminID, id primitive.ObjectID) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, adminID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, adminID primitive.ObjectID) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

func (s *OrderService) ListOrdersByStatus(ctx context.Context, adminID primitive.ObjectID, status domain.OrderStatus) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListByStatus(ctx, adminID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// ListUnpaidOrders returns every order that has not been paid yet, whatever
// its kitchen status.
func (s *OrderService) ListUnpaidOrders(ctx context.Context, adminID primitive.ObjectID) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListUnpaid(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

func (s *OrderService) snapshotItems(ctx context.Context, adminID primitive.ObjectID, items []OrderItemInput) ([]domain.OrderItem, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	ids := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item quantity must be positive")
		}
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.GetManyByIDs(ctx, adminID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	byID := make(map[primitive.ObjectID]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	snapshots := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("product %s not found", item.ProductID.Hex())
		}
		if !product.Available {
			return nil, fmt.Errorf("product %s is not available", product.Name)
		}

		snapshots = append(snapshots, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
	}

	return snapshots, nil
}

func (s *OrderService) publishEvent(ctx context.Context, eventType string, order *domain.Order) {
	event := domain.OrderEvent{
		EventType: eventType,
		AdminID:   order.AdminID.Hex(),
		OrderID:   order.ID.Hex(),
		TableID:   order.TableID.Hex(),
		Order:     order,
		Timestamp: time.Now(),
	}
	s.publish(ctx, order.AdminID.Hex(), event)
}

// publish sends the event to the tenant's routing key. A failed publish is
// logged, not returned: the write already happened and the client will catch
// up on its next list.
func (s *OrderService) publish(ctx context.Context, adminID string, event domain.OrderEvent) {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("failed to marshal order event", "order_id", event.OrderID, "error", err)
		return
	}

	if err := s.broker.PublishEvent(ctx, domain.TenantRoutingKey(adminID), eventBytes); err != nil {
		s.logger.Errorw("failed to publish order event", "order_id", event.OrderID, "error", err)
	}
}
