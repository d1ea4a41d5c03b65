package state

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"github.com/fevziatanoglu/cafe-management/internal/queue"
)

// LiveOrders feeds tenant-scoped order events into the store. Events go
// through the same apply path as regular API calls, so a dashboard that
// receives a push and then refetches ends up in the same state.
type LiveOrders struct {
	broker  queue.Broker
	orders  *Orders
	adminID string
	logger  *zap.SugaredLogger
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewLiveOrders(broker queue.Broker, orders *Orders, adminID string, logger *zap.SugaredLogger) *LiveOrders {
	ctx, cancel := context.WithCancel(context.Background())

	return &LiveOrders{
		broker:  broker,
		orders:  orders,
		adminID: adminID,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (l *LiveOrders) Start() error {
	l.logger.Infow("starting live order updates", "admin_id", l.adminID)

	return l.broker.SubscribeEvents(l.ctx, domain.TenantRoutingKey(l.adminID), l.handleMessage)
}

func (l *LiveOrders) Stop() {
	l.logger.Info("stopping live order updates")
	l.cancel()
}

func (l *LiveOrders) handleMessage(ctx context.Context, message []byte) error {
	var event domain.OrderEvent
	if err := json.Unmarshal(message, &event); err != nil {
		l.logger.Errorw("failed to unmarshal order event", "error", err)
		return fmt.Errorf("failed to unmarshal order event: %w", err)
	}

	// events for other tenants never arrive on this binding, but check anyway
	if event.AdminID != l.adminID {
		return nil
	}

	switch event.EventType {
	case domain.EventOrderCreated:
		if event.Order != nil {
			l.orders.ApplyCreated(*event.Order)
		}
	case domain.EventOrderUpdated:
		if event.Order != nil {
			l.orders.ApplyUpdated(*event.Order)
		}
	case domain.EventOrderDeleted:
		l.orders.ApplyDeleted(event.OrderID)
	default:
		l.logger.Warnw("unknown order event type", "event_type", event.EventType)
	}

	return nil
}
