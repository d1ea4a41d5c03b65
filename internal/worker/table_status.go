package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"github.com/fevziatanoglu/cafe-management/internal/queue"
	"github.com/fevziatanoglu/cafe-management/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// TableStatusWorker reconciles table statuses with the order stream: a table
// becomes occupied when an order lands on it and goes back to empty when no
// unpaid orders remain.
type TableStatusWorker struct {
	tableService *service.TableService
	broker       queue.Broker
	logger       *zap.SugaredLogger
	ctx          context.Context
	cancel       context.CancelFunc
}

func NewTableStatusWorker(
	tableService *service.TableService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *TableStatusWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &TableStatusWorker{
		tableService: tableService,
		broker:       broker,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (w *TableStatusWorker) Start() error {
	w.logger.Info("starting table status worker")

	// all tenants
	return w.broker.SubscribeEvents(w.ctx, "tenant.*", w.handleMessage)
}

func (w *TableStatusWorker) Stop() {
	w.logger.Info("stopping table status worker")
	w.cancel()
}

func (w *TableStatusWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.OrderEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	adminID, err := primitive.ObjectIDFromHex(event.AdminID)
	if err != nil {
		w.logger.Errorw("invalid admin ID", "admin_id", event.AdminID, "error", err)
		return fmt.Errorf("invalid admin ID: %w", err)
	}

	tableHex := event.TableID
	if tableHex == "" && event.Order != nil {
		tableHex = event.Order.TableID.Hex()
	}
	if tableHex == "" {
		w.logger.Warnw("order event without table reference", "event_type", event.EventType, "order_id", event.OrderID)
		return nil
	}

	tableID, err := primitive.ObjectIDFromHex(tableHex)
	if err != nil {
		w.logger.Errorw("invalid table ID", "table_id", tableHex, "error", err)
		return fmt.Errorf("invalid table ID: %w", err)
	}

	w.logger.Infow("reconciling table status", "event_type", event.EventType, "order_id", event.OrderID)

	if err := w.tableService.SyncTableStatus(ctx, adminID, tableID); err != nil {
		w.logger.Errorw("failed to sync table status", "order_id", event.OrderID, "error", err)
		return err
	}

	return nil
}
