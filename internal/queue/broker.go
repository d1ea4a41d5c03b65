package queue

import (
	"context"
)

// Broker covers both kinds of traffic this system has: durable work queues
// (menu imports, table status updates) and the fan-out event stream that the
// live order listeners consume per tenant.
type Broker interface {
	Publish(ctx context.Context, queueName string, message []byte) error
	Subscribe(ctx context.Context, queueName string, handler MessageHandler) error
	PublishEvent(ctx context.Context, routingKey string, message []byte) error
	SubscribeEvents(ctx context.Context, bindingKey string, handler MessageHandler) error
	Close() error
}

type MessageHandler func(ctx context.Context, message []byte) error

const (
	QueueMenuImport     = "menu-import"
	QueueTableStatus    = "table-status"
	QueueMenuImportDLQ  = "menu-import-dlq"
	QueueTableStatusDLQ = "table-status-dlq"
	EventsExchange      = "cafe.events"
)
