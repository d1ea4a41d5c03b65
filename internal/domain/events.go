package domain

import "time"

const (
	EventOrderCreated = "order.created"
	EventOrderUpdated = "order.updated"
	EventOrderDeleted = "order.deleted"
)

// OrderEvent is published to the tenant-scoped event channel whenever an
// order changes. Created/updated events carry the full order; deleted events
// carry only the identifiers. TableID is always set so table status can be
// reconciled even after the order body is gone.
type OrderEvent struct {
	EventType string    `json:"event_type"`
	AdminID   string    `json:"admin_id"`
	OrderID   string    `json:"order_id"`
	TableID   string    `json:"table_id,omitempty"`
	Order     *Order    `json:"order,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type MenuImportMessage struct {
	TaskID  string `json:"task_id"`
	AdminID string `json:"admin_id"`
	MenuID  string `json:"menu_id"`
}

// TenantRoutingKey builds the routing key for a tenant's event stream.
func TenantRoutingKey(adminID string) string {
	return "tenant." + adminID
}
