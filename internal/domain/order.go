package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusServed    OrderStatus = "served"
	OrderStatusPaid      OrderStatus = "paid"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusServed, OrderStatusPaid:
		return true
	}
	return false
}

type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TableID   primitive.ObjectID `bson:"table_id" json:"table_id"`
	Items     []OrderItem        `bson:"items" json:"items"`
	Status    OrderStatus        `bson:"status" json:"status"`
	Total     float64            `bson:"total" json:"total"`
	CreatedBy primitive.ObjectID `bson:"created_by" json:"created_by"`
	AdminID   primitive.ObjectID `bson:"admin_id" json:"admin_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// OrderItem carries a snapshot of the product name and price taken when the
// order was created, so historical orders stay stable if the catalog changes.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"product_id"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// ComputeTotal returns the sum of price * quantity over all items.
func (o *Order) ComputeTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
