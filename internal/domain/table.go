package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TableStatus string

const (
	TableStatusEmpty    TableStatus = "empty"
	TableStatusOccupied TableStatus = "occupied"
	TableStatusReserved TableStatus = "reserved"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableStatusEmpty, TableStatusOccupied, TableStatusReserved:
		return true
	}
	return false
}

type Table struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Number    string             `bson:"number" json:"number"`
	Status    TableStatus        `bson:"status" json:"status"`
	AdminID   primitive.ObjectID `bson:"admin_id" json:"admin_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// TableWithOrders is a derived view: a table joined with the orders currently
// associated with it. It is never persisted as its own collection.
type TableWithOrders struct {
	Table  `bson:",inline"`
	Orders []Order `bson:"orders" json:"orders"`
}
