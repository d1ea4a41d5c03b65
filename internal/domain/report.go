package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DailyReport aggregates paid orders for one tenant and one calendar day.
// Read-only from the client's perspective, computed on demand.
type DailyReport struct {
	AdminID    primitive.ObjectID `bson:"admin_id" json:"admin_id"`
	Date       time.Time          `bson:"date" json:"date"`
	TotalSales float64            `bson:"total_sales" json:"total_sales"`
	OrderCount int                `bson:"order_count" json:"order_count"`
	Items      []ReportItem       `bson:"items" json:"items"`
}

type ReportItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"product_id"`
	Name      string             `bson:"name" json:"name"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Revenue   float64            `bson:"revenue" json:"revenue"`
}

type WeeklySummary struct {
	AdminID    primitive.ObjectID `bson:"admin_id" json:"admin_id"`
	From       time.Time          `bson:"from" json:"from"`
	To         time.Time          `bson:"to" json:"to"`
	TotalSales float64            `bson:"total_sales" json:"total_sales"`
	OrderCount int                `bson:"order_count" json:"order_count"`
	Days       []DailyReport      `bson:"days" json:"days"`
}
