package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReportRepository aggregates the orders collection, it has no collection of
// its own.
type ReportRepository struct {
	orders *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{
		orders: db.Collection("orders"),
	}
}

// Daily computes the sales report for one calendar day from paid orders.
func (r *ReportRepository) Daily(ctx context.Context, adminID primitive.ObjectID, day time.Time) (*domain.DailyReport, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)

	match := bson.M{
		"admin_id": adminID,
		"status":   domain.OrderStatusPaid,
		"created_at": bson.M{
			"$gte": from,
			"$lt":  to,
		},
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$facet", Value: bson.M{
			"totals": bson.A{
				bson.M{"$group": bson.M{
					"_id":         nil,
					"total_sales": bson.M{"$sum": "$total"},
					"order_count": bson.M{"$sum": 1},
				}},
			},
			"items": bson.A{
				bson.M{"$unwind": "$items"},
				bson.M{"$group": bson.M{
					"_id":      "$items.product_id",
					"name":     bson.M{"$first": "$items.name"},
					"quantity": bson.M{"$sum": "$items.quantity"},
					"revenue":  bson.M{"$sum": bson.M{"$multiply": bson.A{"$items.price", "$items.quantity"}}},
				}},
				bson.M{"$sort": bson.M{"revenue": -1}},
			},
		}}},
	}

	cursor, err := r.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily report: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Totals []struct {
			TotalSales float64 `bson:"total_sales"`
			OrderCount int     `bson:"order_count"`
		} `bson:"totals"`
		Items []struct {
			ProductID primitive.ObjectID `bson:"_id"`
			Name      string             `bson:"name"`
			Quantity  int                `bson:"quantity"`
			Revenue   float64            `bson:"revenue"`
		} `bson:"items"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode daily report: %w", err)
	}

	report := &domain.DailyReport{
		AdminID: adminID,
		Date:    from,
		Items:   []domain.ReportItem{},
	}

	if len(results) == 0 {
		return report, nil
	}

	if len(results[0].Totals) > 0 {
		report.TotalSales = results[0].Totals[0].TotalSales
		report.OrderCount = results[0].Totals[0].OrderCount
	}

	for _, item := range results[0].Items {
		report.Items = append(report.Items, domain.ReportItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Revenue:   item.Revenue,
		})
	}

	return report, nil
}
