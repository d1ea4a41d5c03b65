package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TableRepository struct {
	collection *mongo.Collection
}

func NewTableRepository(db *mongo.Database) *TableRepository {
	return &TableRepository{
		collection: db.Collection("tables"),
	}
}

func (r *TableRepository) Create(ctx context.Context, table *domain.Table) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if table.ID.IsZero() {
		table.ID = primitive.NewObjectID()
	}
	if table.Status == "" {
		table.Status = domain.TableStatusEmpty
	}
	table.CreatedAt = time.Now()
	table.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, table)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	return nil
}

func (r *TableRepository) GetByID(ctx context.Context, adminID, id primitive.ObjectID) (*domain.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var table domain.Table
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "admin_id": adminID}).Decode(&table)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("table not found")
		}
		return nil, fmt.Errorf("failed to get table: %w", err)
	}

	return &table, nil
}

func (r *TableRepository) ListByAdmin(ctx context.Context, adminID primitive.ObjectID) ([]domain.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "number", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"admin_id": adminID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer cursor.Close(ctx)

	tables := []domain.Table{}
	if err := cursor.All(ctx, &tables); err != nil {
		return nil, fmt.Errorf("failed to decode tables: %w", err)
	}

	return tables, nil
}

// ListWithOrders joins each table with its non-paid orders via $lookup.
func (r *TableRepository) ListWithOrders(ctx context.Context, adminID primitive.ObjectID) ([]domain.TableWithOrders, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"admin_id": adminID}}},
		{{Key: "$lookup", Value: bson.M{
			"from": "orders",
			"let":  bson.M{"table_id": "$_id"},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{
					"$expr": bson.M{"$eq": bson.A{"$table_id", "$$table_id"}},
					"status": bson.M{"$ne": domain.OrderStatusPaid},
				}},
				bson.M{"$sort": bson.M{"created_at": 1}},
			},
			"as": "orders",
		}}},
		{{Key: "$sort", Value: bson.M{"number": 1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables with orders: %w", err)
	}
	defer cursor.Close(ctx)

	tables := []domain.TableWithOrders{}
	if err := cursor.All(ctx, &tables); err != nil {
		return nil, fmt.Errorf("failed to decode tables with orders: %w", err)
	}

	return tables, nil
}

func (r *TableRepository) Update(ctx context.Context, table *domain.Table) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	table.UpdatedAt = time.Now()

	filter := bson.M{"_id": table.ID, "admin_id": table.AdminID}
	update := bson.M{
		"$set": table,
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update table: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("table not found")
	}

	return nil
}

func (r *TableRepository) UpdateStatus(ctx context.Context, adminID, id primitive.ObjectID, status domain.TableStatus) (*domain.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": id, "admin_id": adminID}
	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var table domain.Table
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&table)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("table not found")
		}
		return nil, fmt.Errorf("failed to update table status: %w", err)
	}

	return &table, nil
}

func (r *TableRepository) Delete(ctx context.Context, adminID, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "admin_id": adminID})
	if err != nil {
		return fmt.Errorf("failed to delete table: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("table not found")
	}

	return nil
}
