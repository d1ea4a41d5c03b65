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

type CafeRepository struct {
	collection *mongo.Collection
}

func NewCafeRepository(db *mongo.Database) *CafeRepository {
	return &CafeRepository{
		collection: db.Collection("cafes"),
	}
}

func (r *CafeRepository) Create(ctx context.Context, cafe *domain.Cafe) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if cafe.ID.IsZero() {
		cafe.ID = primitive.NewObjectID()
	}
	cafe.CreatedAt = time.Now()
	cafe.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, cafe)
	if err != nil {
		return fmt.Errorf("failed to create cafe: %w", err)
	}

	return nil
}

func (r *CafeRepository) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) (*domain.Cafe, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cafe domain.Cafe
	err := r.collection.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&cafe)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("cafe not found")
		}
		return nil, fmt.Errorf("failed to get cafe: %w", err)
	}

	return &cafe, nil
}

func (r *CafeRepository) Update(ctx context.Context, cafe *domain.Cafe) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cafe.UpdatedAt = time.Now()

	filter := bson.M{"_id": cafe.ID, "owner_id": cafe.OwnerID}
	update := bson.M{
		"$set": cafe,
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update cafe: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("cafe not found")
	}

	return nil
}
