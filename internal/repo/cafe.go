package repo

import (
	"context"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CafeRepository interface {
	Create(ctx context.Context, cafe *domain.Cafe) error
	GetByOwner(ctx context.Context, ownerID primitive.ObjectID) (*domain.Cafe, error)
	Update(ctx context.Context, cafe *domain.Cafe) error
}
