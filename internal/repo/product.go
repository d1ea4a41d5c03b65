package repo

import (
	"context"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	CreateMany(ctx context.Context, products []domain.Product) error
	GetByID(ctx context.Context, adminID, id primitive.ObjectID) (*domain.Product, error)
	GetManyByIDs(ctx context.Context, adminID primitive.ObjectID, ids []primitive.ObjectID) ([]domain.Product, error)
	ListByAdmin(ctx context.Context, adminID primitive.ObjectID) ([]domain.Product, error)
	ListAvailableByMenu(ctx context.Context, menuID primitive.ObjectID) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	SetAvailability(ctx context.Context, adminID, id primitive.ObjectID, available bool) (*domain.Product, error)
	Delete(ctx context.Context, adminID, id primitive.ObjectID) error
}

type MenuRepository interface {
	Create(ctx context.Context, menu *domain.Menu) error
	GetByAdmin(ctx context.Context, adminID primitive.ObjectID) (*domain.Menu, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Menu, error)
}
