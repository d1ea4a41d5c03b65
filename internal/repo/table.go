package repo

import (
	"context"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TableRepository interface {
	Create(ctx context.Context, table *domain.Table) error
	GetByID(ctx context.Context, adminID, id primitive.ObjectID) (*domain.Table, error)
	ListByAdmin(ctx context.Context, adminID primitive.ObjectID) ([]domain.Table, error)
	ListWithOrders(ctx context.Context, adminID primitive.ObjectID) ([]domain.TableWithOrders, error)
	Update(ctx context.Context, table *domain.Table) error
	UpdateStatus(ctx context.Context, adminID, id primitive.ObjectID, status domain.TableStatus) (*domain.Table, error)
	Delete(ctx context.Context, adminID, id primitive.ObjectID) error
}
