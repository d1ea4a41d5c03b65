package repo

import (
	"context"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, adminID, id primitive.ObjectID) (*domain.Order, error)
	ListByAdmin(ctx context.Context, adminID primitive.ObjectID) ([]domain.Order, error)
	ListByStatus(ctx context.Context, adminID primitive.ObjectID, status domain.OrderStatus) ([]domain.Order, error)
	ListUnpaid(ctx context.Context, adminID primitive.ObjectID) ([]domain.Order, error)
	ListByTable(ctx context.Context, adminID, tableID primitive.ObjectID) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	UpdateStatus(ctx context.Context, adminID, id primitive.ObjectID, status domain.OrderStatus) (*domain.Order, error)
	Delete(ctx context.Context, adminID, id primitive.ObjectID) error
	CountUnpaidByTable(ctx context.Context, adminID, tableID primitive.ObjectID) (int64, error)
}
