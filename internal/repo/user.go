package repo

import (
	"context"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ListStaffByAdmin(ctx context.Context, adminID primitive.ObjectID) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, adminID, id primitive.ObjectID) error
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetByValue(ctx context.Context, value string) (*domain.RefreshToken, error)
	DeleteByValue(ctx context.Context, value string) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}
