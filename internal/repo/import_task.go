package repo

import (
	"context"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportTaskRepository interface {
	Create(ctx context.Context, task *domain.ImportTask) error
	GetByID(ctx context.Context, adminID, id primitive.ObjectID) (*domain.ImportTask, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ImportTaskStatus, errorMsg string) error
	MarkCompleted(ctx context.Context, id primitive.ObjectID, productCount int) error
	IncrementRetryCount(ctx context.Context, id primitive.ObjectID) error
}
