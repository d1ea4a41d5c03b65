package repo

import (
	"context"
	"time"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportRepository interface {
	Daily(ctx context.Context, adminID primitive.ObjectID, day time.Time) (*domain.DailyReport, error)
}
