package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImageRepository interface {
	Save(ctx context.Context, name string, data []byte) (primitive.ObjectID, error)
	Load(ctx context.Context, id primitive.ObjectID) ([]byte, error)
}
