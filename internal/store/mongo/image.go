package mongo

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ImageRepository keeps uploaded product and cafe pictures in GridFS, next to
// the rest of the tenant data.
type ImageRepository struct {
	bucket *gridfs.Bucket
}

func NewImageRepository(db *mongo.Database) (*ImageRepository, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName("images"))
	if err != nil {
		return nil, fmt.Errorf("failed to open image bucket: %w", err)
	}

	return &ImageRepository{bucket: bucket}, nil
}

func (r *ImageRepository) Save(ctx context.Context, name string, data []byte) (primitive.ObjectID, error) {
	if err := r.bucket.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to store image: %w", err)
	}

	id, err := r.bucket.UploadFromStream(name, bytes.NewReader(data))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to store image: %w", err)
	}

	return id, nil
}

func (r *ImageRepository) Load(ctx context.Context, id primitive.ObjectID) ([]byte, error) {
	if err := r.bucket.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	var buf bytes.Buffer
	if _, err := r.bucket.DownloadToStream(id, &buf); err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	return buf.Bytes(), nil
}
