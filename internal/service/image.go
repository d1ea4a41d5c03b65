package service

import (
	"context"
	"fmt"

	"github.com/fevziatanoglu/cafe-management/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ImageService struct {
	imageRepo repo.ImageRepository
	logger    *zap.SugaredLogger
}

func NewImageService(imageRepo repo.ImageRepository, logger *zap.SugaredLogger) *ImageService {
	return &ImageService{
		imageRepo: imageRepo,
		logger:    logger,
	}
}

// SaveImage stores an uploaded image and returns its id.
func (s *ImageService) SaveImage(ctx context.Context, name string, data []byte) (primitive.ObjectID, error) {
	if len(data) == 0 {
		return primitive.NilObjectID, fmt.Errorf("image is empty")
	}

	id, err := s.imageRepo.Save(ctx, name, data)
	if err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.Infow("image stored", "image_id", id.Hex(), "name", name, "size", len(data))

	return id, nil
}

func (s *ImageService) GetImage(ctx context.Context, id primitive.ObjectID) ([]byte, error) {
	return s.imageRepo.Load(ctx, id)
}
