package service

import (
	"context"
	"fmt"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"github.com/fevziatanoglu/cafe-management/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CafeService treats the cafe as a per-tenant singleton: an admin has at
// most one cafe, and saves fold into that single slot.
type CafeService struct {
	cafeRepo repo.CafeRepository
	logger   *zap.SugaredLogger
}

func NewCafeService(cafeRepo repo.CafeRepository, logger *zap.SugaredLogger) *CafeService {
	return &CafeService{
		cafeRepo: cafeRepo,
		logger:   logger,
	}
}

type CafeInput struct {
	Name    string
	Address string
	Image   string
}

func (s *CafeService) GetCafe(ctx context.Context, ownerID primitive.ObjectID) (*domain.Cafe, error) {
	cafe, err := s.cafeRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cafe: %w", err)
	}

	return cafe, nil
}

func (s *CafeService) CreateCafe(ctx context.Context, ownerID primitive.ObjectID, input CafeInput) (*domain.Cafe, error) {
	if _, err := s.cafeRepo.GetByOwner(ctx, ownerID); err == nil {
		return nil, fmt.Errorf("cafe already exists")
	}

	cafe := &domain.Cafe{
		Name:    input.Name,
		Address: input.Address,
		Image:   input.Image,
		OwnerID: ownerID,
	}

	if err := s.cafeRepo.Create(ctx, cafe); err != nil {
		return nil, fmt.Errorf("failed to create cafe: %w", err)
	}

	s.logger.Infow("cafe created", "cafe_id", cafe.ID.Hex(), "owner_id", ownerID.Hex())

	return cafe, nil
}

func (s *CafeService) UpdateCafe(ctx context.Context, ownerID, id primitive.ObjectID, input CafeInput) (*domain.Cafe, error) {
	cafe, err := s.cafeRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cafe: %w", err)
	}

	if cafe.ID != id {
		return nil, fmt.Errorf("cafe not found")
	}

	cafe.Name = input.Name
	cafe.Address = input.Address
	if input.Image != "" {
		cafe.Image = input.Image
	}

	if err := s.cafeRepo.Update(ctx, cafe); err != nil {
		return nil, fmt.Errorf("failed to update cafe: %w", err)
	}

	return cafe, nil
}
