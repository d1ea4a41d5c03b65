package service

import (
	"context"
	"fmt"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"github.com/fevziatanoglu/cafe-management/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ProductService struct {
	productRepo repo.ProductRepository
	menuRepo    repo.MenuRepository
	cafeRepo    repo.CafeRepository
	logger      *zap.SugaredLogger
}

func NewProductService(
	productRepo repo.ProductRepository,
	menuRepo repo.MenuRepository,
	cafeRepo repo.CafeRepository,
	logger *zap.SugaredLogger,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		menuRepo:    menuRepo,
		cafeRepo:    cafeRepo,
		logger:      logger,
	}
}

type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Available   bool
	Image       string
}

func (s *ProductService) CreateProduct(ctx context.Context, adminID primitive.ObjectID, input ProductInput) (*domain.Product, error) {
	menu, err := s.menuRepo.GetByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}

	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Available:   input.Available,
		Image:       input.Image,
		AdminID:     adminID,
		MenuID:      menu.ID,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Infow("product created", "product_id", product.ID.Hex(), "name", product.Name)

	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, adminID, id primitive.ObjectID) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, adminID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, adminID primitive.ObjectID) ([]domain.Product, error) {
	products, err := s.productRepo.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, adminID, id primitive.ObjectID, input ProductInput) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, adminID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Category = input.Category
	product.Available = input.Available
	if input.Image != "" {
		product.Image = input.Image
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

func (s *ProductService) SetProductAvailability(ctx context.Context, adminID, id primitive.ObjectID, available bool) (*domain.Product, error) {
	product, err := s.productRepo.SetAvailability(ctx, adminID, id, available)
	if err != nil {
		return nil, fmt.Errorf("failed to set product availability: %w", err)
	}

	s.logger.Infow("product availability updated", "product_id", id.Hex(), "available", available)

	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, adminID, id primitive.ObjectID) error {
	if err := s.productRepo.Delete(ctx, adminID, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// GetPublicMenu builds the customer-facing menu page payload for a slug:
// menu, cafe, and only the available products.
func (s *ProductService) GetPublicMenu(ctx context.Context, slug string) (*domain.PublicMenu, error) {
	menu, err := s.menuRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}

	products, err := s.productRepo.ListAvailableByMenu(ctx, menu.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu products: %w", err)
	}

	public := &domain.PublicMenu{
		Menu:     *menu,
		Products: products,
	}

	// the cafe is optional on the public page
	cafe, err := s.cafeRepo.GetByOwner(ctx, menu.AdminID)
	if err == nil {
		public.Cafe = cafe
	}

	return public, nil
}
