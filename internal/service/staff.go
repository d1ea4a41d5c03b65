package service

import (
	"context"
	"fmt"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"github.com/fevziatanoglu/cafe-management/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type StaffService struct {
	userRepo repo.UserRepository
	logger   *zap.SugaredLogger
}

func NewStaffService(userRepo repo.UserRepository, logger *zap.SugaredLogger) *StaffService {
	return &StaffService{
		userRepo: userRepo,
		logger:   logger,
	}
}

type StaffInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
	Image    string
}

func (s *StaffService) CreateStaff(ctx context.Context, adminID primitive.ObjectID, input StaffInput) (*domain.User, error) {
	if input.Role == domain.RoleAdmin {
		return nil, fmt.Errorf("staff role must be waiter or kitchen")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hash),
		Role:     input.Role,
		Image:    input.Image,
		AdminID:  adminID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create staff: %w", err)
	}

	s.logger.Infow("staff created", "user_id", user.ID.Hex(), "role", user.Role)

	return user, nil
}

func (s *StaffService) GetStaff(ctx context.Context, adminID, id primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}

	if user.AdminID != adminID {
		return nil, fmt.Errorf("user not found")
	}

	return user, nil
}

func (s *StaffService) ListStaff(ctx context.Context, adminID primitive.ObjectID) ([]domain.User, error) {
	users, err := s.userRepo.ListStaffByAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	return users, nil
}

// UpdateStaff changes profile fields. An empty password leaves the current
// one in place.
func (s *StaffService) UpdateStaff(ctx context.Context, adminID, id primitive.ObjectID, input StaffInput) (*domain.User, error) {
	user, err := s.GetStaff(ctx, adminID, id)
	if err != nil {
		return nil, err
	}

	if input.Role == domain.RoleAdmin {
		return nil, fmt.Errorf("staff role must be waiter or kitchen")
	}

	user.Username = input.Username
	user.Email = input.Email
	user.Role = input.Role
	if input.Image != "" {
		user.Image = input.Image
	}

	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update staff: %w", err)
	}

	return user, nil
}

func (s *StaffService) DeleteStaff(ctx context.Context, adminID, id primitive.ObjectID) error {
	if adminID == id {
		return fmt.Errorf("cannot delete the admin account")
	}

	if err := s.userRepo.Delete(ctx, adminID, id); err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}

	s.logger.Infow("staff deleted", "user_id", id.Hex())

	return nil
}
