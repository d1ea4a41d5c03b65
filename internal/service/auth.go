package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"github.com/fevziatanoglu/cafe-management/internal/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo   repo.UserRepository
	tokenRepo  repo.RefreshTokenRepository
	menuRepo   repo.MenuRepository
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     *zap.SugaredLogger
}

type AuthConfig struct {
	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func NewAuthService(
	userRepo repo.UserRepository,
	tokenRepo repo.RefreshTokenRepository,
	menuRepo repo.MenuRepository,
	cfg AuthConfig,
	logger *zap.SugaredLogger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		menuRepo:   menuRepo,
		jwtSecret:  []byte(cfg.JWTSecret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		logger:     logger,
	}
}

// RegisterAdmin creates a new tenant: the admin account plus an empty menu
// with a public slug derived from the username.
func (s *AuthService) RegisterAdmin(ctx context.Context, username, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Role:     domain.RoleAdmin,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	menu := &domain.Menu{
		Name:    username,
		Slug:    slugify(username),
		AdminID: user.AdminID,
	}
	if err := s.menuRepo.Create(ctx, menu); err != nil {
		return nil, fmt.Errorf("failed to create menu: %w", err)
	}

	s.logger.Infow("admin registered", "user_id", user.ID.Hex(), "slug", menu.Slug)

	return user, nil
}

// Login verifies credentials and issues an access token plus a refresh token
// to be carried in an http-only cookie.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, *domain.RefreshToken, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, fmt.Errorf("invalid credentials")
	}

	return s.issueSession(ctx, user)
}

// Refresh validates the refresh cookie value and rotates it.
func (s *AuthService) Refresh(ctx context.Context, value string) (*domain.Session, *domain.RefreshToken, error) {
	token, err := s.tokenRepo.GetByValue(ctx, value)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid refresh token")
	}

	if token.Expired(time.Now()) {
		_ = s.tokenRepo.DeleteByValue(ctx, value)
		return nil, nil, fmt.Errorf("refresh token expired")
	}

	user, err := s.userRepo.GetByID(ctx, token.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}

	// rotate: the old value must never issue a second session
	if err := s.tokenRepo.DeleteByValue(ctx, value); err != nil {
		return nil, nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return s.issueSession(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, value string) error {
	if value == "" {
		return nil
	}

	if err := s.tokenRepo.DeleteByValue(ctx, value); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

func (s *AuthService) issueSession(ctx context.Context, user *domain.User) (*domain.Session, *domain.RefreshToken, error) {
	accessToken, err := s.createAccessToken(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create access token: %w", err)
	}

	refresh := &domain.RefreshToken{
		Value:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.tokenRepo.Create(ctx, refresh); err != nil {
		return nil, nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	session := &domain.Session{
		Token: accessToken,
		User:  *user,
	}

	return session, refresh, nil
}

func (s *AuthService) createAccessToken(user *domain.User) (string, error) {
	claims := domain.Claims{
		UserID:  user.ID.Hex(),
		AdminID: user.AdminID.Hex(),
		Role:    user.Role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(s.accessTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ParseAccessToken validates a bearer token and returns its claims.
func (s *AuthService) ParseAccessToken(tokenStr string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug
}
