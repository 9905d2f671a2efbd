package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/RubachokBoss/school-monitoring/internal/models"
	"github.com/RubachokBoss/school-monitoring/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const bearerPrefix = "Bearer "

type AuthConfig struct {
	PasswordScheme       string
	DefaultAdminEmail    string
	DefaultAdminName     string
	DefaultAdminPassword string
}

type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Authenticate(ctx context.Context, authorization string) (*models.Admin, string, error)
	Logout(ctx context.Context, token string) error
	EnsureDefaultAdmin(ctx context.Context) error
}

type authService struct {
	adminRepo repository.AdminRepository
	tokenRepo repository.TokenRepository
	config    AuthConfig
	logger    zerolog.Logger
}

func NewAuthService(
	adminRepo repository.AdminRepository,
	tokenRepo repository.TokenRepository,
	logger zerolog.Logger,
	config AuthConfig,
) AuthService {
	return &authService{
		adminRepo: adminRepo,
		tokenRepo: tokenRepo,
		config:    config,
		logger:    logger,
	}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	if admin == nil || !VerifyPassword(admin.PasswordHash, req.Password) {
		s.logger.Warn().Str("email", req.Email).Msg("Login rejected")
		return nil, ErrInvalidCredentials
	}

	value, err := generateToken()
	if err != nil {
		return nil, err
	}

	token := &models.Token{
		ID:        newID(),
		Token:     value,
		AdminID:   admin.ID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	s.logger.Info().
		Str("admin_id", admin.ID).
		Str("email", admin.Email).
		Msg("Admin logged in")

	name := admin.Name
	if name == "" {
		name = "Admin"
	}

	return &models.LoginResponse{
		Token: value,
		Name:  name,
		Email: admin.Email,
	}, nil
}

// Authenticate resolves the Authorization header to an admin and returns the bare token.
func (s *authService) Authenticate(ctx context.Context, authorization string) (*models.Admin, string, error) {
	value, ok := BearerToken(authorization)
	if !ok {
		return nil, "", ErrUnauthorized
	}

	token, err := s.tokenRepo.GetByToken(ctx, value)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get token: %w", err)
	}
	if token == nil {
		return nil, "", ErrInvalidToken
	}

	admin, err := s.adminRepo.GetByID(ctx, token.AdminID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get admin: %w", err)
	}
	if admin == nil {
		return nil, "", ErrInvalidAdmin
	}

	return admin, value, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	deleted, err := s.tokenRepo.DeleteByToken(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}

	s.logger.Debug().Int64("deleted", deleted).Msg("Token revoked")
	return nil
}

func (s *authService) EnsureDefaultAdmin(ctx context.Context) error {
	existing, err := s.adminRepo.GetByEmail(ctx, s.config.DefaultAdminEmail)
	if err != nil {
		return fmt.Errorf("failed to check default admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := HashPassword(s.config.PasswordScheme, s.config.DefaultAdminPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := &models.Admin{
		ID:           newID(),
		Email:        s.config.DefaultAdminEmail,
		Name:         s.config.DefaultAdminName,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	s.logger.Info().Str("email", admin.Email).Msg("Default admin created")
	return nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func BearerToken(authorization string) (string, bool) {
	if !strings.HasPrefix(authorization, bearerPrefix) {
		return "", false
	}
	token := authorization[len(bearerPrefix):]
	if token == "" {
		return "", false
	}
	return token, true
}

func generateToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return strings.ReplaceAll(id.String(), "-", ""), nil
}
