package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/karan/societyhub/internal/app/models"
	"github.com/karan/societyhub/internal/app/models/dto"
	"github.com/karan/societyhub/internal/cache"
	"github.com/karan/societyhub/internal/pkg/apperrors"
	"github.com/karan/societyhub/internal/pkg/auth"
	"github.com/karan/societyhub/internal/pkg/validation"
)

// AdminAccountStore is the admin lookup surface AuthService needs
type AdminAccountStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// ResidentAccountStore is the resident lookup/registration surface AuthService needs
type ResidentAccountStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Resident, error)
	Create(ctx context.Context, resident *models.Resident) error
}

// AuthService handles authentication operations
type AuthService struct {
	adminRepo    AdminAccountStore
	residentRepo ResidentAccountStore
	jwtService   *auth.JWTService
	views        *cache.ViewCache
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	adminRepo AdminAccountStore,
	residentRepo ResidentAccountStore,
	jwtService *auth.JWTService,
	views *cache.ViewCache,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		adminRepo:    adminRepo,
		residentRepo: residentRepo,
		jwtService:   jwtService,
		views:        views,
		logger:       logger,
	}
}

// Login checks credentials against the account table selected by userType and
// issues a signed session token. Failures are uniformly ErrInvalidCredentials
// so callers cannot probe which emails exist.
func (s *AuthService) Login(ctx context.Context, email, password, userType string) (*dto.AuthResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password are required")
	}

	var identity models.Identity

	switch userType {
	case string(models.RoleAdmin):
		admin, err := s.adminRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, s.loginFailure(err, email)
		}
		if !auth.CheckPassword(admin.PasswordHash, password) {
			return nil, apperrors.ErrInvalidCredentials
		}
		identity = models.Identity{
			SubjectID: admin.ID,
			Name:      admin.Name,
			Email:     admin.Email,
			Role:      models.RoleAdmin,
		}

	case string(models.RoleResident):
		resident, err := s.residentRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, s.loginFailure(err, email)
		}
		if !auth.CheckPassword(resident.PasswordHash, password) {
			return nil, apperrors.ErrInvalidCredentials
		}
		identity = models.Identity{
			SubjectID: resident.ID,
			Name:      resident.Name,
			Email:     resident.Email,
			Role:      models.RoleResident,
		}

	default:
		return nil, apperrors.NewValidationError("userType must be admin or resident")
	}

	token, expiresIn, err := s.jwtService.GenerateToken(identity)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("Failed to sign session token")
		return nil, fmt.Errorf("error issuing session token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: identity,
	}, nil
}

// loginFailure collapses unknown-account errors into ErrInvalidCredentials
// while letting storage failures through.
func (s *AuthService) loginFailure(err error, email string) error {
	if errors.Is(err, apperrors.ErrResourceNotFound) || errors.Is(err, apperrors.ErrResidentNotFound) {
		s.logger.Debug().Str("email", email).Msg("Login attempt for unknown account")
		return apperrors.ErrInvalidCredentials
	}
	return err
}

// Register creates a resident account from self-registration data and logs
// the new resident straight in.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	resident := &models.Resident{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		Address:      strings.TrimSpace(req.Address),
		PasswordHash: hash,
	}

	if err := s.residentRepo.Create(ctx, resident); err != nil {
		return nil, err
	}

	s.views.Invalidate(ctx, cache.ViewResidents)

	identity := models.Identity{
		SubjectID: resident.ID,
		Name:      resident.Name,
		Email:     resident.Email,
		Role:      models.RoleResident,
	}

	token, expiresIn, err := s.jwtService.GenerateToken(identity)
	if err != nil {
		return nil, fmt.Errorf("error issuing session token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: identity,
	}, nil
}

func (s *AuthService) validateRegistration(req *dto.RegisterRequest) error {
	if !validation.IsNonEmpty(req.Name) {
		return apperrors.NewValidationError("name is required")
	}
	if !validation.IsValidEmail(req.Email) {
		return apperrors.NewValidationError("email format is invalid")
	}
	if !validation.IsValidPhone(req.Phone) {
		return apperrors.NewValidationError("phone format is invalid")
	}
	if !validation.IsNonEmpty(req.Address) {
		return apperrors.NewValidationError("address is required")
	}
	if !validation.IsValidPassword(req.Password) {
		return apperrors.NewValidationError("password must be at least 8 characters")
	}
	return nil
}
