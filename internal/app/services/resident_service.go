package services

import (
	"context"
	"strings"

	"github.com/karan/societyhub/internal/app/auth"
	"github.com/karan/societyhub/internal/app/models"
	"github.com/karan/societyhub/internal/app/models/dto"
	"github.com/karan/societyhub/internal/cache"
	"github.com/karan/societyhub/internal/pkg/apperrors"
	pkgauth "github.com/karan/societyhub/internal/pkg/auth"
	"github.com/karan/societyhub/internal/pkg/validation"
)

// ResidentStore is the repository surface ResidentService needs
type ResidentStore interface {
	Create(ctx context.Context, resident *models.Resident) error
	GetByID(ctx context.Context, id int64) (*models.Resident, error)
	GetAll(ctx context.Context) ([]*models.Resident, error)
	Update(ctx context.Context, resident *models.Resident) error
	HasDependentRecords(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// ResidentService handles admin-managed resident records
type ResidentService struct {
	residentRepo ResidentStore
	policy       *auth.Policy
	views        *cache.ViewCache
}

// NewResidentService creates a new resident service
func NewResidentService(residentRepo ResidentStore, policy *auth.Policy, views *cache.ViewCache) *ResidentService {
	return &ResidentService{
		residentRepo: residentRepo,
		policy:       policy,
		views:        views,
	}
}

// ListResidents returns all residents. Admin only.
func (s *ResidentService) ListResidents(ctx context.Context, identity models.Identity) ([]*models.Resident, error) {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return nil, err
	}

	return listCached(ctx, s.views, cache.ViewResidents, s.residentRepo.GetAll)
}

// GetResident returns one resident by id. Admin only.
func (s *ResidentService) GetResident(ctx context.Context, identity models.Identity, id int64) (*models.Resident, error) {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, apperrors.NewValidationError("resident id must be positive")
	}

	return s.residentRepo.GetByID(ctx, id)
}

// CreateResident registers a resident on behalf of the office. Admin only.
func (s *ResidentService) CreateResident(ctx context.Context, identity models.Identity, req *dto.CreateResidentRequest) (*models.Resident, error) {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return nil, err
	}
	if err := validateResidentFields(req.Name, req.Email, req.Phone, req.Address); err != nil {
		return nil, err
	}
	if !validation.IsValidPassword(req.Password) {
		return nil, apperrors.NewValidationError("password must be at least 8 characters")
	}

	hash, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, err
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
	return resident, nil
}

// UpdateResident updates a resident's contact fields. Admin only.
func (s *ResidentService) UpdateResident(ctx context.Context, identity models.Identity, id int64, req *dto.UpdateResidentRequest) (*models.Resident, error) {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, apperrors.NewValidationError("resident id must be positive")
	}
	if err := validateResidentFields(req.Name, req.Email, req.Phone, req.Address); err != nil {
		return nil, err
	}

	resident := &models.Resident{
		ID:      id,
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Address: strings.TrimSpace(req.Address),
	}

	if err := s.residentRepo.Update(ctx, resident); err != nil {
		return nil, err
	}

	s.views.Invalidate(ctx, cache.ViewResidents)
	return s.residentRepo.GetByID(ctx, id)
}

// DeleteResident removes a resident. Deletion is blocked while properties,
// bills, payments or maintenance requests still reference them.
func (s *ResidentService) DeleteResident(ctx context.Context, identity models.Identity, id int64) error {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return err
	}
	if id <= 0 {
		return apperrors.NewValidationError("resident id must be positive")
	}

	hasRecords, err := s.residentRepo.HasDependentRecords(ctx, id)
	if err != nil {
		return err
	}
	if hasRecords {
		return apperrors.ErrResidentHasRecords
	}

	if err := s.residentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.views.Invalidate(ctx, cache.ViewResidents)
	return nil
}

func validateResidentFields(name, email, phone, address string) error {
	if !validation.IsNonEmpty(name) {
		return apperrors.NewValidationError("name is required")
	}
	if !validation.IsValidEmail(email) {
		return apperrors.NewValidationError("email format is invalid")
	}
	if !validation.IsValidPhone(phone) {
		return apperrors.NewValidationError("phone format is invalid")
	}
	if !validation.IsNonEmpty(address) {
		return apperrors.NewValidationError("address is required")
	}
	return nil
}
