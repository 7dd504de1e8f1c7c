package services

import (
	"context"
	"strings"

	"github.com/karan/societyhub/internal/app/auth"
	"github.com/karan/societyhub/internal/app/models"
	"github.com/karan/societyhub/internal/app/models/dto"
	"github.com/karan/societyhub/internal/cache"
	"github.com/karan/societyhub/internal/pkg/apperrors"
	"github.com/karan/societyhub/internal/pkg/validation"
)

// PropertyStore is the repository surface PropertyService needs
type PropertyStore interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id int64) (*models.Property, error)
	GetAll(ctx context.Context) ([]*models.Property, error)
	GetByResidentID(ctx context.Context, residentID int64) ([]*models.Property, error)
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id int64) error
}

// PropertyService handles property records and their resident ownership
type PropertyService struct {
	propertyRepo PropertyStore
	policy       *auth.Policy
	views        *cache.ViewCache
}

// NewPropertyService creates a new property service
func NewPropertyService(propertyRepo PropertyStore, policy *auth.Policy, views *cache.ViewCache) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		policy:       policy,
		views:        views,
	}
}

// ListProperties returns properties in the caller's resolved scope: all rows
// for admins, the caller's own rows for residents.
func (s *PropertyService) ListProperties(ctx context.Context, identity models.Identity, requestedResidentID int64) ([]*models.Property, error) {
	scope, err := s.policy.ResolveResidentScope(identity, requestedResidentID)
	if err != nil {
		return nil, err
	}

	if scope == auth.ScopeAll {
		return listCached(ctx, s.views, cache.ViewProperties, s.propertyRepo.GetAll)
	}

	return s.propertyRepo.GetByResidentID(ctx, scope)
}

// GetProperty returns one property. Residents may only read their own.
func (s *PropertyService) GetProperty(ctx context.Context, identity models.Identity, id int64) (*models.Property, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("property id must be positive")
	}

	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.policy.RequireOwn(identity, property.ResidentID); err != nil {
		return nil, err
	}

	return property, nil
}

// CreateProperty registers a property for a resident. Admin only.
func (s *PropertyService) CreateProperty(ctx context.Context, identity models.Identity, req *dto.CreatePropertyRequest) (*models.Property, error) {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return nil, err
	}
	if err := validatePropertyFields(req.ResidentID, req.Address, req.PropertyType); err != nil {
		return nil, err
	}

	property := &models.Property{
		ResidentID:   req.ResidentID,
		Address:      strings.TrimSpace(req.Address),
		PropertyType: req.PropertyType,
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	s.views.Invalidate(ctx, cache.ViewProperties)
	return property, nil
}

// UpdateProperty updates a property. Admin only.
func (s *PropertyService) UpdateProperty(ctx context.Context, identity models.Identity, id int64, req *dto.UpdatePropertyRequest) (*models.Property, error) {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, apperrors.NewValidationError("property id must be positive")
	}
	if err := validatePropertyFields(req.ResidentID, req.Address, req.PropertyType); err != nil {
		return nil, err
	}

	property := &models.Property{
		ID:           id,
		ResidentID:   req.ResidentID,
		Address:      strings.TrimSpace(req.Address),
		PropertyType: req.PropertyType,
	}

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	s.views.Invalidate(ctx, cache.ViewProperties)
	return s.propertyRepo.GetByID(ctx, id)
}

// DeleteProperty removes a property. Admin only.
func (s *PropertyService) DeleteProperty(ctx context.Context, identity models.Identity, id int64) error {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return err
	}
	if id <= 0 {
		return apperrors.NewValidationError("property id must be positive")
	}

	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.views.Invalidate(ctx, cache.ViewProperties)
	return nil
}

func validatePropertyFields(residentID int64, address string, propertyType models.PropertyType) error {
	if residentID <= 0 {
		return apperrors.NewValidationError("resident id must be positive")
	}
	if !validation.IsNonEmpty(address) {
		return apperrors.NewValidationError("address is required")
	}
	if !models.IsValidPropertyType(propertyType) {
		return apperrors.NewValidationError("property type must be Apartment, House or Villa")
	}
	return nil
}
