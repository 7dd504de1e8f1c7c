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

// MaintenanceStore is the repository surface MaintenanceService needs
type MaintenanceStore interface {
	Create(ctx context.Context, request *models.MaintenanceRequest) error
	GetAll(ctx context.Context) ([]*models.MaintenanceRequest, error)
	GetByResidentID(ctx context.Context, residentID int64) ([]*models.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, id int64, status models.RequestStatus) error
}

// MaintenanceService handles maintenance requests and their status lifecycle
type MaintenanceService struct {
	maintenanceRepo MaintenanceStore
	policy          *auth.Policy
	views           *cache.ViewCache
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(maintenanceRepo MaintenanceStore, policy *auth.Policy, views *cache.ViewCache) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		policy:          policy,
		views:           views,
	}
}

// ListRequests returns maintenance requests in the caller's resolved scope
func (s *MaintenanceService) ListRequests(ctx context.Context, identity models.Identity, requestedResidentID int64) ([]*models.MaintenanceRequest, error) {
	scope, err := s.policy.ResolveResidentScope(identity, requestedResidentID)
	if err != nil {
		return nil, err
	}

	if scope == auth.ScopeAll {
		return listCached(ctx, s.views, cache.ViewMaintenance, s.maintenanceRepo.GetAll)
	}

	return s.maintenanceRepo.GetByResidentID(ctx, scope)
}

// CreateRequest opens a maintenance request. A resident's request is always
// filed under their own id regardless of the payload; an admin may file for
// any resident.
func (s *MaintenanceService) CreateRequest(ctx context.Context, identity models.Identity, req *dto.CreateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	if !validation.IsNonEmpty(req.Description) {
		return nil, apperrors.NewValidationError("description is required")
	}

	residentID := req.ResidentID
	if !identity.IsAdmin() {
		residentID = identity.SubjectID
	}
	if residentID <= 0 {
		return nil, apperrors.NewValidationError("resident id must be positive")
	}

	request := &models.MaintenanceRequest{
		ResidentID:  residentID,
		Description: strings.TrimSpace(req.Description),
		Status:      models.RequestPending,
	}

	if err := s.maintenanceRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.views.Invalidate(ctx, cache.ViewMaintenance)
	return request, nil
}

// UpdateRequestStatus transitions a request's status. Admin only.
func (s *MaintenanceService) UpdateRequestStatus(ctx context.Context, identity models.Identity, id int64, status models.RequestStatus) error {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return err
	}
	if id <= 0 {
		return apperrors.NewValidationError("request id must be positive")
	}
	if !models.IsValidRequestStatus(status) {
		return apperrors.NewValidationError("status must be Pending, In Progress or Completed")
	}

	if err := s.maintenanceRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.views.Invalidate(ctx, cache.ViewMaintenance)
	return nil
}
