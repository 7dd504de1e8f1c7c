package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karan/societyhub/internal/app/auth"
	"github.com/karan/societyhub/internal/app/models"
	"github.com/karan/societyhub/internal/app/models/dto"
	"github.com/karan/societyhub/internal/pkg/apperrors"
)

type fakeMaintenanceStore struct {
	requests []*models.MaintenanceRequest

	statusUpdates map[int64]models.RequestStatus
}

func (f *fakeMaintenanceStore) Create(ctx context.Context, request *models.MaintenanceRequest) error {
	request.ID = int64(len(f.requests) + 1)
	f.requests = append(f.requests, request)
	return nil
}

func (f *fakeMaintenanceStore) GetAll(ctx context.Context) ([]*models.MaintenanceRequest, error) {
	return f.requests, nil
}

func (f *fakeMaintenanceStore) GetByResidentID(ctx context.Context, residentID int64) ([]*models.MaintenanceRequest, error) {
	var out []*models.MaintenanceRequest
	for _, r := range f.requests {
		if r.ResidentID == residentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeMaintenanceStore) UpdateStatus(ctx context.Context, id int64, status models.RequestStatus) error {
	for _, r := range f.requests {
		if r.ID == id {
			if f.statusUpdates == nil {
				f.statusUpdates = make(map[int64]models.RequestStatus)
			}
			f.statusUpdates[id] = status
			r.Status = status
			return nil
		}
	}
	return apperrors.ErrRequestNotFound
}

func newMaintenanceService(t *testing.T, store *fakeMaintenanceStore) *MaintenanceService {
	t.Helper()
	return NewMaintenanceService(store, auth.NewPolicy(), newTestViews(t))
}

func TestCreateRequestPinsResidentToOwnID(t *testing.T) {
	store := &fakeMaintenanceStore{}
	svc := newMaintenanceService(t, store)

	// Resident names someone else; the payload id must be ignored
	request, err := svc.CreateRequest(context.Background(), residentIdentity, &dto.CreateMaintenanceRequest{
		ResidentID:  99,
		Description: "Lift stuck on the 4th floor",
	})
	require.NoError(t, err)

	assert.Equal(t, residentIdentity.SubjectID, request.ResidentID)
	assert.Equal(t, models.RequestPending, request.Status)
}

func TestCreateRequestAdminFilesForAnyResident(t *testing.T) {
	store := &fakeMaintenanceStore{}
	svc := newMaintenanceService(t, store)

	request, err := svc.CreateRequest(context.Background(), adminIdentity, &dto.CreateMaintenanceRequest{
		ResidentID:  42,
		Description: "Leaking pipe reported at the office",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), request.ResidentID)
}

func TestCreateRequestValidation(t *testing.T) {
	svc := newMaintenanceService(t, &fakeMaintenanceStore{})

	_, err := svc.CreateRequest(context.Background(), residentIdentity, &dto.CreateMaintenanceRequest{
		Description: "   ",
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// Admin must name a resident explicitly
	_, err = svc.CreateRequest(context.Background(), adminIdentity, &dto.CreateMaintenanceRequest{
		Description: "No resident named",
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestListRequestsScoping(t *testing.T) {
	store := &fakeMaintenanceStore{requests: []*models.MaintenanceRequest{
		{ID: 1, ResidentID: 7, Status: models.RequestPending},
		{ID: 2, ResidentID: 8, Status: models.RequestCompleted},
	}}
	svc := newMaintenanceService(t, store)

	all, err := svc.ListRequests(context.Background(), adminIdentity, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.ListRequests(context.Background(), residentIdentity, 0)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, int64(7), own[0].ResidentID)

	_, err = svc.ListRequests(context.Background(), residentIdentity, 8)
	require.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateRequestStatus(t *testing.T) {
	store := &fakeMaintenanceStore{requests: []*models.MaintenanceRequest{
		{ID: 1, ResidentID: 7, Status: models.RequestPending},
	}}
	svc := newMaintenanceService(t, store)

	t.Run("admin transitions status", func(t *testing.T) {
		err := svc.UpdateRequestStatus(context.Background(), adminIdentity, 1, models.RequestInProgress)
		require.NoError(t, err)
		assert.Equal(t, models.RequestInProgress, store.statusUpdates[1])
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		err := svc.UpdateRequestStatus(context.Background(), adminIdentity, 1, "Escalated")
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("resident is forbidden", func(t *testing.T) {
		err := svc.UpdateRequestStatus(context.Background(), residentIdentity, 1, models.RequestCompleted)
		require.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("missing request", func(t *testing.T) {
		err := svc.UpdateRequestStatus(context.Background(), adminIdentity, 99, models.RequestCompleted)
		require.ErrorIs(t, err, apperrors.ErrRequestNotFound)
	})
}
