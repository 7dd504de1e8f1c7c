package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karan/societyhub/internal/app/models/dto"
	"github.com/karan/societyhub/internal/app/services"
	"github.com/karan/societyhub/internal/middleware"
	"github.com/karan/societyhub/internal/pkg/apperrors"
)

// MaintenanceController handles maintenance request operations
type MaintenanceController struct {
	maintenanceService *services.MaintenanceService
}

// NewMaintenanceController creates a new MaintenanceController
func NewMaintenanceController(maintenanceService *services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{
		maintenanceService: maintenanceService,
	}
}

// GetAllRequests retrieves maintenance requests visible to the caller
// @Summary List maintenance requests
// @Description Retrieves maintenance requests, newest first. Admins see all or filter by residentId; residents see only their own.
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Param residentId query int false "Filter by resident ID"
// @Success 200 {object} dto.APIResponse{data=[]models.MaintenanceRequest} "Requests retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /maintenance-requests [get]
func (c *MaintenanceController) GetAllRequests(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	residentID, err := parseResidentScopeQuery(ctx)
	if err != nil {
		invalidIDResponse(ctx, "Invalid resident ID filter")
		return
	}

	requests, err := c.maintenanceService.ListRequests(ctx, identity, residentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(requests))
}

// CreateRequest opens a maintenance request
// @Summary Open a maintenance request
// @Description Opens a maintenance request. Residents always file under their own account; admins may file for any resident.
// @Tags maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMaintenanceRequest true "Request information"
// @Success 201 {object} dto.APIResponse{data=models.MaintenanceRequest} "Request created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Referenced resident does not exist"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /maintenance-requests [post]
func (c *MaintenanceController) CreateRequest(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.CreateMaintenanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid maintenance request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	request, err := c.maintenanceService.CreateRequest(ctx, identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(request))
}

// UpdateRequestStatus transitions a maintenance request's status
// @Summary Update request status
// @Description Marks a maintenance request Pending, In Progress or Completed. Admin only.
// @Tags maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body dto.UpdateMaintenanceRequest true "New status"
// @Success 200 {object} dto.APIResponse "Request updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /maintenance-requests/{id} [put]
func (c *MaintenanceController) UpdateRequestStatus(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "Invalid request ID")
		return
	}

	var req dto.UpdateMaintenanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid maintenance request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.maintenanceService.UpdateRequestStatus(ctx, identity, id, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
}
