package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/karan/societyhub/internal/app/models/dto"
	"github.com/karan/societyhub/internal/app/services"
	"github.com/karan/societyhub/internal/middleware"
	"github.com/karan/societyhub/internal/pkg/apperrors"
)

// ResidentController handles the admin-facing resident directory
type ResidentController struct {
	residentService *services.ResidentService
}

// NewResidentController creates a new ResidentController
func NewResidentController(residentService *services.ResidentService) *ResidentController {
	return &ResidentController{
		residentService: residentService,
	}
}

// GetAllResidents retrieves the resident directory
// @Summary List residents
// @Description Retrieves all residents, newest first. Admin only.
// @Tags residents
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Resident} "Residents retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /residents [get]
func (c *ResidentController) GetAllResidents(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	residents, err := c.residentService.ListResidents(ctx, identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(residents))
}

// GetResidentByID retrieves a resident by ID
// @Summary Get resident by ID
// @Description Retrieves a specific resident. Admins can read any record, residents only their own.
// @Tags residents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resident ID"
// @Success 200 {object} dto.APIResponse{data=models.Resident} "Resident retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid resident ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Resident not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /residents/{id} [get]
func (c *ResidentController) GetResidentByID(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "Invalid resident ID")
		return
	}

	resident, err := c.residentService.GetResident(ctx, identity, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resident))
}

// CreateResident registers a resident account
// @Summary Create a resident
// @Description Creates a resident account with the provided information. Admin only.
// @Tags residents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateResidentRequest true "Resident information"
// @Success 201 {object} dto.APIResponse{data=models.Resident} "Resident created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /residents [post]
func (c *ResidentController) CreateResident(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.CreateResidentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid resident data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resident, err := c.residentService.CreateResident(ctx, identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resident))
}

// UpdateResident updates an existing resident
// @Summary Update a resident
// @Description Updates an existing resident with the provided information. Admin only.
// @Tags residents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resident ID"
// @Param request body dto.UpdateResidentRequest true "Updated resident information"
// @Success 200 {object} dto.APIResponse{data=models.Resident} "Resident updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Resident not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /residents/{id} [put]
func (c *ResidentController) UpdateResident(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "Invalid resident ID")
		return
	}

	var req dto.UpdateResidentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid resident data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resident, err := c.residentService.UpdateResident(ctx, identity, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resident))
}

// DeleteResident deletes a resident
// @Summary Delete a resident
// @Description Deletes a resident that has no dependent records. Admin only.
// @Tags residents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resident ID"
// @Success 204 "Resident deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid resident ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Resident not found"
// @Failure 409 {object} dto.ErrorResponse "Resident has dependent records"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /residents/{id} [delete]
func (c *ResidentController) DeleteResident(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "Invalid resident ID")
		return
	}

	if err := c.residentService.DeleteResident(ctx, identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.NewSuccessResponse(nil))
}

// parseIDParam parses a positive int64 path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.ErrValidationFailed
	}
	return id, nil
}

// invalidIDResponse writes the standard bad-path-parameter envelope
func invalidIDResponse(ctx *gin.Context, message string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
	errorDetail = errorDetail.WithDetails("ID must be a positive number")
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
