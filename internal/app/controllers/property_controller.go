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

// PropertyController handles property registry operations
type PropertyController struct {
	propertyService *services.PropertyService
}

// NewPropertyController creates a new PropertyController
func NewPropertyController(propertyService *services.PropertyService) *PropertyController {
	return &PropertyController{
		propertyService: propertyService,
	}
}

// GetAllProperties retrieves properties visible to the caller
// @Summary List properties
// @Description Retrieves properties. Admins see all or filter by residentId; residents see only their own.
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param residentId query int false "Filter by resident ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Property} "Properties retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /properties [get]
func (c *PropertyController) GetAllProperties(ctx *gin.Context) {
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

	properties, err := c.propertyService.ListProperties(ctx, identity, residentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(properties))
}

// GetPropertyByID retrieves a property by ID
// @Summary Get property by ID
// @Description Retrieves a specific property. Residents may only read their own.
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} dto.APIResponse{data=models.Property} "Property retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid property ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Property not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /properties/{id} [get]
func (c *PropertyController) GetPropertyByID(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "Invalid property ID")
		return
	}

	property, err := c.propertyService.GetProperty(ctx, identity, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(property))
}

// CreateProperty registers a property
// @Summary Create a property
// @Description Registers a property against a resident. Admin only.
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePropertyRequest true "Property information"
// @Success 201 {object} dto.APIResponse{data=models.Property} "Property created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Referenced resident does not exist"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /properties [post]
func (c *PropertyController) CreateProperty(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.CreatePropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid property data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	property, err := c.propertyService.CreateProperty(ctx, identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(property))
}

// UpdateProperty updates an existing property
// @Summary Update a property
// @Description Updates an existing property with the provided information. Admin only.
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param request body dto.UpdatePropertyRequest true "Updated property information"
// @Success 200 {object} dto.APIResponse{data=models.Property} "Property updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Property not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /properties/{id} [put]
func (c *PropertyController) UpdateProperty(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "Invalid property ID")
		return
	}

	var req dto.UpdatePropertyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid property data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	property, err := c.propertyService.UpdateProperty(ctx, identity, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(property))
}

// DeleteProperty deletes a property
// @Summary Delete a property
// @Description Deletes an existing property by its ID. Admin only.
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 204 "Property deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid property ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Property not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /properties/{id} [delete]
func (c *PropertyController) DeleteProperty(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "Invalid property ID")
		return
	}

	if err := c.propertyService.DeleteProperty(ctx, identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.NewSuccessResponse(nil))
}

// parseResidentScopeQuery reads the optional residentId filter. Zero means
// no explicit filter; the service resolves it against the caller's role.
func parseResidentScopeQuery(ctx *gin.Context) (int64, error) {
	raw := ctx.Query("residentId")
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.ErrValidationFailed
	}
	return id, nil
}
