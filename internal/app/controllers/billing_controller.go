package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karan/societyhub/internal/app/models/dto"
	"github.com/karan/societyhub/internal/app/services"
	"github.com/karan/societyhub/internal/middleware"
	"github.com/karan/societyhub/internal/pkg/apperrors"
)

// BillingController handles bill and payment operations
type BillingController struct {
	billingService *services.BillingService
}

// NewBillingController creates a new BillingController
func NewBillingController(billingService *services.BillingService) *BillingController {
	return &BillingController{
		billingService: billingService,
	}
}

// GetAllBills retrieves bills visible to the caller
// @Summary List bills
// @Description Retrieves bills ordered by due date. Admins see all or filter by residentId; residents see only their own.
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Param residentId query int false "Filter by resident ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Bill} "Bills retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bills [get]
func (c *BillingController) GetAllBills(ctx *gin.Context) {
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

	bills, err := c.billingService.ListBills(ctx, identity, residentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(bills))
}

// CreateBill raises a bill against a resident
// @Summary Create a bill
// @Description Raises a bill against a resident. Admin only.
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBillRequest true "Bill information"
// @Success 201 {object} dto.APIResponse{data=models.Bill} "Bill created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Referenced resident does not exist"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bills [post]
func (c *BillingController) CreateBill(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.CreateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid bill data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	bill, err := c.billingService.CreateBill(ctx, identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(bill))
}

// UpdateBillStatus transitions a bill's status
// @Summary Update bill status
// @Description Marks a bill Paid, Pending or Overdue. Admin only.
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bill ID"
// @Param request body dto.UpdateBillRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Bill} "Bill updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Bill not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /bills/{id} [put]
func (c *BillingController) UpdateBillStatus(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		invalidIDResponse(ctx, "Invalid bill ID")
		return
	}

	var req dto.UpdateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid bill data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	bill, err := c.billingService.UpdateBillStatus(ctx, identity, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(bill))
}

// GetAllPayments retrieves payments visible to the caller
// @Summary List payments
// @Description Retrieves payments, newest first. Admins see all or filter by residentId; residents see only their own.
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Param residentId query int false "Filter by resident ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Payment} "Payments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments [get]
func (c *BillingController) GetAllPayments(ctx *gin.Context) {
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

	payments, err := c.billingService.ListPayments(ctx, identity, residentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(payments))
}

// CreatePayment records a payment and settles a matching bill
// @Summary Record a payment
// @Description Records a payment and, for settleable payment types, marks the resident's oldest pending bill Paid in the same transaction. Residents may only pay for themselves.
// @Tags billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePaymentRequest true "Payment information"
// @Success 201 {object} dto.APIResponse{data=dto.PaymentResult} "Payment recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Residents may only pay for themselves"
// @Failure 409 {object} dto.ErrorResponse "Referenced resident does not exist"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments [post]
func (c *BillingController) CreatePayment(ctx *gin.Context) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthenticated)
		return
	}

	var req dto.CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid payment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.billingService.RecordPayment(ctx, identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(result))
}
