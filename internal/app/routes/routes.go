package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/karan/societyhub/internal/app/controllers"
	"github.com/karan/societyhub/internal/app/models/dto"
	"github.com/karan/societyhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	residentController *controllers.ResidentController,
	propertyController *controllers.PropertyController,
	billingController *controllers.BillingController,
	maintenanceController *controllers.MaintenanceController,
	eventController *controllers.EventController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireAuth())
	{
		authenticated.GET("/auth/me", authController.GetProfile)

		// Resident directory. Reads resolve scope per role inside the
		// service; writes are admin only.
		residents := authenticated.Group("/residents")
		{
			residents.GET("", residentController.GetAllResidents)
			residents.GET("/:id", residentController.GetResidentByID)

			residentsAdminProtected := residents.Group("")
			residentsAdminProtected.Use(authMiddleware.RequireAdmin())
			{
				residentsAdminProtected.POST("", residentController.CreateResident)
				residentsAdminProtected.PUT("/:id", residentController.UpdateResident)
				residentsAdminProtected.DELETE("/:id", residentController.DeleteResident)
			}
		}

		// Property registry
		properties := authenticated.Group("/properties")
		{
			properties.GET("", propertyController.GetAllProperties)
			properties.GET("/:id", propertyController.GetPropertyByID)

			propertiesAdminProtected := properties.Group("")
			propertiesAdminProtected.Use(authMiddleware.RequireAdmin())
			{
				propertiesAdminProtected.POST("", propertyController.CreateProperty)
				propertiesAdminProtected.PUT("/:id", propertyController.UpdateProperty)
				propertiesAdminProtected.DELETE("/:id", propertyController.DeleteProperty)
			}
		}

		// Billing. Residents record their own payments, so POST /payments
		// stays inside the plain authenticated group.
		bills := authenticated.Group("/bills")
		{
			bills.GET("", billingController.GetAllBills)

			billsAdminProtected := bills.Group("")
			billsAdminProtected.Use(authMiddleware.RequireAdmin())
			{
				billsAdminProtected.POST("", billingController.CreateBill)
				billsAdminProtected.PUT("/:id", billingController.UpdateBillStatus)
			}
		}

		payments := authenticated.Group("/payments")
		{
			payments.GET("", billingController.GetAllPayments)
			payments.POST("", billingController.CreatePayment)
		}

		// Maintenance requests. Any authenticated user may file one;
		// status transitions are admin only.
		maintenance := authenticated.Group("/maintenance-requests")
		{
			maintenance.GET("", maintenanceController.GetAllRequests)
			maintenance.POST("", maintenanceController.CreateRequest)

			maintenanceAdminProtected := maintenance.Group("")
			maintenanceAdminProtected.Use(authMiddleware.RequireAdmin())
			{
				maintenanceAdminProtected.PUT("/:id", maintenanceController.UpdateRequestStatus)
			}
		}

		// Community events
		events := authenticated.Group("/events")
		{
			events.GET("", eventController.GetAllEvents)
			events.GET("/:id", eventController.GetEventByID)

			eventsAdminProtected := events.Group("")
			eventsAdminProtected.Use(authMiddleware.RequireAdmin())
			{
				eventsAdminProtected.POST("", eventController.CreateEvent)
				eventsAdminProtected.PUT("/:id", eventController.UpdateEvent)
				eventsAdminProtected.DELETE("/:id", eventController.DeleteEvent)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})
}
