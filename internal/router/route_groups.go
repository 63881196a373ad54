package router

import (
	"optica_backend/internal/handlers"
	"optica_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers login and profile routes. Only the profile
// route sits behind the auth middleware.
func SetupAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.GET("/me", middleware.AuthMiddleware(), h.GetProfile)
	}
}

// SetupProductRoutes registers product CRUD routes.
func SetupProductRoutes(rg *gin.RouterGroup, h *handlers.ProductHandler) {
	products := rg.Group("/products")
	{
		products.POST("", h.CreateProduct)
		products.GET("", h.GetProducts)
		products.GET("/:id", h.GetProductByID)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}

// SetupPatientRoutes registers patient CRUD routes.
func SetupPatientRoutes(rg *gin.RouterGroup, h *handlers.PatientHandler) {
	patients := rg.Group("/patients")
	{
		patients.POST("", h.CreatePatient)
		patients.GET("", h.GetPatients)
		patients.GET("/:id", h.GetPatientByID)
		patients.PUT("/:id", h.UpdatePatient)
		patients.DELETE("/:id", h.DeletePatient)
	}
}

// SetupAppointmentRoutes registers appointment CRUD routes.
func SetupAppointmentRoutes(rg *gin.RouterGroup, h *handlers.AppointmentHandler) {
	appointments := rg.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.GetAppointments)
		appointments.GET("/:id", h.GetAppointmentByID)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}

// SetupSalesOrderRoutes registers sales order CRUD routes plus the line
// item routes. Items are created and deleted through their own flat
// collection, listing goes through the parent order.
func SetupSalesOrderRoutes(rg *gin.RouterGroup, h *handlers.SalesOrderHandler) {
	orders := rg.Group("/sales-orders")
	{
		orders.POST("", h.CreateSalesOrder)
		orders.GET("", h.GetSalesOrders)
		orders.GET("/:id", h.GetSalesOrderByID)
		orders.PUT("/:id", h.UpdateSalesOrder)
		orders.DELETE("/:id", h.DeleteSalesOrder)
		orders.GET("/:id/items", h.GetSalesOrderItems)
	}

	items := rg.Group("/sales-order-items")
	{
		items.POST("", h.CreateSalesOrderItem)
		items.DELETE("/:id", h.DeleteSalesOrderItem)
	}
}

// SetupPurchaseOrderRoutes registers purchase order CRUD routes plus the
// line item routes.
func SetupPurchaseOrderRoutes(rg *gin.RouterGroup, h *handlers.PurchaseOrderHandler) {
	orders := rg.Group("/purchase-orders")
	{
		orders.POST("", h.CreatePurchaseOrder)
		orders.GET("", h.GetPurchaseOrders)
		orders.GET("/:id", h.GetPurchaseOrderByID)
		orders.PUT("/:id", h.UpdatePurchaseOrder)
		orders.DELETE("/:id", h.DeletePurchaseOrder)
		orders.GET("/:id/items", h.GetPurchaseOrderItems)
	}

	items := rg.Group("/purchase-order-items")
	{
		items.POST("", h.CreatePurchaseOrderItem)
		items.DELETE("/:id", h.DeletePurchaseOrderItem)
	}
}

// SetupConsignmentRoutes registers consignment CRUD routes.
func SetupConsignmentRoutes(rg *gin.RouterGroup, h *handlers.ConsignmentHandler) {
	consignments := rg.Group("/consignments")
	{
		consignments.POST("", h.CreateConsignment)
		consignments.GET("", h.GetConsignments)
		consignments.GET("/:id", h.GetConsignmentByID)
		consignments.PUT("/:id", h.UpdateConsignment)
		consignments.DELETE("/:id", h.DeleteConsignment)
	}
}

// SetupPrescriptionRoutes registers prescription CRUD routes.
func SetupPrescriptionRoutes(rg *gin.RouterGroup, h *handlers.PrescriptionHandler) {
	prescriptions := rg.Group("/prescriptions")
	{
		prescriptions.POST("", h.CreatePrescription)
		prescriptions.GET("", h.GetPrescriptions)
		prescriptions.GET("/:id", h.GetPrescriptionByID)
		prescriptions.PUT("/:id", h.UpdatePrescription)
		prescriptions.DELETE("/:id", h.DeletePrescription)
	}
}

// SetupUserRoutes registers user account CRUD routes.
func SetupUserRoutes(rg *gin.RouterGroup, h *handlers.UserHandler) {
	users := rg.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.GetUsers)
		users.GET("/:id", h.GetUserByID)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}

// SetupDashboardRoutes registers the dashboard summary route.
func SetupDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	rg.GET("/dashboard", h.GetSummary)
}
