package router

import (
	"optica_backend/internal/handlers"
	"optica_backend/internal/repositories"
	"optica_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup wires the repository bundle through the services into the HTTP
// routes. Everything is mounted under /api.
func Setup(engine *gin.Engine, store *repositories.Store) {
	productService := services.NewProductService(store.Products)
	patientService := services.NewPatientService(store.Patients)
	appointmentService := services.NewAppointmentService(store.Appointments)
	salesOrderService := services.NewSalesOrderService(store.SalesOrders, store.SalesOrderItems)
	purchaseOrderService := services.NewPurchaseOrderService(store.PurchaseOrders, store.PurchaseOrderItems)
	consignmentService := services.NewConsignmentService(store.Consignments)
	prescriptionService := services.NewPrescriptionService(store.Prescriptions)
	userService := services.NewUserService(store.Users)
	authService := services.NewAuthService(store.Users)

	productHandler := handlers.NewProductHandler(productService)
	patientHandler := handlers.NewPatientHandler(patientService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	salesOrderHandler := handlers.NewSalesOrderHandler(salesOrderService)
	purchaseOrderHandler := handlers.NewPurchaseOrderHandler(purchaseOrderService)
	consignmentHandler := handlers.NewConsignmentHandler(consignmentService)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionService)
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(authService)
	dashboardHandler := handlers.NewDashboardHandler(store.Dashboard)

	api := engine.Group("/api")

	SetupAuthRoutes(api, authHandler)
	SetupProductRoutes(api, productHandler)
	SetupPatientRoutes(api, patientHandler)
	SetupAppointmentRoutes(api, appointmentHandler)
	SetupSalesOrderRoutes(api, salesOrderHandler)
	SetupPurchaseOrderRoutes(api, purchaseOrderHandler)
	SetupConsignmentRoutes(api, consignmentHandler)
	SetupPrescriptionRoutes(api, prescriptionHandler)
	SetupUserRoutes(api, userHandler)
	SetupDashboardRoutes(api, dashboardHandler)
}
