package repositories

import (
	"database/sql"

	"optica_backend/internal/models"
)

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id int64) (*models.Product, error)
	GetByCode(code string) (*models.Product, error)
	List() ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id int64) error
}

// PatientRepository defines patient persistence operations.
type PatientRepository interface {
	Create(patient *models.Patient) error
	GetByID(id int64) (*models.Patient, error)
	List() ([]models.Patient, error)
	Update(patient *models.Patient) error
	Delete(id int64) error
}

// AppointmentRepository defines appointment persistence operations.
type AppointmentRepository interface {
	Create(appointment *models.Appointment) error
	GetByID(id int64) (*models.Appointment, error)
	List() ([]models.Appointment, error)
	Update(appointment *models.Appointment) error
	Delete(id int64) error
}

// SalesOrderRepository defines sales order persistence operations.
type SalesOrderRepository interface {
	Create(order *models.SalesOrder) error
	GetByID(id int64) (*models.SalesOrder, error)
	GetByOrderNumber(orderNumber string) (*models.SalesOrder, error)
	List() ([]models.SalesOrder, error)
	Update(order *models.SalesOrder) error
	Delete(id int64) error
}

// SalesOrderItemRepository defines sales order line item operations.
// ListByOrder returns an empty slice, never an error, for an order with no
// items or an unknown order id.
type SalesOrderItemRepository interface {
	Create(item *models.SalesOrderItem) error
	GetByID(id int64) (*models.SalesOrderItem, error)
	ListByOrder(salesOrderID int64) ([]models.SalesOrderItem, error)
	Delete(id int64) error
}

// PurchaseOrderRepository defines purchase order persistence operations.
type PurchaseOrderRepository interface {
	Create(order *models.PurchaseOrder) error
	GetByID(id int64) (*models.PurchaseOrder, error)
	GetByOrderNumber(orderNumber string) (*models.PurchaseOrder, error)
	List() ([]models.PurchaseOrder, error)
	Update(order *models.PurchaseOrder) error
	Delete(id int64) error
}

// PurchaseOrderItemRepository defines purchase order line item operations.
type PurchaseOrderItemRepository interface {
	Create(item *models.PurchaseOrderItem) error
	GetByID(id int64) (*models.PurchaseOrderItem, error)
	ListByOrder(purchaseOrderID int64) ([]models.PurchaseOrderItem, error)
	Delete(id int64) error
}

// ConsignmentRepository defines consignment persistence operations.
type ConsignmentRepository interface {
	Create(consignment *models.Consignment) error
	GetByID(id int64) (*models.Consignment, error)
	List() ([]models.Consignment, error)
	Update(consignment *models.Consignment) error
	Delete(id int64) error
}

// PrescriptionRepository defines prescription persistence operations.
type PrescriptionRepository interface {
	Create(prescription *models.Prescription) error
	GetByID(id int64) (*models.Prescription, error)
	List() ([]models.Prescription, error)
	Update(prescription *models.Prescription) error
	Delete(id int64) error
}

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int64) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	List() ([]models.User, error)
	Update(user *models.User) error
	Delete(id int64) error
}

// DashboardRepository computes the cross-entity dashboard aggregate.
type DashboardRepository interface {
	Summary() (*models.DashboardSummary, error)
}

// Store bundles one repository per entity. The router receives a fully
// built Store so handlers and services never reach for package globals.
type Store struct {
	Products           ProductRepository
	Patients           PatientRepository
	Appointments       AppointmentRepository
	SalesOrders        SalesOrderRepository
	SalesOrderItems    SalesOrderItemRepository
	PurchaseOrders     PurchaseOrderRepository
	PurchaseOrderItems PurchaseOrderItemRepository
	Consignments       ConsignmentRepository
	Prescriptions      PrescriptionRepository
	Users              UserRepository
	Dashboard          DashboardRepository
}

// NewPostgresStore builds a Store backed by PostgreSQL repositories.
func NewPostgresStore(db *sql.DB) *Store {
	return &Store{
		Products:           NewProductRepository(db),
		Patients:           NewPatientRepository(db),
		Appointments:       NewAppointmentRepository(db),
		SalesOrders:        NewSalesOrderRepository(db),
		SalesOrderItems:    NewSalesOrderItemRepository(db),
		PurchaseOrders:     NewPurchaseOrderRepository(db),
		PurchaseOrderItems: NewPurchaseOrderItemRepository(db),
		Consignments:       NewConsignmentRepository(db),
		Prescriptions:      NewPrescriptionRepository(db),
		Users:              NewUserRepository(db),
		Dashboard:          NewDashboardRepository(db),
	}
}
