package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"optica_backend/internal/models"
)

func TestMemoryStoreSeedsAdminUser(t *testing.T) {
	store := NewMemoryStore()

	admin, err := store.Users.GetByUsername("admin")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, admin.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))
}

func TestMemoryStoreProductCRUD(t *testing.T) {
	store := NewMemoryStore()

	product := &models.Product{
		Code:        "LEN-001",
		Name:        "Lente monofocal",
		Category:    "lentes",
		Stock:       10,
		Price:       120.50,
		StockStatus: models.StockStatusNormal,
		Type:        models.ProductTypeOwned,
		Status:      models.ProductStatusActive,
	}
	require.NoError(t, store.Products.Create(product))
	require.NotZero(t, product.ID)

	got, err := store.Products.GetByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, "LEN-001", got.Code)

	got.Stock = 7
	require.NoError(t, store.Products.Update(got))

	updated, err := store.Products.GetByID(product.ID)
	require.NoError(t, err)
	require.Equal(t, 7, updated.Stock)

	byCode, err := store.Products.GetByCode("LEN-001")
	require.NoError(t, err)
	require.Equal(t, product.ID, byCode.ID)

	require.NoError(t, store.Products.Delete(product.ID))
	require.ErrorIs(t, store.Products.Delete(product.ID), ErrNotFound)

	_, err = store.Products.GetByID(product.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()

	patient := &models.Patient{Name: "Ana", Status: "activo"}
	require.NoError(t, store.Patients.Create(patient))

	got, err := store.Patients.GetByID(patient.ID)
	require.NoError(t, err)
	got.Name = "Mutated"

	again, err := store.Patients.GetByID(patient.ID)
	require.NoError(t, err)
	require.Equal(t, "Ana", again.Name)
}

func TestMemoryStoreSharedIDCounter(t *testing.T) {
	store := NewMemoryStore()

	product := &models.Product{Code: "P1", Name: "p", StockStatus: "normal", Type: "propio", Status: "activo"}
	patient := &models.Patient{Name: "Luis", Status: "activo"}
	require.NoError(t, store.Products.Create(product))
	require.NoError(t, store.Patients.Create(patient))

	// The seeded admin takes the first id; product and patient follow in
	// one shared sequence.
	require.Equal(t, product.ID+1, patient.ID)
}

func TestMemoryStoreListInsertionOrder(t *testing.T) {
	store := NewMemoryStore()

	for _, name := range []string{"uno", "dos", "tres"} {
		require.NoError(t, store.Patients.Create(&models.Patient{Name: name, Status: "activo"}))
	}

	patients, err := store.Patients.List()
	require.NoError(t, err)
	require.Len(t, patients, 3)
	require.Equal(t, "uno", patients[0].Name)
	require.Equal(t, "dos", patients[1].Name)
	require.Equal(t, "tres", patients[2].Name)
}

func TestMemoryStoreSalesOrderItemsListByOrder(t *testing.T) {
	store := NewMemoryStore()

	orderA := &models.SalesOrder{OrderNumber: "SO-1", CustomerName: "c", Date: "2026-01-10", Status: "nuevo"}
	orderB := &models.SalesOrder{OrderNumber: "SO-2", CustomerName: "c", Date: "2026-01-11", Status: "nuevo"}
	require.NoError(t, store.SalesOrders.Create(orderA))
	require.NoError(t, store.SalesOrders.Create(orderB))

	require.NoError(t, store.SalesOrderItems.Create(&models.SalesOrderItem{SalesOrderID: orderA.ID, ProductID: 1, ProductName: "x", Quantity: 1}))
	require.NoError(t, store.SalesOrderItems.Create(&models.SalesOrderItem{SalesOrderID: orderB.ID, ProductID: 1, ProductName: "y", Quantity: 2}))
	require.NoError(t, store.SalesOrderItems.Create(&models.SalesOrderItem{SalesOrderID: orderA.ID, ProductID: 2, ProductName: "z", Quantity: 3}))

	items, err := store.SalesOrderItems.ListByOrder(orderA.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "x", items[0].ProductName)
	require.Equal(t, "z", items[1].ProductName)

	// Unknown parent yields an empty list, not an error.
	empty, err := store.SalesOrderItems.ListByOrder(99999)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestMemoryDashboardSummary(t *testing.T) {
	store := NewMemoryStore()

	orders := []models.SalesOrder{
		{OrderNumber: "SO-1", CustomerName: "a", Date: "2026-01-01", Status: models.SalesOrderStatusNew, Total: 100},
		{OrderNumber: "SO-2", CustomerName: "b", Date: "2026-01-02", Status: models.SalesOrderStatusDelivered, Total: 250.50},
		{OrderNumber: "SO-3", CustomerName: "c", Date: "2026-01-03", Status: models.SalesOrderStatusInProgress, Total: 0},
	}
	for i := range orders {
		require.NoError(t, store.SalesOrders.Create(&orders[i]))
	}

	require.NoError(t, store.Consignments.Create(&models.Consignment{
		Supplier: "s", ProductName: "armazon", Quantity: 5, ReceivedDate: "2026-01-01",
		Status: models.ConsignmentStatusActive,
	}))
	require.NoError(t, store.Consignments.Create(&models.Consignment{
		Supplier: "s", ProductName: "armazon", Quantity: 2, ReceivedDate: "2026-01-01",
		Status: models.ConsignmentStatusReturned,
	}))

	today := time.Now().Format("2006-01-02")
	require.NoError(t, store.Appointments.Create(&models.Appointment{
		PatientName: "Ana", Date: today, Time: "10:00", Type: "consulta",
		DoctorName: "Dr. Soto", Status: models.AppointmentStatusConfirmed,
	}))
	require.NoError(t, store.Appointments.Create(&models.Appointment{
		PatientName: "Luis", Date: today, Time: "11:00", Type: "consulta",
		DoctorName: "Dr. Soto", Status: models.AppointmentStatusCancelled,
	}))
	require.NoError(t, store.Appointments.Create(&models.Appointment{
		PatientName: "Mia", Date: "2000-01-01", Time: "12:00", Type: "consulta",
		DoctorName: "Dr. Soto", Status: models.AppointmentStatusPending,
	}))

	summary, err := store.Dashboard.Summary()
	require.NoError(t, err)
	require.InDelta(t, 350.50, summary.TotalSales, 0.0001)
	require.Equal(t, 2, summary.PendingOrders)
	require.Equal(t, 1, summary.ActiveConsignments)
	require.Equal(t, 1, summary.TodayAppointments)
}
