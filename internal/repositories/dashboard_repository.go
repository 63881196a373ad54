package repositories

import (
	"database/sql"
	"time"

	"optica_backend/internal/models"
)

type dashboardRepository struct {
	db *sql.DB
}

// NewDashboardRepository creates a new PostgreSQL-backed DashboardRepository.
func NewDashboardRepository(db *sql.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// Summary computes the dashboard metrics with one aggregate query per
// figure. totalSales sums the total of every sales order regardless of
// status; pendingOrders counts nuevo and en_proceso; todayAppointments
// counts today's non-cancelled appointments by the process-local date.
func (r *dashboardRepository) Summary() (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{}

	err := r.db.QueryRow(`SELECT COALESCE(SUM(total), 0) FROM sales_orders`).Scan(&summary.TotalSales)
	if err != nil {
		return nil, wrapReadError(err, "summing sales order totals")
	}

	err = r.db.QueryRow(`SELECT COUNT(*) FROM sales_orders WHERE status IN ($1, $2)`,
		models.SalesOrderStatusNew, models.SalesOrderStatusInProgress).Scan(&summary.PendingOrders)
	if err != nil {
		return nil, wrapReadError(err, "counting pending sales orders")
	}

	err = r.db.QueryRow(`SELECT COUNT(*) FROM consignments WHERE status = $1`,
		models.ConsignmentStatusActive).Scan(&summary.ActiveConsignments)
	if err != nil {
		return nil, wrapReadError(err, "counting active consignments")
	}

	today := time.Now().Format("2006-01-02")
	err = r.db.QueryRow(`SELECT COUNT(*) FROM appointments WHERE date = $1 AND status <> $2`,
		today, models.AppointmentStatusCancelled).Scan(&summary.TodayAppointments)
	if err != nil {
		return nil, wrapReadError(err, "counting today's appointments")
	}

	return summary, nil
}
