package models

// DashboardSummary holds the four derived metrics shown on the dashboard,
// computed fresh on each request.
type DashboardSummary struct {
	TotalSales         float64 `json:"totalSales"`         // sum of total over all sales orders
	PendingOrders      int     `json:"pendingOrders"`      // sales orders in nuevo or en_proceso
	ActiveConsignments int     `json:"activeConsignments"` // consignments in activa
	TodayAppointments  int     `json:"todayAppointments"`  // today's non-cancelled appointments
}
