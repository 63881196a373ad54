package models

// Sales order statuses.
const (
	SalesOrderStatusNew        = "nuevo"
	SalesOrderStatusInProgress = "en_proceso"
	SalesOrderStatusDelivered  = "entregado"
	SalesOrderStatusCancelled  = "cancelado"
)

// SalesOrder represents a customer sale. Total is persisted as supplied,
// it is not recomputed from the order items.
type SalesOrder struct {
	ID           int64   `json:"id" db:"id"`
	OrderNumber  string  `json:"orderNumber" db:"order_number"`
	PatientID    *int64  `json:"patientId,omitempty" db:"patient_id"`
	CustomerName string  `json:"customerName" db:"customer_name"`
	Date         string  `json:"date" db:"date"` // YYYY-MM-DD
	Status       string  `json:"status" db:"status"`
	Total        float64 `json:"total" db:"total"`
	Notes        *string `json:"notes,omitempty" db:"notes"`
}

// SalesOrderItem is a line of a sales order. TotalPrice is persisted as
// supplied and not forced to equal Quantity*UnitPrice.
type SalesOrderItem struct {
	ID           int64   `json:"id" db:"id"`
	SalesOrderID int64   `json:"salesOrderId" db:"sales_order_id"`
	ProductID    int64   `json:"productId" db:"product_id"`
	ProductName  string  `json:"productName" db:"product_name"`
	Quantity     int     `json:"quantity" db:"quantity"`
	UnitPrice    float64 `json:"unitPrice" db:"unit_price"`
	TotalPrice   float64 `json:"totalPrice" db:"total_price"`
}
