package models

// Purchase order statuses.
const (
	PurchaseOrderStatusCreated    = "creada"
	PurchaseOrderStatusSent       = "enviada"
	PurchaseOrderStatusReceived   = "recibida"
	PurchaseOrderStatusPending    = "pendiente"
	PurchaseOrderStatusInProgress = "en_proceso"
	PurchaseOrderStatusCompleted  = "completada"
	PurchaseOrderStatusCancelled  = "cancelada"
)

// PurchaseOrder represents a replenishment order placed with a supplier.
type PurchaseOrder struct {
	ID          int64   `json:"id" db:"id"`
	OrderNumber string  `json:"orderNumber" db:"order_number"`
	Supplier    string  `json:"supplier" db:"supplier"`
	Date        string  `json:"date" db:"date"` // YYYY-MM-DD
	Status      string  `json:"status" db:"status"`
	Total       float64 `json:"total" db:"total"`
	Notes       *string `json:"notes,omitempty" db:"notes"`
}

// PurchaseOrderItem is a line of a purchase order.
type PurchaseOrderItem struct {
	ID              int64   `json:"id" db:"id"`
	PurchaseOrderID int64   `json:"purchaseOrderId" db:"purchase_order_id"`
	ProductID       int64   `json:"productId" db:"product_id"`
	ProductName     string  `json:"productName" db:"product_name"`
	Quantity        int     `json:"quantity" db:"quantity"`
	UnitPrice       float64 `json:"unitPrice" db:"unit_price"`
	TotalPrice      float64 `json:"totalPrice" db:"total_price"`
}
