package models

// Product stock status values. StockStatus is stored as sent by the client,
// it is never derived from the stock count.
const (
	StockStatusNormal   = "normal"
	StockStatusLow      = "bajo"
	StockStatusCritical = "critico"
)

// Product ownership types.
const (
	ProductTypeOwned       = "propio"
	ProductTypeConsignment = "consignacion"
)

// Product lifecycle statuses.
const (
	ProductStatusActive   = "activo"
	ProductStatusInactive = "inactivo"
)

// Product represents an inventory item of the optical store: frames,
// lenses, contact lenses, cleaning liquids.
type Product struct {
	ID          int64   `json:"id" db:"id"`
	Code        string  `json:"code" db:"code"`
	Name        string  `json:"name" db:"name"`
	Category    string  `json:"category" db:"category"`
	Supplier    *string `json:"supplier,omitempty" db:"supplier"`
	Stock       int     `json:"stock" db:"stock"`
	Price       float64 `json:"price" db:"price"`
	StockStatus string  `json:"stockStatus" db:"stock_status"`
	Type        string  `json:"type" db:"type"`
	Status      string  `json:"status" db:"status"`
}
