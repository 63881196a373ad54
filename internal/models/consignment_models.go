package models

// Consignment statuses.
const (
	ConsignmentStatusActive   = "activa"
	ConsignmentStatusReturned = "devuelta"
	ConsignmentStatusSold     = "vendida"
)

// Consignment represents stock received from a supplier but not owned
// until sold or returned. There is no link to the products table, the
// product is described inline.
type Consignment struct {
	ID             int64   `json:"id" db:"id"`
	Supplier       string  `json:"supplier" db:"supplier"`
	ProductName    string  `json:"productName" db:"product_name"`
	Category       string  `json:"category" db:"category"`
	Quantity       int     `json:"quantity" db:"quantity"`
	ReceivedDate   string  `json:"receivedDate" db:"received_date"` // YYYY-MM-DD
	ReturnDate     *string `json:"returnDate,omitempty" db:"return_date"`
	ExpirationDate *string `json:"expirationDate,omitempty" db:"expiration_date"`
	Status         string  `json:"status" db:"status"`
	Notes          *string `json:"notes,omitempty" db:"notes"`
}
