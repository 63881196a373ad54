package models

// Patient represents a customer of the optical store.
type Patient struct {
	ID      int64   `json:"id" db:"id"`
	Name    string  `json:"name" db:"name"`
	Email   *string `json:"email,omitempty" db:"email"`
	Phone   *string `json:"phone,omitempty" db:"phone"`
	Address *string `json:"address,omitempty" db:"address"`
	Status  string  `json:"status" db:"status"`
	Notes   *string `json:"notes,omitempty" db:"notes"`
}
