package models

// User roles.
const (
	RoleAdmin  = "admin"
	RoleSeller = "vendedor"
)

// User represents a system account. PasswordHash holds the bcrypt hash of
// the password and is never serialized in API responses.
type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         string `json:"role" db:"role"`
	Name         string `json:"name" db:"name"`
	Status       string `json:"status" db:"status"`
}
