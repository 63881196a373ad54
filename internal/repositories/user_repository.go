package repositories

import (
	"database/sql"
	"fmt"

	"optica_backend/internal/models"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL-backed UserRepository.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, password_hash, role, name, status`

func scanUser(row interface{ Scan(dest ...interface{}) error }, u *models.User) error {
	return row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Name, &u.Status)
}

// Create inserts a new user and assigns its id.
func (r *userRepository) Create(user *models.User) error {
	query := `INSERT INTO users (username, password_hash, role, name, status)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	err := r.db.QueryRow(query,
		user.Username, user.PasswordHash, user.Role, user.Name, user.Status,
	).Scan(&user.ID)
	if err != nil {
		return wrapWriteError(err, "creating user")
	}
	return nil
}

// GetByID retrieves a user by their id.
func (r *userRepository) GetByID(id int64) (*models.User, error) {
	user := &models.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	if err := scanUser(r.db.QueryRow(query, id), user); err != nil {
		return nil, wrapReadError(err, fmt.Sprintf("getting user by ID %d", id))
	}
	return user, nil
}

// GetByUsername retrieves a user by their unique username.
func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	if err := scanUser(r.db.QueryRow(query, username), user); err != nil {
		return nil, wrapReadError(err, "getting user by username "+username)
	}
	return user, nil
}

// List retrieves all users in insertion order.
func (r *userRepository) List() ([]models.User, error) {
	users := []models.User{}
	rows, err := r.db.Query(`SELECT ` + userColumns + ` FROM users ORDER BY id`)
	if err != nil {
		return nil, wrapReadError(err, "querying users")
	}
	defer rows.Close()

	for rows.Next() {
		var user models.User
		if err := scanUser(rows, &user); err != nil {
			return nil, wrapReadError(err, "scanning user")
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadError(err, "iterating user rows")
	}
	return users, nil
}

// Update rewrites an existing user.
func (r *userRepository) Update(user *models.User) error {
	query := `UPDATE users SET
	            username = $1, password_hash = $2, role = $3, name = $4, status = $5
	          WHERE id = $6`

	result, err := r.db.Exec(query,
		user.Username, user.PasswordHash, user.Role, user.Name, user.Status, user.ID,
	)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("updating user ID %d", user.ID))
	}
	return checkAffected(result, fmt.Sprintf("updating user ID %d", user.ID))
}

// Delete removes a user.
func (r *userRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("deleting user ID %d", id))
	}
	return checkAffected(result, fmt.Sprintf("deleting user ID %d", id))
}
