package repositories

import (
	"database/sql"
	"fmt"

	"optica_backend/internal/models"
)

type consignmentRepository struct {
	db *sql.DB
}

// NewConsignmentRepository creates a new PostgreSQL-backed ConsignmentRepository.
func NewConsignmentRepository(db *sql.DB) ConsignmentRepository {
	return &consignmentRepository{db: db}
}

const consignmentColumns = `id, supplier, product_name, category, quantity, received_date, return_date, expiration_date, status, notes`

func scanConsignment(row interface{ Scan(dest ...interface{}) error }, cg *models.Consignment) error {
	return row.Scan(
		&cg.ID, &cg.Supplier, &cg.ProductName, &cg.Category, &cg.Quantity,
		&cg.ReceivedDate, &cg.ReturnDate, &cg.ExpirationDate, &cg.Status, &cg.Notes,
	)
}

// Create inserts a new consignment and assigns its id.
func (r *consignmentRepository) Create(consignment *models.Consignment) error {
	query := `INSERT INTO consignments (supplier, product_name, category, quantity, received_date, return_date, expiration_date, status, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING id`

	err := r.db.QueryRow(query,
		consignment.Supplier, consignment.ProductName, consignment.Category, consignment.Quantity,
		consignment.ReceivedDate, consignment.ReturnDate, consignment.ExpirationDate,
		consignment.Status, consignment.Notes,
	).Scan(&consignment.ID)
	if err != nil {
		return wrapWriteError(err, "creating consignment")
	}
	return nil
}

// GetByID retrieves a consignment by its id.
func (r *consignmentRepository) GetByID(id int64) (*models.Consignment, error) {
	consignment := &models.Consignment{}
	query := `SELECT ` + consignmentColumns + ` FROM consignments WHERE id = $1`

	if err := scanConsignment(r.db.QueryRow(query, id), consignment); err != nil {
		return nil, wrapReadError(err, fmt.Sprintf("getting consignment by ID %d", id))
	}
	return consignment, nil
}

// List retrieves all consignments in insertion order.
func (r *consignmentRepository) List() ([]models.Consignment, error) {
	consignments := []models.Consignment{}
	rows, err := r.db.Query(`SELECT ` + consignmentColumns + ` FROM consignments ORDER BY id`)
	if err != nil {
		return nil, wrapReadError(err, "querying consignments")
	}
	defer rows.Close()

	for rows.Next() {
		var consignment models.Consignment
		if err := scanConsignment(rows, &consignment); err != nil {
			return nil, wrapReadError(err, "scanning consignment")
		}
		consignments = append(consignments, consignment)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadError(err, "iterating consignment rows")
	}
	return consignments, nil
}

// Update rewrites an existing consignment.
func (r *consignmentRepository) Update(consignment *models.Consignment) error {
	query := `UPDATE consignments SET
	            supplier = $1, product_name = $2, category = $3, quantity = $4, received_date = $5,
	            return_date = $6, expiration_date = $7, status = $8, notes = $9
	          WHERE id = $10`

	result, err := r.db.Exec(query,
		consignment.Supplier, consignment.ProductName, consignment.Category, consignment.Quantity,
		consignment.ReceivedDate, consignment.ReturnDate, consignment.ExpirationDate,
		consignment.Status, consignment.Notes, consignment.ID,
	)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("updating consignment ID %d", consignment.ID))
	}
	return checkAffected(result, fmt.Sprintf("updating consignment ID %d", consignment.ID))
}

// Delete removes a consignment.
func (r *consignmentRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM consignments WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("deleting consignment ID %d", id))
	}
	return checkAffected(result, fmt.Sprintf("deleting consignment ID %d", id))
}
