package repositories

import (
	"database/sql"
	"fmt"

	"optica_backend/internal/models"
)

type prescriptionRepository struct {
	db *sql.DB
}

// NewPrescriptionRepository creates a new PostgreSQL-backed PrescriptionRepository.
func NewPrescriptionRepository(db *sql.DB) PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

// Eye measurements are flattened into per-eye columns.
const prescriptionColumns = `id, patient_id, patient_name, date, professional,
	right_sphere, right_cylinder, right_axis, left_sphere, left_cylinder, left_axis,
	observations, recommended_products`

func scanPrescription(row interface{ Scan(dest ...interface{}) error }, p *models.Prescription) error {
	return row.Scan(
		&p.ID, &p.PatientID, &p.PatientName, &p.Date, &p.Professional,
		&p.RightEye.Sphere, &p.RightEye.Cylinder, &p.RightEye.Axis,
		&p.LeftEye.Sphere, &p.LeftEye.Cylinder, &p.LeftEye.Axis,
		&p.Observations, &p.RecommendedProducts,
	)
}

// Create inserts a new prescription and assigns its id.
func (r *prescriptionRepository) Create(prescription *models.Prescription) error {
	query := `INSERT INTO prescriptions (patient_id, patient_name, date, professional,
	            right_sphere, right_cylinder, right_axis, left_sphere, left_cylinder, left_axis,
	            observations, recommended_products)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	          RETURNING id`

	err := r.db.QueryRow(query,
		prescription.PatientID, prescription.PatientName, prescription.Date, prescription.Professional,
		prescription.RightEye.Sphere, prescription.RightEye.Cylinder, prescription.RightEye.Axis,
		prescription.LeftEye.Sphere, prescription.LeftEye.Cylinder, prescription.LeftEye.Axis,
		prescription.Observations, prescription.RecommendedProducts,
	).Scan(&prescription.ID)
	if err != nil {
		return wrapWriteError(err, "creating prescription")
	}
	return nil
}

// GetByID retrieves a prescription by its id.
func (r *prescriptionRepository) GetByID(id int64) (*models.Prescription, error) {
	prescription := &models.Prescription{}
	query := `SELECT ` + prescriptionColumns + ` FROM prescriptions WHERE id = $1`

	if err := scanPrescription(r.db.QueryRow(query, id), prescription); err != nil {
		return nil, wrapReadError(err, fmt.Sprintf("getting prescription by ID %d", id))
	}
	return prescription, nil
}

// List retrieves all prescriptions in insertion order.
func (r *prescriptionRepository) List() ([]models.Prescription, error) {
	prescriptions := []models.Prescription{}
	rows, err := r.db.Query(`SELECT ` + prescriptionColumns + ` FROM prescriptions ORDER BY id`)
	if err != nil {
		return nil, wrapReadError(err, "querying prescriptions")
	}
	defer rows.Close()

	for rows.Next() {
		var prescription models.Prescription
		if err := scanPrescription(rows, &prescription); err != nil {
			return nil, wrapReadError(err, "scanning prescription")
		}
		prescriptions = append(prescriptions, prescription)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadError(err, "iterating prescription rows")
	}
	return prescriptions, nil
}

// Update rewrites an existing prescription.
func (r *prescriptionRepository) Update(prescription *models.Prescription) error {
	query := `UPDATE prescriptions SET
	            patient_id = $1, patient_name = $2, date = $3, professional = $4,
	            right_sphere = $5, right_cylinder = $6, right_axis = $7,
	            left_sphere = $8, left_cylinder = $9, left_axis = $10,
	            observations = $11, recommended_products = $12
	          WHERE id = $13`

	result, err := r.db.Exec(query,
		prescription.PatientID, prescription.PatientName, prescription.Date, prescription.Professional,
		prescription.RightEye.Sphere, prescription.RightEye.Cylinder, prescription.RightEye.Axis,
		prescription.LeftEye.Sphere, prescription.LeftEye.Cylinder, prescription.LeftEye.Axis,
		prescription.Observations, prescription.RecommendedProducts, prescription.ID,
	)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("updating prescription ID %d", prescription.ID))
	}
	return checkAffected(result, fmt.Sprintf("updating prescription ID %d", prescription.ID))
}

// Delete removes a prescription.
func (r *prescriptionRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM prescriptions WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("deleting prescription ID %d", id))
	}
	return checkAffected(result, fmt.Sprintf("deleting prescription ID %d", id))
}
