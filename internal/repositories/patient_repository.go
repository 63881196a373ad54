package repositories

import (
	"database/sql"
	"fmt"

	"optica_backend/internal/models"
)

type patientRepository struct {
	db *sql.DB
}

// NewPatientRepository creates a new PostgreSQL-backed PatientRepository.
func NewPatientRepository(db *sql.DB) PatientRepository {
	return &patientRepository{db: db}
}

const patientColumns = `id, name, email, phone, address, status, notes`

func scanPatient(row interface{ Scan(dest ...interface{}) error }, p *models.Patient) error {
	return row.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Address, &p.Status, &p.Notes)
}

// Create inserts a new patient and assigns its id.
func (r *patientRepository) Create(patient *models.Patient) error {
	query := `INSERT INTO patients (name, email, phone, address, status, notes)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	err := r.db.QueryRow(query,
		patient.Name, patient.Email, patient.Phone, patient.Address, patient.Status, patient.Notes,
	).Scan(&patient.ID)
	if err != nil {
		return wrapWriteError(err, "creating patient")
	}
	return nil
}

// GetByID retrieves a patient by their id.
func (r *patientRepository) GetByID(id int64) (*models.Patient, error) {
	patient := &models.Patient{}
	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = $1`

	if err := scanPatient(r.db.QueryRow(query, id), patient); err != nil {
		return nil, wrapReadError(err, fmt.Sprintf("getting patient by ID %d", id))
	}
	return patient, nil
}

// List retrieves all patients in insertion order.
func (r *patientRepository) List() ([]models.Patient, error) {
	patients := []models.Patient{}
	rows, err := r.db.Query(`SELECT ` + patientColumns + ` FROM patients ORDER BY id`)
	if err != nil {
		return nil, wrapReadError(err, "querying patients")
	}
	defer rows.Close()

	for rows.Next() {
		var patient models.Patient
		if err := scanPatient(rows, &patient); err != nil {
			return nil, wrapReadError(err, "scanning patient")
		}
		patients = append(patients, patient)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadError(err, "iterating patient rows")
	}
	return patients, nil
}

// Update rewrites an existing patient.
func (r *patientRepository) Update(patient *models.Patient) error {
	query := `UPDATE patients SET
	            name = $1, email = $2, phone = $3, address = $4, status = $5, notes = $6
	          WHERE id = $7`

	result, err := r.db.Exec(query,
		patient.Name, patient.Email, patient.Phone, patient.Address, patient.Status, patient.Notes, patient.ID,
	)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("updating patient ID %d", patient.ID))
	}
	return checkAffected(result, fmt.Sprintf("updating patient ID %d", patient.ID))
}

// Delete removes a patient. Dependent appointments, orders and
// prescriptions keep their weak reference to the deleted id.
func (r *patientRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("deleting patient ID %d", id))
	}
	return checkAffected(result, fmt.Sprintf("deleting patient ID %d", id))
}
