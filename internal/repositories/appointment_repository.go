package repositories

import (
	"database/sql"
	"fmt"

	"optica_backend/internal/models"
)

type appointmentRepository struct {
	db *sql.DB
}

// NewAppointmentRepository creates a new PostgreSQL-backed AppointmentRepository.
func NewAppointmentRepository(db *sql.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

const appointmentColumns = `id, patient_id, patient_name, date, time, type, doctor_name, status, notes`

func scanAppointment(row interface{ Scan(dest ...interface{}) error }, a *models.Appointment) error {
	return row.Scan(
		&a.ID, &a.PatientID, &a.PatientName, &a.Date, &a.Time,
		&a.Type, &a.DoctorName, &a.Status, &a.Notes,
	)
}

// Create inserts a new appointment and assigns its id. PatientID is not
// checked for existence, it is a weak reference.
func (r *appointmentRepository) Create(appointment *models.Appointment) error {
	query := `INSERT INTO appointments (patient_id, patient_name, date, time, type, doctor_name, status, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id`

	err := r.db.QueryRow(query,
		appointment.PatientID, appointment.PatientName, appointment.Date, appointment.Time,
		appointment.Type, appointment.DoctorName, appointment.Status, appointment.Notes,
	).Scan(&appointment.ID)
	if err != nil {
		return wrapWriteError(err, "creating appointment")
	}
	return nil
}

// GetByID retrieves an appointment by its id.
func (r *appointmentRepository) GetByID(id int64) (*models.Appointment, error) {
	appointment := &models.Appointment{}
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	if err := scanAppointment(r.db.QueryRow(query, id), appointment); err != nil {
		return nil, wrapReadError(err, fmt.Sprintf("getting appointment by ID %d", id))
	}
	return appointment, nil
}

// List retrieves all appointments in insertion order.
func (r *appointmentRepository) List() ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	rows, err := r.db.Query(`SELECT ` + appointmentColumns + ` FROM appointments ORDER BY id`)
	if err != nil {
		return nil, wrapReadError(err, "querying appointments")
	}
	defer rows.Close()

	for rows.Next() {
		var appointment models.Appointment
		if err := scanAppointment(rows, &appointment); err != nil {
			return nil, wrapReadError(err, "scanning appointment")
		}
		appointments = append(appointments, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadError(err, "iterating appointment rows")
	}
	return appointments, nil
}

// Update rewrites an existing appointment.
func (r *appointmentRepository) Update(appointment *models.Appointment) error {
	query := `UPDATE appointments SET
	            patient_id = $1, patient_name = $2, date = $3, time = $4,
	            type = $5, doctor_name = $6, status = $7, notes = $8
	          WHERE id = $9`

	result, err := r.db.Exec(query,
		appointment.PatientID, appointment.PatientName, appointment.Date, appointment.Time,
		appointment.Type, appointment.DoctorName, appointment.Status, appointment.Notes, appointment.ID,
	)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("updating appointment ID %d", appointment.ID))
	}
	return checkAffected(result, fmt.Sprintf("updating appointment ID %d", appointment.ID))
}

// Delete removes an appointment.
func (r *appointmentRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("deleting appointment ID %d", id))
	}
	return checkAffected(result, fmt.Sprintf("deleting appointment ID %d", id))
}
