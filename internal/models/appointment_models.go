package models

// Appointment statuses.
const (
	AppointmentStatusPending   = "pendiente"
	AppointmentStatusConfirmed = "confirmada"
	AppointmentStatusCancelled = "cancelada"
)

// Appointment visit types.
const (
	AppointmentTypeConsultation = "consulta"
	AppointmentTypeDelivery     = "entrega"
	AppointmentTypeCheckup      = "revision"
)

// Appointment represents a scheduled patient visit. PatientID is a weak
// reference: it may point at a deleted patient, PatientName keeps the
// record readable on its own.
type Appointment struct {
	ID          int64   `json:"id" db:"id"`
	PatientID   *int64  `json:"patientId,omitempty" db:"patient_id"`
	PatientName string  `json:"patientName" db:"patient_name"`
	Date        string  `json:"date" db:"date"` // YYYY-MM-DD
	Time        string  `json:"time" db:"time"` // HH:MM
	Type        string  `json:"type" db:"type"`
	DoctorName  string  `json:"doctorName" db:"doctor_name"`
	Status      string  `json:"status" db:"status"`
	Notes       *string `json:"notes,omitempty" db:"notes"`
}
