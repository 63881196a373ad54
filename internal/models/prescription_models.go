package models

// EyeMeasurement holds the refraction values of one eye as written on the
// prescription. Values are kept as strings (e.g. "-1.25", "+0.50", "180").
type EyeMeasurement struct {
	Sphere   string `json:"sphere" db:"sphere"`
	Cylinder string `json:"cylinder" db:"cylinder"`
	Axis     string `json:"axis" db:"axis"`
}

// Prescription represents an optical prescription issued to a patient.
type Prescription struct {
	ID                  int64          `json:"id" db:"id"`
	PatientID           *int64         `json:"patientId,omitempty" db:"patient_id"`
	PatientName         string         `json:"patientName" db:"patient_name"`
	Date                string         `json:"date" db:"date"` // YYYY-MM-DD
	Professional        string         `json:"professional" db:"professional"`
	RightEye            EyeMeasurement `json:"rightEye"`
	LeftEye             EyeMeasurement `json:"leftEye"`
	Observations        *string        `json:"observations,omitempty" db:"observations"`
	RecommendedProducts *string        `json:"recommendedProducts,omitempty" db:"recommended_products"`
}
