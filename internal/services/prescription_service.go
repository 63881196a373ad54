package services

import (
	"errors"
	"fmt"
	"strings"

	"optica_backend/internal/models"
	"optica_backend/internal/repositories"
)

// --- Custom Service Errors for Prescription ---
var (
	ErrPrescriptionNotFound   = errors.New("prescription not found")
	ErrPrescriptionValidation = errors.New("prescription data validation error")
)

// --- Prescription DTOs ---

// EyeMeasurementRequest mirrors models.EyeMeasurement on the wire. Values
// arrive as strings exactly as written on the prescription slip.
type EyeMeasurementRequest struct {
	Sphere   string `json:"sphere"`
	Cylinder string `json:"cylinder"`
	Axis     string `json:"axis"`
}

type CreatePrescriptionRequest struct {
	PatientID           *int64                `json:"patientId"`
	PatientName         string                `json:"patientName" binding:"required"`
	Date                string                `json:"date" binding:"required"`
	Professional        string                `json:"professional" binding:"required"`
	RightEye            EyeMeasurementRequest `json:"rightEye"`
	LeftEye             EyeMeasurementRequest `json:"leftEye"`
	Observations        *string               `json:"observations"`
	RecommendedProducts *string               `json:"recommendedProducts"`
}

// UpdatePrescriptionRequest carries a partial update: only non-nil fields
// are applied. An eye measurement is replaced whole when present.
type UpdatePrescriptionRequest struct {
	PatientID           *int64                 `json:"patientId"`
	PatientName         *string                `json:"patientName"`
	Date                *string                `json:"date"`
	Professional        *string                `json:"professional"`
	RightEye            *EyeMeasurementRequest `json:"rightEye"`
	LeftEye             *EyeMeasurementRequest `json:"leftEye"`
	Observations        *string                `json:"observations"`
	RecommendedProducts *string                `json:"recommendedProducts"`
}

// --- PrescriptionService Interface ---
type PrescriptionService interface {
	CreatePrescription(req CreatePrescriptionRequest) (*models.Prescription, error)
	GetPrescriptionByID(prescriptionID int64) (*models.Prescription, error)
	GetPrescriptions() ([]models.Prescription, error)
	UpdatePrescription(prescriptionID int64, req UpdatePrescriptionRequest) (*models.Prescription, error)
	DeletePrescription(prescriptionID int64) error
}

type prescriptionService struct {
	prescriptionRepo repositories.PrescriptionRepository
}

// NewPrescriptionService creates a new instance of PrescriptionService.
func NewPrescriptionService(repo repositories.PrescriptionRepository) PrescriptionService {
	return &prescriptionService{prescriptionRepo: repo}
}

func (s *prescriptionService) validatePrescription(p *models.Prescription) error {
	if strings.TrimSpace(p.PatientName) == "" {
		return fmt.Errorf("%w: patient name cannot be empty", ErrPrescriptionValidation)
	}
	if !validDate(p.Date) {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrPrescriptionValidation)
	}
	if strings.TrimSpace(p.Professional) == "" {
		return fmt.Errorf("%w: professional cannot be empty", ErrPrescriptionValidation)
	}
	return nil
}

func toEyeMeasurement(req EyeMeasurementRequest) models.EyeMeasurement {
	return models.EyeMeasurement{
		Sphere:   req.Sphere,
		Cylinder: req.Cylinder,
		Axis:     req.Axis,
	}
}

func (s *prescriptionService) CreatePrescription(req CreatePrescriptionRequest) (*models.Prescription, error) {
	prescription := &models.Prescription{
		PatientID:           req.PatientID,
		PatientName:         req.PatientName,
		Date:                req.Date,
		Professional:        req.Professional,
		RightEye:            toEyeMeasurement(req.RightEye),
		LeftEye:             toEyeMeasurement(req.LeftEye),
		Observations:        req.Observations,
		RecommendedProducts: req.RecommendedProducts,
	}

	if err := s.validatePrescription(prescription); err != nil {
		return nil, err
	}

	if err := s.prescriptionRepo.Create(prescription); err != nil {
		return nil, fmt.Errorf("failed to create prescription in repository: %w", err)
	}
	return prescription, nil
}

func (s *prescriptionService) GetPrescriptionByID(prescriptionID int64) (*models.Prescription, error) {
	prescription, err := s.prescriptionRepo.GetByID(prescriptionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPrescriptionNotFound
		}
		return nil, fmt.Errorf("failed to get prescription by ID: %w", err)
	}
	return prescription, nil
}

func (s *prescriptionService) GetPrescriptions() ([]models.Prescription, error) {
	prescriptions, err := s.prescriptionRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to get prescriptions: %w", err)
	}
	return prescriptions, nil
}

func (s *prescriptionService) UpdatePrescription(prescriptionID int64, req UpdatePrescriptionRequest) (*models.Prescription, error) {
	prescription, err := s.prescriptionRepo.GetByID(prescriptionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPrescriptionNotFound
		}
		return nil, fmt.Errorf("failed to find prescription for update: %w", err)
	}

	if req.PatientID != nil {
		prescription.PatientID = req.PatientID
	}
	if req.PatientName != nil {
		prescription.PatientName = *req.PatientName
	}
	if req.Date != nil {
		prescription.Date = *req.Date
	}
	if req.Professional != nil {
		prescription.Professional = *req.Professional
	}
	if req.RightEye != nil {
		prescription.RightEye = toEyeMeasurement(*req.RightEye)
	}
	if req.LeftEye != nil {
		prescription.LeftEye = toEyeMeasurement(*req.LeftEye)
	}
	if req.Observations != nil {
		prescription.Observations = req.Observations
	}
	if req.RecommendedProducts != nil {
		prescription.RecommendedProducts = req.RecommendedProducts
	}

	if err := s.validatePrescription(prescription); err != nil {
		return nil, err
	}

	if err := s.prescriptionRepo.Update(prescription); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPrescriptionNotFound
		}
		return nil, fmt.Errorf("failed to update prescription in repository: %w", err)
	}
	return prescription, nil
}

func (s *prescriptionService) DeletePrescription(prescriptionID int64) error {
	err := s.prescriptionRepo.Delete(prescriptionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPrescriptionNotFound
		}
		return fmt.Errorf("failed to delete prescription: %w", err)
	}
	return nil
}
