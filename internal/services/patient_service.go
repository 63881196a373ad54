package services

import (
	"errors"
	"fmt"
	"strings"

	"optica_backend/internal/models"
	"optica_backend/internal/repositories"
	"optica_backend/pkg/utils"
)

// --- Custom Service Errors for Patient ---
var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrPatientValidation = errors.New("patient data validation error")
)

// --- Patient DTOs ---

type CreatePatientRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Status  string  `json:"status"`
	Notes   *string `json:"notes"`
}

// UpdatePatientRequest carries a partial update: only non-nil fields are
// applied to the stored record.
type UpdatePatientRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Status  *string `json:"status"`
	Notes   *string `json:"notes"`
}

// --- PatientService Interface ---
type PatientService interface {
	CreatePatient(req CreatePatientRequest) (*models.Patient, error)
	GetPatientByID(patientID int64) (*models.Patient, error)
	GetPatients() ([]models.Patient, error)
	UpdatePatient(patientID int64, req UpdatePatientRequest) (*models.Patient, error)
	DeletePatient(patientID int64) error
}

type patientService struct {
	patientRepo repositories.PatientRepository
}

// NewPatientService creates a new instance of PatientService.
func NewPatientService(repo repositories.PatientRepository) PatientService {
	return &patientService{patientRepo: repo}
}

func (s *patientService) validatePatient(p *models.Patient) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrPatientValidation)
	}
	if p.Email != nil && *p.Email != "" && !utils.IsValidEmail(*p.Email) {
		return fmt.Errorf("%w: email format is invalid", ErrPatientValidation)
	}
	return nil
}

func (s *patientService) CreatePatient(req CreatePatientRequest) (*models.Patient, error) {
	patient := &models.Patient{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Status:  req.Status,
		Notes:   req.Notes,
	}
	if patient.Status == "" {
		patient.Status = "activo"
	}

	if err := s.validatePatient(patient); err != nil {
		return nil, err
	}

	if err := s.patientRepo.Create(patient); err != nil {
		return nil, fmt.Errorf("failed to create patient in repository: %w", err)
	}
	return patient, nil
}

func (s *patientService) GetPatientByID(patientID int64) (*models.Patient, error) {
	patient, err := s.patientRepo.GetByID(patientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient by ID: %w", err)
	}
	return patient, nil
}

func (s *patientService) GetPatients() ([]models.Patient, error) {
	patients, err := s.patientRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to get patients: %w", err)
	}
	return patients, nil
}

func (s *patientService) UpdatePatient(patientID int64, req UpdatePatientRequest) (*models.Patient, error) {
	patient, err := s.patientRepo.GetByID(patientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to find patient for update: %w", err)
	}

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Email != nil {
		patient.Email = req.Email
	}
	if req.Phone != nil {
		patient.Phone = req.Phone
	}
	if req.Address != nil {
		patient.Address = req.Address
	}
	if req.Status != nil {
		patient.Status = *req.Status
	}
	if req.Notes != nil {
		patient.Notes = req.Notes
	}

	if err := s.validatePatient(patient); err != nil {
		return nil, err
	}

	if err := s.patientRepo.Update(patient); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to update patient in repository: %w", err)
	}
	return patient, nil
}

// DeletePatient removes a patient. Records referencing the patient keep
// their weak reference; nothing cascades.
func (s *patientService) DeletePatient(patientID int64) error {
	err := s.patientRepo.Delete(patientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPatientNotFound
		}
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}
