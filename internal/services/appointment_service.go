package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"optica_backend/internal/models"
	"optica_backend/internal/repositories"
)

// --- Custom Service Errors for Appointment ---
var (
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrAppointmentValidation = errors.New("appointment data validation error")
)

// --- Appointment DTOs ---

type CreateAppointmentRequest struct {
	PatientID   *int64  `json:"patientId"`
	PatientName string  `json:"patientName" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Time        string  `json:"time" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	DoctorName  string  `json:"doctorName" binding:"required"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes"`
}

// UpdateAppointmentRequest carries a partial update: only non-nil fields
// are applied to the stored record.
type UpdateAppointmentRequest struct {
	PatientID   *int64  `json:"patientId"`
	PatientName *string `json:"patientName"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Type        *string `json:"type"`
	DoctorName  *string `json:"doctorName"`
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
}

// --- AppointmentService Interface ---
type AppointmentService interface {
	CreateAppointment(req CreateAppointmentRequest) (*models.Appointment, error)
	GetAppointmentByID(appointmentID int64) (*models.Appointment, error)
	GetAppointments() ([]models.Appointment, error)
	UpdateAppointment(appointmentID int64, req UpdateAppointmentRequest) (*models.Appointment, error)
	DeleteAppointment(appointmentID int64) error
}

type appointmentService struct {
	appointmentRepo repositories.AppointmentRepository
}

// NewAppointmentService creates a new instance of AppointmentService.
func NewAppointmentService(repo repositories.AppointmentRepository) AppointmentService {
	return &appointmentService{appointmentRepo: repo}
}

// validDate reports whether value is a calendar date in YYYY-MM-DD form.
func validDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// validClockTime reports whether value is a wall-clock time in HH:MM form.
func validClockTime(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}

func (s *appointmentService) validateAppointment(a *models.Appointment) error {
	if strings.TrimSpace(a.PatientName) == "" {
		return fmt.Errorf("%w: patient name cannot be empty", ErrAppointmentValidation)
	}
	if !validDate(a.Date) {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrAppointmentValidation)
	}
	if !validClockTime(a.Time) {
		return fmt.Errorf("%w: time must be HH:MM", ErrAppointmentValidation)
	}
	if !oneOf(a.Type, models.AppointmentTypeConsultation, models.AppointmentTypeDelivery, models.AppointmentTypeCheckup) {
		return fmt.Errorf("%w: invalid appointment type %q", ErrAppointmentValidation, a.Type)
	}
	if strings.TrimSpace(a.DoctorName) == "" {
		return fmt.Errorf("%w: doctor name cannot be empty", ErrAppointmentValidation)
	}
	if !oneOf(a.Status, models.AppointmentStatusPending, models.AppointmentStatusConfirmed, models.AppointmentStatusCancelled) {
		return fmt.Errorf("%w: invalid appointment status %q", ErrAppointmentValidation, a.Status)
	}
	return nil
}

func (s *appointmentService) CreateAppointment(req CreateAppointmentRequest) (*models.Appointment, error) {
	appointment := &models.Appointment{
		PatientID:   req.PatientID,
		PatientName: req.PatientName,
		Date:        req.Date,
		Time:        req.Time,
		Type:        req.Type,
		DoctorName:  req.DoctorName,
		Status:      req.Status,
		Notes:       req.Notes,
	}
	if appointment.Status == "" {
		appointment.Status = models.AppointmentStatusPending
	}

	if err := s.validateAppointment(appointment); err != nil {
		return nil, err
	}

	if err := s.appointmentRepo.Create(appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment in repository: %w", err)
	}
	return appointment, nil
}

func (s *appointmentService) GetAppointmentByID(appointmentID int64) (*models.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(appointmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to get appointment by ID: %w", err)
	}
	return appointment, nil
}

func (s *appointmentService) GetAppointments() ([]models.Appointment, error) {
	appointments, err := s.appointmentRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to get appointments: %w", err)
	}
	return appointments, nil
}

func (s *appointmentService) UpdateAppointment(appointmentID int64, req UpdateAppointmentRequest) (*models.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(appointmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to find appointment for update: %w", err)
	}

	if req.PatientID != nil {
		appointment.PatientID = req.PatientID
	}
	if req.PatientName != nil {
		appointment.PatientName = *req.PatientName
	}
	if req.Date != nil {
		appointment.Date = *req.Date
	}
	if req.Time != nil {
		appointment.Time = *req.Time
	}
	if req.Type != nil {
		appointment.Type = *req.Type
	}
	if req.DoctorName != nil {
		appointment.DoctorName = *req.DoctorName
	}
	if req.Status != nil {
		appointment.Status = *req.Status
	}
	if req.Notes != nil {
		appointment.Notes = req.Notes
	}

	if err := s.validateAppointment(appointment); err != nil {
		return nil, err
	}

	if err := s.appointmentRepo.Update(appointment); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to update appointment in repository: %w", err)
	}
	return appointment, nil
}

func (s *appointmentService) DeleteAppointment(appointmentID int64) error {
	err := s.appointmentRepo.Delete(appointmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}
