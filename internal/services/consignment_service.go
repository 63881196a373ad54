package services

import (
	"errors"
	"fmt"
	"strings"

	"optica_backend/internal/models"
	"optica_backend/internal/repositories"
)

// --- Custom Service Errors for Consignment ---
var (
	ErrConsignmentNotFound   = errors.New("consignment not found")
	ErrConsignmentValidation = errors.New("consignment data validation error")
)

// --- Consignment DTOs ---

type CreateConsignmentRequest struct {
	Supplier       string  `json:"supplier" binding:"required"`
	ProductName    string  `json:"productName" binding:"required"`
	Category       string  `json:"category"`
	Quantity       *int    `json:"quantity" binding:"required"`
	ReceivedDate   string  `json:"receivedDate" binding:"required"`
	ReturnDate     *string `json:"returnDate"`
	ExpirationDate *string `json:"expirationDate"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes"`
}

// UpdateConsignmentRequest carries a partial update: only non-nil fields
// are applied to the stored record.
type UpdateConsignmentRequest struct {
	Supplier       *string `json:"supplier"`
	ProductName    *string `json:"productName"`
	Category       *string `json:"category"`
	Quantity       *int    `json:"quantity"`
	ReceivedDate   *string `json:"receivedDate"`
	ReturnDate     *string `json:"returnDate"`
	ExpirationDate *string `json:"expirationDate"`
	Status         *string `json:"status"`
	Notes          *string `json:"notes"`
}

// --- ConsignmentService Interface ---
type ConsignmentService interface {
	CreateConsignment(req CreateConsignmentRequest) (*models.Consignment, error)
	GetConsignmentByID(consignmentID int64) (*models.Consignment, error)
	GetConsignments() ([]models.Consignment, error)
	UpdateConsignment(consignmentID int64, req UpdateConsignmentRequest) (*models.Consignment, error)
	DeleteConsignment(consignmentID int64) error
}

type consignmentService struct {
	consignmentRepo repositories.ConsignmentRepository
}

// NewConsignmentService creates a new instance of ConsignmentService.
func NewConsignmentService(repo repositories.ConsignmentRepository) ConsignmentService {
	return &consignmentService{consignmentRepo: repo}
}

func (s *consignmentService) validateConsignment(c *models.Consignment) error {
	if strings.TrimSpace(c.Supplier) == "" {
		return fmt.Errorf("%w: supplier cannot be empty", ErrConsignmentValidation)
	}
	if strings.TrimSpace(c.ProductName) == "" {
		return fmt.Errorf("%w: product name cannot be empty", ErrConsignmentValidation)
	}
	if c.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrConsignmentValidation)
	}
	if !validDate(c.ReceivedDate) {
		return fmt.Errorf("%w: received date must be YYYY-MM-DD", ErrConsignmentValidation)
	}
	if c.ReturnDate != nil && *c.ReturnDate != "" && !validDate(*c.ReturnDate) {
		return fmt.Errorf("%w: return date must be YYYY-MM-DD", ErrConsignmentValidation)
	}
	if c.ExpirationDate != nil && *c.ExpirationDate != "" && !validDate(*c.ExpirationDate) {
		return fmt.Errorf("%w: expiration date must be YYYY-MM-DD", ErrConsignmentValidation)
	}
	if !oneOf(c.Status, models.ConsignmentStatusActive, models.ConsignmentStatusReturned, models.ConsignmentStatusSold) {
		return fmt.Errorf("%w: invalid consignment status %q", ErrConsignmentValidation, c.Status)
	}
	return nil
}

func (s *consignmentService) CreateConsignment(req CreateConsignmentRequest) (*models.Consignment, error) {
	consignment := &models.Consignment{
		Supplier:       req.Supplier,
		ProductName:    req.ProductName,
		Category:       req.Category,
		ReceivedDate:   req.ReceivedDate,
		ReturnDate:     req.ReturnDate,
		ExpirationDate: req.ExpirationDate,
		Status:         req.Status,
		Notes:          req.Notes,
	}
	if req.Quantity != nil {
		consignment.Quantity = *req.Quantity
	}
	if consignment.Status == "" {
		consignment.Status = models.ConsignmentStatusActive
	}

	if err := s.validateConsignment(consignment); err != nil {
		return nil, err
	}

	if err := s.consignmentRepo.Create(consignment); err != nil {
		return nil, fmt.Errorf("failed to create consignment in repository: %w", err)
	}
	return consignment, nil
}

func (s *consignmentService) GetConsignmentByID(consignmentID int64) (*models.Consignment, error) {
	consignment, err := s.consignmentRepo.GetByID(consignmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrConsignmentNotFound
		}
		return nil, fmt.Errorf("failed to get consignment by ID: %w", err)
	}
	return consignment, nil
}

func (s *consignmentService) GetConsignments() ([]models.Consignment, error) {
	consignments, err := s.consignmentRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to get consignments: %w", err)
	}
	return consignments, nil
}

func (s *consignmentService) UpdateConsignment(consignmentID int64, req UpdateConsignmentRequest) (*models.Consignment, error) {
	consignment, err := s.consignmentRepo.GetByID(consignmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrConsignmentNotFound
		}
		return nil, fmt.Errorf("failed to find consignment for update: %w", err)
	}

	if req.Supplier != nil {
		consignment.Supplier = *req.Supplier
	}
	if req.ProductName != nil {
		consignment.ProductName = *req.ProductName
	}
	if req.Category != nil {
		consignment.Category = *req.Category
	}
	if req.Quantity != nil {
		consignment.Quantity = *req.Quantity
	}
	if req.ReceivedDate != nil {
		consignment.ReceivedDate = *req.ReceivedDate
	}
	if req.ReturnDate != nil {
		consignment.ReturnDate = req.ReturnDate
	}
	if req.ExpirationDate != nil {
		consignment.ExpirationDate = req.ExpirationDate
	}
	if req.Status != nil {
		consignment.Status = *req.Status
	}
	if req.Notes != nil {
		consignment.Notes = req.Notes
	}

	if err := s.validateConsignment(consignment); err != nil {
		return nil, err
	}

	if err := s.consignmentRepo.Update(consignment); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrConsignmentNotFound
		}
		return nil, fmt.Errorf("failed to update consignment in repository: %w", err)
	}
	return consignment, nil
}

func (s *consignmentService) DeleteConsignment(consignmentID int64) error {
	err := s.consignmentRepo.Delete(consignmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrConsignmentNotFound
		}
		return fmt.Errorf("failed to delete consignment: %w", err)
	}
	return nil
}
