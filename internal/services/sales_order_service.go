package services

import (
	"errors"
	"fmt"
	"strings"

	"optica_backend/internal/models"
	"optica_backend/internal/repositories"
)

// --- Custom Service Errors for SalesOrder ---
var (
	ErrSalesOrderNotFound     = errors.New("sales order not found")
	ErrSalesOrderNumberExists = errors.New("sales order number already exists")
	ErrSalesOrderValidation   = errors.New("sales order data validation error")

	ErrSalesOrderItemNotFound   = errors.New("sales order item not found")
	ErrSalesOrderItemValidation = errors.New("sales order item data validation error")
)

// --- SalesOrder DTOs ---

type CreateSalesOrderRequest struct {
	OrderNumber  string   `json:"orderNumber" binding:"required"`
	PatientID    *int64   `json:"patientId"`
	CustomerName string   `json:"customerName" binding:"required"`
	Date         string   `json:"date" binding:"required"`
	Status       string   `json:"status"`
	Total        *float64 `json:"total"`
	Notes        *string  `json:"notes"`
}

// UpdateSalesOrderRequest carries a partial update: only non-nil fields
// are applied to the stored record.
type UpdateSalesOrderRequest struct {
	OrderNumber  *string  `json:"orderNumber"`
	PatientID    *int64   `json:"patientId"`
	CustomerName *string  `json:"customerName"`
	Date         *string  `json:"date"`
	Status       *string  `json:"status"`
	Total        *float64 `json:"total"`
	Notes        *string  `json:"notes"`
}

type CreateSalesOrderItemRequest struct {
	SalesOrderID int64    `json:"salesOrderId" binding:"required"`
	ProductID    int64    `json:"productId" binding:"required"`
	ProductName  string   `json:"productName" binding:"required"`
	Quantity     int      `json:"quantity" binding:"required"`
	UnitPrice    *float64 `json:"unitPrice" binding:"required"`
	TotalPrice   *float64 `json:"totalPrice" binding:"required"`
}

// --- SalesOrderService Interface ---
type SalesOrderService interface {
	CreateSalesOrder(req CreateSalesOrderRequest) (*models.SalesOrder, error)
	GetSalesOrderByID(orderID int64) (*models.SalesOrder, error)
	GetSalesOrders() ([]models.SalesOrder, error)
	UpdateSalesOrder(orderID int64, req UpdateSalesOrderRequest) (*models.SalesOrder, error)
	DeleteSalesOrder(orderID int64) error

	CreateSalesOrderItem(req CreateSalesOrderItemRequest) (*models.SalesOrderItem, error)
	GetSalesOrderItems(orderID int64) ([]models.SalesOrderItem, error)
	DeleteSalesOrderItem(itemID int64) error
}

type salesOrderService struct {
	orderRepo repositories.SalesOrderRepository
	itemRepo  repositories.SalesOrderItemRepository
}

// NewSalesOrderService creates a new instance of SalesOrderService.
func NewSalesOrderService(orderRepo repositories.SalesOrderRepository, itemRepo repositories.SalesOrderItemRepository) SalesOrderService {
	return &salesOrderService{orderRepo: orderRepo, itemRepo: itemRepo}
}

func (s *salesOrderService) validateSalesOrder(o *models.SalesOrder) error {
	if strings.TrimSpace(o.OrderNumber) == "" {
		return fmt.Errorf("%w: order number cannot be empty", ErrSalesOrderValidation)
	}
	if strings.TrimSpace(o.CustomerName) == "" {
		return fmt.Errorf("%w: customer name cannot be empty", ErrSalesOrderValidation)
	}
	if !validDate(o.Date) {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrSalesOrderValidation)
	}
	if !oneOf(o.Status, models.SalesOrderStatusNew, models.SalesOrderStatusInProgress,
		models.SalesOrderStatusDelivered, models.SalesOrderStatusCancelled) {
		return fmt.Errorf("%w: invalid sales order status %q", ErrSalesOrderValidation, o.Status)
	}
	if o.Total < 0 {
		return fmt.Errorf("%w: total cannot be negative", ErrSalesOrderValidation)
	}
	return nil
}

// checkOrderNumberUnique enforces order number uniqueness before the
// write. currentID is 0 on create, or the record being updated so it can
// keep its own number.
func (s *salesOrderService) checkOrderNumberUnique(orderNumber string, currentID int64) error {
	existing, err := s.orderRepo.GetByOrderNumber(orderNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check sales order number uniqueness: %w", err)
	}
	if existing.ID != currentID {
		return ErrSalesOrderNumberExists
	}
	return nil
}

func (s *salesOrderService) CreateSalesOrder(req CreateSalesOrderRequest) (*models.SalesOrder, error) {
	order := &models.SalesOrder{
		OrderNumber:  strings.TrimSpace(req.OrderNumber),
		PatientID:    req.PatientID,
		CustomerName: req.CustomerName,
		Date:         req.Date,
		Status:       req.Status,
		Notes:        req.Notes,
	}
	if req.Total != nil {
		order.Total = *req.Total
	}
	if order.Status == "" {
		order.Status = models.SalesOrderStatusNew
	}

	if err := s.validateSalesOrder(order); err != nil {
		return nil, err
	}
	if err := s.checkOrderNumberUnique(order.OrderNumber, 0); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(order); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrSalesOrderNumberExists
		}
		return nil, fmt.Errorf("failed to create sales order in repository: %w", err)
	}
	return order, nil
}

func (s *salesOrderService) GetSalesOrderByID(orderID int64) (*models.SalesOrder, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSalesOrderNotFound
		}
		return nil, fmt.Errorf("failed to get sales order by ID: %w", err)
	}
	return order, nil
}

func (s *salesOrderService) GetSalesOrders() ([]models.SalesOrder, error) {
	orders, err := s.orderRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to get sales orders: %w", err)
	}
	return orders, nil
}

func (s *salesOrderService) UpdateSalesOrder(orderID int64, req UpdateSalesOrderRequest) (*models.SalesOrder, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSalesOrderNotFound
		}
		return nil, fmt.Errorf("failed to find sales order for update: %w", err)
	}

	if req.OrderNumber != nil {
		order.OrderNumber = strings.TrimSpace(*req.OrderNumber)
	}
	if req.PatientID != nil {
		order.PatientID = req.PatientID
	}
	if req.CustomerName != nil {
		order.CustomerName = *req.CustomerName
	}
	if req.Date != nil {
		order.Date = *req.Date
	}
	if req.Status != nil {
		order.Status = *req.Status
	}
	if req.Total != nil {
		order.Total = *req.Total
	}
	if req.Notes != nil {
		order.Notes = req.Notes
	}

	if err := s.validateSalesOrder(order); err != nil {
		return nil, err
	}
	if req.OrderNumber != nil {
		if err := s.checkOrderNumberUnique(order.OrderNumber, orderID); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Update(order); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrSalesOrderNumberExists
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSalesOrderNotFound
		}
		return nil, fmt.Errorf("failed to update sales order in repository: %w", err)
	}
	return order, nil
}

// DeleteSalesOrder removes an order. Its items are not cascaded, they
// remain reachable through the item endpoints.
func (s *salesOrderService) DeleteSalesOrder(orderID int64) error {
	err := s.orderRepo.Delete(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrSalesOrderNotFound
		}
		return fmt.Errorf("failed to delete sales order: %w", err)
	}
	return nil
}

func (s *salesOrderService) CreateSalesOrderItem(req CreateSalesOrderItemRequest) (*models.SalesOrderItem, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrSalesOrderItemValidation)
	}
	if strings.TrimSpace(req.ProductName) == "" {
		return nil, fmt.Errorf("%w: product name cannot be empty", ErrSalesOrderItemValidation)
	}

	item := &models.SalesOrderItem{
		SalesOrderID: req.SalesOrderID,
		ProductID:    req.ProductID,
		ProductName:  req.ProductName,
		Quantity:     req.Quantity,
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	if req.TotalPrice != nil {
		item.TotalPrice = *req.TotalPrice
	}
	if item.UnitPrice < 0 || item.TotalPrice < 0 {
		return nil, fmt.Errorf("%w: prices cannot be negative", ErrSalesOrderItemValidation)
	}

	if err := s.itemRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create sales order item in repository: %w", err)
	}
	return item, nil
}

// GetSalesOrderItems lists the items of one order. An unknown order id
// yields an empty list, not an error.
func (s *salesOrderService) GetSalesOrderItems(orderID int64) ([]models.SalesOrderItem, error) {
	items, err := s.itemRepo.ListByOrder(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sales order items: %w", err)
	}
	return items, nil
}

func (s *salesOrderService) DeleteSalesOrderItem(itemID int64) error {
	err := s.itemRepo.Delete(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrSalesOrderItemNotFound
		}
		return fmt.Errorf("failed to delete sales order item: %w", err)
	}
	return nil
}
