package services

import (
	"errors"
	"fmt"
	"strings"

	"optica_backend/internal/models"
	"optica_backend/internal/repositories"
)

// --- Custom Service Errors for PurchaseOrder ---
var (
	ErrPurchaseOrderNotFound     = errors.New("purchase order not found")
	ErrPurchaseOrderNumberExists = errors.New("purchase order number already exists")
	ErrPurchaseOrderValidation   = errors.New("purchase order data validation error")

	ErrPurchaseOrderItemNotFound   = errors.New("purchase order item not found")
	ErrPurchaseOrderItemValidation = errors.New("purchase order item data validation error")
)

// --- PurchaseOrder DTOs ---

type CreatePurchaseOrderRequest struct {
	OrderNumber string   `json:"orderNumber" binding:"required"`
	Supplier    string   `json:"supplier" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	Status      string   `json:"status"`
	Total       *float64 `json:"total"`
	Notes       *string  `json:"notes"`
}

// UpdatePurchaseOrderRequest carries a partial update: only non-nil
// fields are applied to the stored record.
type UpdatePurchaseOrderRequest struct {
	OrderNumber *string  `json:"orderNumber"`
	Supplier    *string  `json:"supplier"`
	Date        *string  `json:"date"`
	Status      *string  `json:"status"`
	Total       *float64 `json:"total"`
	Notes       *string  `json:"notes"`
}

type CreatePurchaseOrderItemRequest struct {
	PurchaseOrderID int64    `json:"purchaseOrderId" binding:"required"`
	ProductID       int64    `json:"productId" binding:"required"`
	ProductName     string   `json:"productName" binding:"required"`
	Quantity        int      `json:"quantity" binding:"required"`
	UnitPrice       *float64 `json:"unitPrice" binding:"required"`
	TotalPrice      *float64 `json:"totalPrice" binding:"required"`
}

// --- PurchaseOrderService Interface ---
type PurchaseOrderService interface {
	CreatePurchaseOrder(req CreatePurchaseOrderRequest) (*models.PurchaseOrder, error)
	GetPurchaseOrderByID(orderID int64) (*models.PurchaseOrder, error)
	GetPurchaseOrders() ([]models.PurchaseOrder, error)
	UpdatePurchaseOrder(orderID int64, req UpdatePurchaseOrderRequest) (*models.PurchaseOrder, error)
	DeletePurchaseOrder(orderID int64) error

	CreatePurchaseOrderItem(req CreatePurchaseOrderItemRequest) (*models.PurchaseOrderItem, error)
	GetPurchaseOrderItems(orderID int64) ([]models.PurchaseOrderItem, error)
	DeletePurchaseOrderItem(itemID int64) error
}

type purchaseOrderService struct {
	orderRepo repositories.PurchaseOrderRepository
	itemRepo  repositories.PurchaseOrderItemRepository
}

// NewPurchaseOrderService creates a new instance of PurchaseOrderService.
func NewPurchaseOrderService(orderRepo repositories.PurchaseOrderRepository, itemRepo repositories.PurchaseOrderItemRepository) PurchaseOrderService {
	return &purchaseOrderService{orderRepo: orderRepo, itemRepo: itemRepo}
}

func (s *purchaseOrderService) validatePurchaseOrder(o *models.PurchaseOrder) error {
	if strings.TrimSpace(o.OrderNumber) == "" {
		return fmt.Errorf("%w: order number cannot be empty", ErrPurchaseOrderValidation)
	}
	if strings.TrimSpace(o.Supplier) == "" {
		return fmt.Errorf("%w: supplier cannot be empty", ErrPurchaseOrderValidation)
	}
	if !validDate(o.Date) {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrPurchaseOrderValidation)
	}
	if !oneOf(o.Status,
		models.PurchaseOrderStatusCreated, models.PurchaseOrderStatusSent, models.PurchaseOrderStatusReceived,
		models.PurchaseOrderStatusPending, models.PurchaseOrderStatusInProgress,
		models.PurchaseOrderStatusCompleted, models.PurchaseOrderStatusCancelled) {
		return fmt.Errorf("%w: invalid purchase order status %q", ErrPurchaseOrderValidation, o.Status)
	}
	if o.Total < 0 {
		return fmt.Errorf("%w: total cannot be negative", ErrPurchaseOrderValidation)
	}
	return nil
}

func (s *purchaseOrderService) checkOrderNumberUnique(orderNumber string, currentID int64) error {
	existing, err := s.orderRepo.GetByOrderNumber(orderNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check purchase order number uniqueness: %w", err)
	}
	if existing.ID != currentID {
		return ErrPurchaseOrderNumberExists
	}
	return nil
}

func (s *purchaseOrderService) CreatePurchaseOrder(req CreatePurchaseOrderRequest) (*models.PurchaseOrder, error) {
	order := &models.PurchaseOrder{
		OrderNumber: strings.TrimSpace(req.OrderNumber),
		Supplier:    req.Supplier,
		Date:        req.Date,
		Status:      req.Status,
		Notes:       req.Notes,
	}
	if req.Total != nil {
		order.Total = *req.Total
	}
	if order.Status == "" {
		order.Status = models.PurchaseOrderStatusCreated
	}

	if err := s.validatePurchaseOrder(order); err != nil {
		return nil, err
	}
	if err := s.checkOrderNumberUnique(order.OrderNumber, 0); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(order); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrPurchaseOrderNumberExists
		}
		return nil, fmt.Errorf("failed to create purchase order in repository: %w", err)
	}
	return order, nil
}

func (s *purchaseOrderService) GetPurchaseOrderByID(orderID int64) (*models.PurchaseOrder, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPurchaseOrderNotFound
		}
		return nil, fmt.Errorf("failed to get purchase order by ID: %w", err)
	}
	return order, nil
}

func (s *purchaseOrderService) GetPurchaseOrders() ([]models.PurchaseOrder, error) {
	orders, err := s.orderRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase orders: %w", err)
	}
	return orders, nil
}

func (s *purchaseOrderService) UpdatePurchaseOrder(orderID int64, req UpdatePurchaseOrderRequest) (*models.PurchaseOrder, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPurchaseOrderNotFound
		}
		return nil, fmt.Errorf("failed to find purchase order for update: %w", err)
	}

	if req.OrderNumber != nil {
		order.OrderNumber = strings.TrimSpace(*req.OrderNumber)
	}
	if req.Supplier != nil {
		order.Supplier = *req.Supplier
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

	if err := s.validatePurchaseOrder(order); err != nil {
		return nil, err
	}
	if req.OrderNumber != nil {
		if err := s.checkOrderNumberUnique(order.OrderNumber, orderID); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Update(order); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrPurchaseOrderNumberExists
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPurchaseOrderNotFound
		}
		return nil, fmt.Errorf("failed to update purchase order in repository: %w", err)
	}
	return order, nil
}

func (s *purchaseOrderService) DeletePurchaseOrder(orderID int64) error {
	err := s.orderRepo.Delete(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPurchaseOrderNotFound
		}
		return fmt.Errorf("failed to delete purchase order: %w", err)
	}
	return nil
}

func (s *purchaseOrderService) CreatePurchaseOrderItem(req CreatePurchaseOrderItemRequest) (*models.PurchaseOrderItem, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrPurchaseOrderItemValidation)
	}
	if strings.TrimSpace(req.ProductName) == "" {
		return nil, fmt.Errorf("%w: product name cannot be empty", ErrPurchaseOrderItemValidation)
	}

	item := &models.PurchaseOrderItem{
		PurchaseOrderID: req.PurchaseOrderID,
		ProductID:       req.ProductID,
		ProductName:     req.ProductName,
		Quantity:        req.Quantity,
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	if req.TotalPrice != nil {
		item.TotalPrice = *req.TotalPrice
	}
	if item.UnitPrice < 0 || item.TotalPrice < 0 {
		return nil, fmt.Errorf("%w: prices cannot be negative", ErrPurchaseOrderItemValidation)
	}

	if err := s.itemRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create purchase order item in repository: %w", err)
	}
	return item, nil
}

// GetPurchaseOrderItems lists the items of one order. An unknown order id
// yields an empty list, not an error.
func (s *purchaseOrderService) GetPurchaseOrderItems(orderID int64) ([]models.PurchaseOrderItem, error) {
	items, err := s.itemRepo.ListByOrder(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase order items: %w", err)
	}
	return items, nil
}

func (s *purchaseOrderService) DeletePurchaseOrderItem(itemID int64) error {
	err := s.itemRepo.Delete(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPurchaseOrderItemNotFound
		}
		return fmt.Errorf("failed to delete purchase order item: %w", err)
	}
	return nil
}
