package services

import (
	"errors"
	"fmt"
	"strings"

	"optica_backend/internal/models"
	"optica_backend/internal/repositories"
)

// --- Custom Service Errors for Product ---
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductCodeExists = errors.New("product code already exists")
	ErrProductValidation = errors.New("product data validation error")
)

// oneOf reports whether value is one of the allowed strings. Shared by the
// enum checks of every service in this package.
func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// --- Product DTOs ---

type CreateProductRequest struct {
	Code        string   `json:"code" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category"`
	Supplier    *string  `json:"supplier"`
	Stock       *int     `json:"stock"`
	Price       *float64 `json:"price" binding:"required"`
	StockStatus string   `json:"stockStatus"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
}

// UpdateProductRequest carries a partial update: only non-nil fields are
// applied to the stored record.
type UpdateProductRequest struct {
	Code        *string  `json:"code"`
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Supplier    *string  `json:"supplier"`
	Stock       *int     `json:"stock"`
	Price       *float64 `json:"price"`
	StockStatus *string  `json:"stockStatus"`
	Type        *string  `json:"type"`
	Status      *string  `json:"status"`
}

// --- ProductService Interface ---
type ProductService interface {
	CreateProduct(req CreateProductRequest) (*models.Product, error)
	GetProductByID(productID int64) (*models.Product, error)
	GetProducts() ([]models.Product, error)
	UpdateProduct(productID int64, req UpdateProductRequest) (*models.Product, error)
	DeleteProduct(productID int64) error
}

type productService struct {
	productRepo repositories.ProductRepository
}

// NewProductService creates a new instance of ProductService.
func NewProductService(repo repositories.ProductRepository) ProductService {
	return &productService{productRepo: repo}
}

func (s *productService) validateProduct(p *models.Product) error {
	if strings.TrimSpace(p.Code) == "" {
		return fmt.Errorf("%w: code cannot be empty", ErrProductValidation)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrProductValidation)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", ErrProductValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrProductValidation)
	}
	if !oneOf(p.StockStatus, models.StockStatusNormal, models.StockStatusLow, models.StockStatusCritical) {
		return fmt.Errorf("%w: invalid stock status %q", ErrProductValidation, p.StockStatus)
	}
	if !oneOf(p.Type, models.ProductTypeOwned, models.ProductTypeConsignment) {
		return fmt.Errorf("%w: invalid product type %q", ErrProductValidation, p.Type)
	}
	if !oneOf(p.Status, models.ProductStatusActive, models.ProductStatusInactive) {
		return fmt.Errorf("%w: invalid product status %q", ErrProductValidation, p.Status)
	}
	return nil
}

// checkCodeUnique enforces code uniqueness before the write. currentID is
// 0 on create, or the record being updated so it can keep its own code.
func (s *productService) checkCodeUnique(code string, currentID int64) error {
	existing, err := s.productRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check product code uniqueness: %w", err)
	}
	if existing.ID != currentID {
		return ErrProductCodeExists
	}
	return nil
}

func (s *productService) CreateProduct(req CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Code:        strings.TrimSpace(req.Code),
		Name:        req.Name,
		Category:    req.Category,
		Supplier:    req.Supplier,
		StockStatus: req.StockStatus,
		Type:        req.Type,
		Status:      req.Status,
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if product.StockStatus == "" {
		product.StockStatus = models.StockStatusNormal
	}
	if product.Type == "" {
		product.Type = models.ProductTypeOwned
	}
	if product.Status == "" {
		product.Status = models.ProductStatusActive
	}

	if err := s.validateProduct(product); err != nil {
		return nil, err
	}
	if err := s.checkCodeUnique(product.Code, 0); err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(product); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrProductCodeExists
		}
		return nil, fmt.Errorf("failed to create product in repository: %w", err)
	}
	return product, nil
}

func (s *productService) GetProductByID(productID int64) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}
	return product, nil
}

func (s *productService) GetProducts() ([]models.Product, error) {
	products, err := s.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

func (s *productService) UpdateProduct(productID int64, req UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product for update: %w", err)
	}

	if req.Code != nil {
		product.Code = strings.TrimSpace(*req.Code)
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Supplier != nil {
		product.Supplier = req.Supplier
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.StockStatus != nil {
		product.StockStatus = *req.StockStatus
	}
	if req.Type != nil {
		product.Type = *req.Type
	}
	if req.Status != nil {
		product.Status = *req.Status
	}

	if err := s.validateProduct(product); err != nil {
		return nil, err
	}
	if req.Code != nil {
		if err := s.checkCodeUnique(product.Code, productID); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Update(product); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrProductCodeExists
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product in repository: %w", err)
	}
	return product, nil
}

func (s *productService) DeleteProduct(productID int64) error {
	err := s.productRepo.Delete(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
