package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"optica_backend/internal/models"
	"optica_backend/internal/repositories"
)

func newProductService() ProductService {
	return NewProductService(repositories.NewMemoryStore().Products)
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func TestCreateProductAppliesDefaults(t *testing.T) {
	svc := newProductService()

	product, err := svc.CreateProduct(CreateProductRequest{
		Code:  "LEN-001",
		Name:  "Lente monofocal",
		Price: floatPtr(99.90),
	})
	require.NoError(t, err)
	require.NotZero(t, product.ID)
	require.Equal(t, 0, product.Stock)
	require.Equal(t, models.StockStatusNormal, product.StockStatus)
	require.Equal(t, models.ProductTypeOwned, product.Type)
	require.Equal(t, models.ProductStatusActive, product.Status)
}

func TestCreateProductDuplicateCode(t *testing.T) {
	svc := newProductService()

	_, err := svc.CreateProduct(CreateProductRequest{Code: "LEN-001", Name: "a", Price: floatPtr(1)})
	require.NoError(t, err)

	_, err = svc.CreateProduct(CreateProductRequest{Code: "LEN-001", Name: "b", Price: floatPtr(2)})
	require.ErrorIs(t, err, ErrProductCodeExists)

	products, err := svc.GetProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestCreateProductRejectsInvalidEnum(t *testing.T) {
	svc := newProductService()

	_, err := svc.CreateProduct(CreateProductRequest{
		Code: "LEN-001", Name: "a", Price: floatPtr(1), Type: "prestado",
	})
	require.ErrorIs(t, err, ErrProductValidation)

	_, err = svc.CreateProduct(CreateProductRequest{
		Code: "LEN-002", Name: "a", Price: floatPtr(-5),
	})
	require.ErrorIs(t, err, ErrProductValidation)
}

func TestUpdateProductPartialPatch(t *testing.T) {
	svc := newProductService()

	created, err := svc.CreateProduct(CreateProductRequest{
		Code: "LEN-001", Name: "Lente monofocal", Category: "lentes",
		Stock: intPtr(10), Price: floatPtr(120),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(created.ID, UpdateProductRequest{Price: floatPtr(99.50)})
	require.NoError(t, err)
	require.InDelta(t, 99.50, updated.Price, 0.0001)
	require.Equal(t, "Lente monofocal", updated.Name)
	require.Equal(t, "lentes", updated.Category)
	require.Equal(t, 10, updated.Stock)
}

func TestUpdateProductEmptyPatchIsNoOp(t *testing.T) {
	svc := newProductService()

	created, err := svc.CreateProduct(CreateProductRequest{
		Code: "LEN-001", Name: "Lente", Stock: intPtr(3), Price: floatPtr(50),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(created.ID, UpdateProductRequest{})
	require.NoError(t, err)
	require.Equal(t, *created, *updated)
}

func TestUpdateProductCodeConflict(t *testing.T) {
	svc := newProductService()

	_, err := svc.CreateProduct(CreateProductRequest{Code: "A", Name: "a", Price: floatPtr(1)})
	require.NoError(t, err)
	second, err := svc.CreateProduct(CreateProductRequest{Code: "B", Name: "b", Price: floatPtr(1)})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(second.ID, UpdateProductRequest{Code: strPtr("A")})
	require.ErrorIs(t, err, ErrProductCodeExists)

	// Rewriting the record with its own code is not a conflict.
	_, err = svc.UpdateProduct(second.ID, UpdateProductRequest{Code: strPtr("B")})
	require.NoError(t, err)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := newProductService()

	_, err := svc.UpdateProduct(424242, UpdateProductRequest{Name: strPtr("x")})
	require.ErrorIs(t, err, ErrProductNotFound)
}
