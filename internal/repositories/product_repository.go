package repositories

import (
	"database/sql"
	"fmt"

	"optica_backend/internal/models"
)

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new PostgreSQL-backed ProductRepository.
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, code, name, category, supplier, stock, price, stock_status, type, status`

func scanProduct(row interface{ Scan(dest ...interface{}) error }, p *models.Product) error {
	return row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Category, &p.Supplier,
		&p.Stock, &p.Price, &p.StockStatus, &p.Type, &p.Status,
	)
}

// Create inserts a new product and assigns its id.
func (r *productRepository) Create(product *models.Product) error {
	query := `INSERT INTO products (code, name, category, supplier, stock, price, stock_status, type, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING id`

	err := r.db.QueryRow(query,
		product.Code, product.Name, product.Category, product.Supplier,
		product.Stock, product.Price, product.StockStatus, product.Type, product.Status,
	).Scan(&product.ID)
	if err != nil {
		return wrapWriteError(err, "creating product")
	}
	return nil
}

// GetByID retrieves a product by its id.
func (r *productRepository) GetByID(id int64) (*models.Product, error) {
	product := &models.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	if err := scanProduct(r.db.QueryRow(query, id), product); err != nil {
		return nil, wrapReadError(err, fmt.Sprintf("getting product by ID %d", id))
	}
	return product, nil
}

// GetByCode retrieves a product by its unique code.
func (r *productRepository) GetByCode(code string) (*models.Product, error) {
	product := &models.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1`

	if err := scanProduct(r.db.QueryRow(query, code), product); err != nil {
		return nil, wrapReadError(err, "getting product by code "+code)
	}
	return product, nil
}

// List retrieves all products in insertion order.
func (r *productRepository) List() ([]models.Product, error) {
	products := []models.Product{}
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, wrapReadError(err, "querying products")
	}
	defer rows.Close()

	for rows.Next() {
		var product models.Product
		if err := scanProduct(rows, &product); err != nil {
			return nil, wrapReadError(err, "scanning product")
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadError(err, "iterating product rows")
	}
	return products, nil
}

// Update rewrites an existing product. The id is never changed.
func (r *productRepository) Update(product *models.Product) error {
	query := `UPDATE products SET
	            code = $1, name = $2, category = $3, supplier = $4, stock = $5,
	            price = $6, stock_status = $7, type = $8, status = $9
	          WHERE id = $10`

	result, err := r.db.Exec(query,
		product.Code, product.Name, product.Category, product.Supplier, product.Stock,
		product.Price, product.StockStatus, product.Type, product.Status, product.ID,
	)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("updating product ID %d", product.ID))
	}
	return checkAffected(result, fmt.Sprintf("updating product ID %d", product.ID))
}

// Delete removes a product. Returns ErrNotFound if it does not exist.
func (r *productRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("deleting product ID %d", id))
	}
	return checkAffected(result, fmt.Sprintf("deleting product ID %d", id))
}
