package repositories

import (
	"database/sql"
	"fmt"

	"optica_backend/internal/models"
)

type salesOrderRepository struct {
	db *sql.DB
}

// NewSalesOrderRepository creates a new PostgreSQL-backed SalesOrderRepository.
func NewSalesOrderRepository(db *sql.DB) SalesOrderRepository {
	return &salesOrderRepository{db: db}
}

const salesOrderColumns = `id, order_number, patient_id, customer_name, date, status, total, notes`

func scanSalesOrder(row interface{ Scan(dest ...interface{}) error }, o *models.SalesOrder) error {
	return row.Scan(
		&o.ID, &o.OrderNumber, &o.PatientID, &o.CustomerName,
		&o.Date, &o.Status, &o.Total, &o.Notes,
	)
}

// Create inserts a new sales order and assigns its id.
func (r *salesOrderRepository) Create(order *models.SalesOrder) error {
	query := `INSERT INTO sales_orders (order_number, patient_id, customer_name, date, status, total, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`

	err := r.db.QueryRow(query,
		order.OrderNumber, order.PatientID, order.CustomerName,
		order.Date, order.Status, order.Total, order.Notes,
	).Scan(&order.ID)
	if err != nil {
		return wrapWriteError(err, "creating sales order")
	}
	return nil
}

// GetByID retrieves a sales order by its id.
func (r *salesOrderRepository) GetByID(id int64) (*models.SalesOrder, error) {
	order := &models.SalesOrder{}
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders WHERE id = $1`

	if err := scanSalesOrder(r.db.QueryRow(query, id), order); err != nil {
		return nil, wrapReadError(err, fmt.Sprintf("getting sales order by ID %d", id))
	}
	return order, nil
}

// GetByOrderNumber retrieves a sales order by its unique order number.
func (r *salesOrderRepository) GetByOrderNumber(orderNumber string) (*models.SalesOrder, error) {
	order := &models.SalesOrder{}
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders WHERE order_number = $1`

	if err := scanSalesOrder(r.db.QueryRow(query, orderNumber), order); err != nil {
		return nil, wrapReadError(err, "getting sales order by number "+orderNumber)
	}
	return order, nil
}

// List retrieves all sales orders in insertion order.
func (r *salesOrderRepository) List() ([]models.SalesOrder, error) {
	orders := []models.SalesOrder{}
	rows, err := r.db.Query(`SELECT ` + salesOrderColumns + ` FROM sales_orders ORDER BY id`)
	if err != nil {
		return nil, wrapReadError(err, "querying sales orders")
	}
	defer rows.Close()

	for rows.Next() {
		var order models.SalesOrder
		if err := scanSalesOrder(rows, &order); err != nil {
			return nil, wrapReadError(err, "scanning sales order")
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadError(err, "iterating sales order rows")
	}
	return orders, nil
}

// Update rewrites an existing sales order.
func (r *salesOrderRepository) Update(order *models.SalesOrder) error {
	query := `UPDATE sales_orders SET
	            order_number = $1, patient_id = $2, customer_name = $3,
	            date = $4, status = $5, total = $6, notes = $7
	          WHERE id = $8`

	result, err := r.db.Exec(query,
		order.OrderNumber, order.PatientID, order.CustomerName,
		order.Date, order.Status, order.Total, order.Notes, order.ID,
	)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("updating sales order ID %d", order.ID))
	}
	return checkAffected(result, fmt.Sprintf("updating sales order ID %d", order.ID))
}

// Delete removes a sales order. Its items keep their weak reference.
func (r *salesOrderRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM sales_orders WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("deleting sales order ID %d", id))
	}
	return checkAffected(result, fmt.Sprintf("deleting sales order ID %d", id))
}

type salesOrderItemRepository struct {
	db *sql.DB
}

// NewSalesOrderItemRepository creates a new PostgreSQL-backed SalesOrderItemRepository.
func NewSalesOrderItemRepository(db *sql.DB) SalesOrderItemRepository {
	return &salesOrderItemRepository{db: db}
}

const salesOrderItemColumns = `id, sales_order_id, product_id, product_name, quantity, unit_price, total_price`

func scanSalesOrderItem(row interface{ Scan(dest ...interface{}) error }, it *models.SalesOrderItem) error {
	return row.Scan(
		&it.ID, &it.SalesOrderID, &it.ProductID, &it.ProductName,
		&it.Quantity, &it.UnitPrice, &it.TotalPrice,
	)
}

// Create inserts a new sales order item and assigns its id. The parent
// order is not checked for existence.
func (r *salesOrderItemRepository) Create(item *models.SalesOrderItem) error {
	query := `INSERT INTO sales_order_items (sales_order_id, product_id, product_name, quantity, unit_price, total_price)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	err := r.db.QueryRow(query,
		item.SalesOrderID, item.ProductID, item.ProductName,
		item.Quantity, item.UnitPrice, item.TotalPrice,
	).Scan(&item.ID)
	if err != nil {
		return wrapWriteError(err, "creating sales order item")
	}
	return nil
}

// GetByID retrieves a sales order item by its id.
func (r *salesOrderItemRepository) GetByID(id int64) (*models.SalesOrderItem, error) {
	item := &models.SalesOrderItem{}
	query := `SELECT ` + salesOrderItemColumns + ` FROM sales_order_items WHERE id = $1`

	if err := scanSalesOrderItem(r.db.QueryRow(query, id), item); err != nil {
		return nil, wrapReadError(err, fmt.Sprintf("getting sales order item by ID %d", id))
	}
	return item, nil
}

// ListByOrder retrieves the items of one sales order. An unknown order id
// yields an empty slice, not an error.
func (r *salesOrderItemRepository) ListByOrder(salesOrderID int64) ([]models.SalesOrderItem, error) {
	items := []models.SalesOrderItem{}
	query := `SELECT ` + salesOrderItemColumns + ` FROM sales_order_items WHERE sales_order_id = $1 ORDER BY id`

	rows, err := r.db.Query(query, salesOrderID)
	if err != nil {
		return nil, wrapReadError(err, fmt.Sprintf("querying items of sales order %d", salesOrderID))
	}
	defer rows.Close()

	for rows.Next() {
		var item models.SalesOrderItem
		if err := scanSalesOrderItem(rows, &item); err != nil {
			return nil, wrapReadError(err, "scanning sales order item")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadError(err, "iterating sales order item rows")
	}
	return items, nil
}

// Delete removes a sales order item.
func (r *salesOrderItemRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM sales_order_items WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("deleting sales order item ID %d", id))
	}
	return checkAffected(result, fmt.Sprintf("deleting sales order item ID %d", id))
}
