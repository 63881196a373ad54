package repositories

import (
	"database/sql"
	"fmt"

	"optica_backend/internal/models"
)

type purchaseOrderRepository struct {
	db *sql.DB
}

// NewPurchaseOrderRepository creates a new PostgreSQL-backed PurchaseOrderRepository.
func NewPurchaseOrderRepository(db *sql.DB) PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

const purchaseOrderColumns = `id, order_number, supplier, date, status, total, notes`

func scanPurchaseOrder(row interface{ Scan(dest ...interface{}) error }, o *models.PurchaseOrder) error {
	return row.Scan(&o.ID, &o.OrderNumber, &o.Supplier, &o.Date, &o.Status, &o.Total, &o.Notes)
}

// Create inserts a new purchase order and assigns its id.
func (r *purchaseOrderRepository) Create(order *models.PurchaseOrder) error {
	query := `INSERT INTO purchase_orders (order_number, supplier, date, status, total, notes)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	err := r.db.QueryRow(query,
		order.OrderNumber, order.Supplier, order.Date, order.Status, order.Total, order.Notes,
	).Scan(&order.ID)
	if err != nil {
		return wrapWriteError(err, "creating purchase order")
	}
	return nil
}

// GetByID retrieves a purchase order by its id.
func (r *purchaseOrderRepository) GetByID(id int64) (*models.PurchaseOrder, error) {
	order := &models.PurchaseOrder{}
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE id = $1`

	if err := scanPurchaseOrder(r.db.QueryRow(query, id), order); err != nil {
		return nil, wrapReadError(err, fmt.Sprintf("getting purchase order by ID %d", id))
	}
	return order, nil
}

// GetByOrderNumber retrieves a purchase order by its unique order number.
func (r *purchaseOrderRepository) GetByOrderNumber(orderNumber string) (*models.PurchaseOrder, error) {
	order := &models.PurchaseOrder{}
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE order_number = $1`

	if err := scanPurchaseOrder(r.db.QueryRow(query, orderNumber), order); err != nil {
		return nil, wrapReadError(err, "getting purchase order by number "+orderNumber)
	}
	return order, nil
}

// List retrieves all purchase orders in insertion order.
func (r *purchaseOrderRepository) List() ([]models.PurchaseOrder, error) {
	orders := []models.PurchaseOrder{}
	rows, err := r.db.Query(`SELECT ` + purchaseOrderColumns + ` FROM purchase_orders ORDER BY id`)
	if err != nil {
		return nil, wrapReadError(err, "querying purchase orders")
	}
	defer rows.Close()

	for rows.Next() {
		var order models.PurchaseOrder
		if err := scanPurchaseOrder(rows, &order); err != nil {
			return nil, wrapReadError(err, "scanning purchase order")
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadError(err, "iterating purchase order rows")
	}
	return orders, nil
}

// Update rewrites an existing purchase order.
func (r *purchaseOrderRepository) Update(order *models.PurchaseOrder) error {
	query := `UPDATE purchase_orders SET
	            order_number = $1, supplier = $2, date = $3, status = $4, total = $5, notes = $6
	          WHERE id = $7`

	result, err := r.db.Exec(query,
		order.OrderNumber, order.Supplier, order.Date, order.Status, order.Total, order.Notes, order.ID,
	)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("updating purchase order ID %d", order.ID))
	}
	return checkAffected(result, fmt.Sprintf("updating purchase order ID %d", order.ID))
}

// Delete removes a purchase order. Its items keep their weak reference.
func (r *purchaseOrderRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("deleting purchase order ID %d", id))
	}
	return checkAffected(result, fmt.Sprintf("deleting purchase order ID %d", id))
}

type purchaseOrderItemRepository struct {
	db *sql.DB
}

// NewPurchaseOrderItemRepository creates a new PostgreSQL-backed PurchaseOrderItemRepository.
func NewPurchaseOrderItemRepository(db *sql.DB) PurchaseOrderItemRepository {
	return &purchaseOrderItemRepository{db: db}
}

const purchaseOrderItemColumns = `id, purchase_order_id, product_id, product_name, quantity, unit_price, total_price`

func scanPurchaseOrderItem(row interface{ Scan(dest ...interface{}) error }, it *models.PurchaseOrderItem) error {
	return row.Scan(
		&it.ID, &it.PurchaseOrderID, &it.ProductID, &it.ProductName,
		&it.Quantity, &it.UnitPrice, &it.TotalPrice,
	)
}

// Create inserts a new purchase order item and assigns its id.
func (r *purchaseOrderItemRepository) Create(item *models.PurchaseOrderItem) error {
	query := `INSERT INTO purchase_order_items (purchase_order_id, product_id, product_name, quantity, unit_price, total_price)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	err := r.db.QueryRow(query,
		item.PurchaseOrderID, item.ProductID, item.ProductName,
		item.Quantity, item.UnitPrice, item.TotalPrice,
	).Scan(&item.ID)
	if err != nil {
		return wrapWriteError(err, "creating purchase order item")
	}
	return nil
}

// GetByID retrieves a purchase order item by its id.
func (r *purchaseOrderItemRepository) GetByID(id int64) (*models.PurchaseOrderItem, error) {
	item := &models.PurchaseOrderItem{}
	query := `SELECT ` + purchaseOrderItemColumns + ` FROM purchase_order_items WHERE id = $1`

	if err := scanPurchaseOrderItem(r.db.QueryRow(query, id), item); err != nil {
		return nil, wrapReadError(err, fmt.Sprintf("getting purchase order item by ID %d", id))
	}
	return item, nil
}

// ListByOrder retrieves the items of one purchase order.
func (r *purchaseOrderItemRepository) ListByOrder(purchaseOrderID int64) ([]models.PurchaseOrderItem, error) {
	items := []models.PurchaseOrderItem{}
	query := `SELECT ` + purchaseOrderItemColumns + ` FROM purchase_order_items WHERE purchase_order_id = $1 ORDER BY id`

	rows, err := r.db.Query(query, purchaseOrderID)
	if err != nil {
		return nil, wrapReadError(err, fmt.Sprintf("querying items of purchase order %d", purchaseOrderID))
	}
	defer rows.Close()

	for rows.Next() {
		var item models.PurchaseOrderItem
		if err := scanPurchaseOrderItem(rows, &item); err != nil {
			return nil, wrapReadError(err, "scanning purchase order item")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadError(err, "iterating purchase order item rows")
	}
	return items, nil
}

// Delete removes a purchase order item.
func (r *purchaseOrderItemRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM purchase_order_items WHERE id = $1`, id)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("deleting purchase order item ID %d", id))
	}
	return checkAffected(result, fmt.Sprintf("deleting purchase order item ID %d", id))
}
