package store

import (
	"context"
	"database/sql"
	"errors"

	"boundless-api/internal/models"

	"github.com/jmoiron/sqlx"
)

// GetOrders retrieves all orders
func (s *Store) GetOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.SelectContext(ctx, &orders, "SELECT * FROM orders ORDER BY id ASC")
	return orders, err
}

// GetOrderByID retrieves an order by ID
func (s *Store) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := s.db.GetContext(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder creates a new order outside any transaction
func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	return createOrder(ctx, s.db, order)
}

// CreateOrderTx creates a new order inside an open transaction
func (s *Store) CreateOrderTx(ctx context.Context, tx *sqlx.Tx, order *models.Order) error {
	return createOrder(ctx, tx, order)
}

func createOrder(ctx context.Context, q sqlx.QueryerContext, order *models.Order) error {
	query := `
		INSERT INTO orders
		(customer_name, customer_email, customer_phone, shipping_address, total_amount, status, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING *`

	return sqlx.GetContext(ctx, q, order, query,
		order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		order.ShippingAddress, order.TotalAmount, order.Status, order.PaymentStatus)
}

// UpdateOrder updates an order
func (s *Store) UpdateOrder(ctx context.Context, order *models.Order) error {
	query := `
		UPDATE orders SET
		customer_name = $1, customer_email = $2, customer_phone = $3, shipping_address = $4,
		total_amount = $5, status = $6, payment_status = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING *`

	err := s.db.GetContext(ctx, order, query,
		order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		order.ShippingAddress, order.TotalAmount, order.Status,
		order.PaymentStatus, order.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	return err
}

// DeleteOrder deletes an order and returns the deleted row
func (s *Store) DeleteOrder(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := s.db.GetContext(ctx, &order, "DELETE FROM orders WHERE id = $1 RETURNING *", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrderItems retrieves all order items
func (s *Store) GetOrderItems(ctx context.Context) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := s.db.SelectContext(ctx, &items, "SELECT * FROM order_items ORDER BY id ASC")
	return items, err
}

// GetOrderItemByID retrieves an order item by ID
func (s *Store) GetOrderItemByID(ctx context.Context, id int64) (*models.OrderItem, error) {
	var item models.OrderItem
	err := s.db.GetContext(ctx, &item, "SELECT * FROM order_items WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetOrderItemsByOrderID retrieves all items for an order
func (s *Store) GetOrderItemsByOrderID(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := s.db.SelectContext(ctx, &items,
		"SELECT * FROM order_items WHERE order_id = $1 ORDER BY id ASC", orderID)
	return items, err
}

// CreateOrderItem creates a new order item outside any transaction
func (s *Store) CreateOrderItem(ctx context.Context, item *models.OrderItem) error {
	return createOrderItem(ctx, s.db, item)
}

// CreateOrderItemTx creates a new order item inside an open transaction
func (s *Store) CreateOrderItemTx(ctx context.Context, tx *sqlx.Tx, item *models.OrderItem) error {
	return createOrderItem(ctx, tx, item)
}

func createOrderItem(ctx context.Context, q sqlx.QueryerContext, item *models.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING *`

	return sqlx.GetContext(ctx, q, item, query,
		item.OrderID, item.ProductID, item.Quantity, item.Price)
}

// UpdateOrderItem updates an order item
func (s *Store) UpdateOrderItem(ctx context.Context, item *models.OrderItem) error {
	query := `
		UPDATE order_items SET
		order_id = $1, product_id = $2, quantity = $3, price = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING *`

	err := s.db.GetContext(ctx, item, query,
		item.OrderID, item.ProductID, item.Quantity, item.Price, item.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	return err
}

// DeleteOrderItem deletes an order item and returns the deleted row
func (s *Store) DeleteOrderItem(ctx context.Context, id int64) (*models.OrderItem, error) {
	var item models.OrderItem
	err := s.db.GetContext(ctx, &item, "DELETE FROM order_items WHERE id = $1 RETURNING *", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeductStockTx deducts stock for a product inside an open transaction. The
// row is locked FOR UPDATE so concurrent checkouts cannot oversell.
func (s *Store) DeductStockTx(ctx context.Context, tx *sqlx.Tx, productID int64, quantity int) error {
	var available int
	err := tx.GetContext(ctx, &available,
		"SELECT stock_quantity FROM shop_products WHERE id = $1 FOR UPDATE", productID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	if err != nil {
		return err
	}

	if available < quantity {
		return models.ErrInsufficientStock
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE shop_products SET stock_quantity = stock_quantity - $1, updated_at = NOW() WHERE id = $2",
		quantity, productID)
	return err
}
