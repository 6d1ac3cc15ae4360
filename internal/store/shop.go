package store

import (
	"context"
	"database/sql"
	"errors"

	"boundless-api/internal/models"

	"github.com/jmoiron/sqlx"
)

// GetProducts retrieves all shop products
func (s *Store) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.SelectContext(ctx, &products, "SELECT * FROM shop_products ORDER BY id ASC")
	return products, err
}

// GetProductByID retrieves a shop product by ID
func (s *Store) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := s.db.GetContext(ctx, &product, "SELECT * FROM shop_products WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductsByIDs retrieves multiple shop products by IDs
func (s *Store) GetProductsByIDs(ctx context.Context, ids []int64) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}

	query, args, err := sqlx.In("SELECT * FROM shop_products WHERE id IN (?)", ids)
	if err != nil {
		return nil, err
	}
	query = s.db.Rebind(query)

	var products []models.Product
	err = s.db.SelectContext(ctx, &products, query, args...)
	return products, err
}

// CreateProduct creates a new shop product
func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO shop_products
		(name, description, price, image_url, thumbnail_url, category, stock_quantity, featured, active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING *`

	return s.db.GetContext(ctx, product, query,
		product.Name, product.Description, product.Price, product.ImageURL,
		product.ThumbnailURL, product.Category, product.StockQuantity,
		product.Featured, product.Active, product.SortOrder)
}

// UpdateProduct updates a shop product
func (s *Store) UpdateProduct(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE shop_products SET
		name = $1, description = $2, price = $3, image_url = $4, thumbnail_url = $5,
		category = $6, stock_quantity = $7, featured = $8, active = $9, sort_order = $10,
		updated_at = NOW()
		WHERE id = $11
		RETURNING *`

	err := s.db.GetContext(ctx, product, query,
		product.Name, product.Description, product.Price, product.ImageURL,
		product.ThumbnailURL, product.Category, product.StockQuantity,
		product.Featured, product.Active, product.SortOrder, product.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	return err
}

// DeleteProduct deletes a shop product and returns the deleted row
func (s *Store) DeleteProduct(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := s.db.GetContext(ctx, &product, "DELETE FROM shop_products WHERE id = $1 RETURNING *", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetServices retrieves all service packages
func (s *Store) GetServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := s.db.SelectContext(ctx, &services, "SELECT * FROM services ORDER BY id ASC")
	return services, err
}

// GetServiceByID retrieves a service package by ID
func (s *Store) GetServiceByID(ctx context.Context, id int64) (*models.Service, error) {
	var service models.Service
	err := s.db.GetContext(ctx, &service, "SELECT * FROM services WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// CreateService creates a new service package
func (s *Store) CreateService(ctx context.Context, service *models.Service) error {
	query := `
		INSERT INTO services
		(name, description, price, duration_hours, features, active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING *`

	return s.db.GetContext(ctx, service, query,
		service.Name, service.Description, service.Price, service.DurationHours,
		service.Features, service.Active, service.SortOrder)
}

// UpdateService updates a service package
func (s *Store) UpdateService(ctx context.Context, service *models.Service) error {
	query := `
		UPDATE services SET
		name = $1, description = $2, price = $3, duration_hours = $4, features = $5,
		active = $6, sort_order = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING *`

	err := s.db.GetContext(ctx, service, query,
		service.Name, service.Description, service.Price, service.DurationHours,
		service.Features, service.Active, service.SortOrder, service.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	return err
}

// DeleteService deletes a service package and returns the deleted row
func (s *Store) DeleteService(ctx context.Context, id int64) (*models.Service, error) {
	var service models.Service
	err := s.db.GetContext(ctx, &service, "DELETE FROM services WHERE id = $1 RETURNING *", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}
