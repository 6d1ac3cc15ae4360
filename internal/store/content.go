package store

import (
	"context"
	"database/sql"
	"errors"

	"boundless-api/internal/models"
)

// GetPortfolioItems retrieves all portfolio items
func (s *Store) GetPortfolioItems(ctx context.Context) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := s.db.SelectContext(ctx, &items, "SELECT * FROM portfolio_items ORDER BY id ASC")
	return items, err
}

// GetPortfolioItemByID retrieves a portfolio item by ID
func (s *Store) GetPortfolioItemByID(ctx context.Context, id int64) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := s.db.GetContext(ctx, &item, "SELECT * FROM portfolio_items WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreatePortfolioItem creates a new portfolio item
func (s *Store) CreatePortfolioItem(ctx context.Context, item *models.PortfolioItem) error {
	query := `
		INSERT INTO portfolio_items
		(title, description, category, image_url, thumbnail_url, featured, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING *`

	return s.db.GetContext(ctx, item, query,
		item.Title, item.Description, item.Category, item.ImageURL,
		item.ThumbnailURL, item.Featured, item.SortOrder)
}

// UpdatePortfolioItem updates a portfolio item
func (s *Store) UpdatePortfolioItem(ctx context.Context, item *models.PortfolioItem) error {
	query := `
		UPDATE portfolio_items SET
		title = $1, description = $2, category = $3, image_url = $4,
		thumbnail_url = $5, featured = $6, sort_order = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING *`

	err := s.db.GetContext(ctx, item, query,
		item.Title, item.Description, item.Category, item.ImageURL,
		item.ThumbnailURL, item.Featured, item.SortOrder, item.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	return err
}

// DeletePortfolioItem deletes a portfolio item and returns the deleted row
func (s *Store) DeletePortfolioItem(ctx context.Context, id int64) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := s.db.GetContext(ctx, &item, "DELETE FROM portfolio_items WHERE id = $1 RETURNING *", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetGalleryImages retrieves all gallery images
func (s *Store) GetGalleryImages(ctx context.Context) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := s.db.SelectContext(ctx, &images, "SELECT * FROM gallery_images ORDER BY id ASC")
	return images, err
}

// GetGalleryImageByID retrieves a gallery image by ID
func (s *Store) GetGalleryImageByID(ctx context.Context, id int64) (*models.GalleryImage, error) {
	var image models.GalleryImage
	err := s.db.GetContext(ctx, &image, "SELECT * FROM gallery_images WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// CreateGalleryImage creates a new gallery image
func (s *Store) CreateGalleryImage(ctx context.Context, image *models.GalleryImage) error {
	query := `
		INSERT INTO gallery_images
		(title, description, image_url, thumbnail_url, category, featured, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING *`

	return s.db.GetContext(ctx, image, query,
		image.Title, image.Description, image.ImageURL, image.ThumbnailURL,
		image.Category, image.Featured, image.SortOrder)
}

// UpdateGalleryImage updates a gallery image
func (s *Store) UpdateGalleryImage(ctx context.Context, image *models.GalleryImage) error {
	query := `
		UPDATE gallery_images SET
		title = $1, description = $2, image_url = $3, thumbnail_url = $4,
		category = $5, featured = $6, sort_order = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING *`

	err := s.db.GetContext(ctx, image, query,
		image.Title, image.Description, image.ImageURL, image.ThumbnailURL,
		image.Category, image.Featured, image.SortOrder, image.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	return err
}

// DeleteGalleryImage deletes a gallery image and returns the deleted row
func (s *Store) DeleteGalleryImage(ctx context.Context, id int64) (*models.GalleryImage, error) {
	var image models.GalleryImage
	err := s.db.GetContext(ctx, &image, "DELETE FROM gallery_images WHERE id = $1 RETURNING *", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// GetTestimonials retrieves all testimonials
func (s *Store) GetTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := s.db.SelectContext(ctx, &testimonials, "SELECT * FROM testimonials ORDER BY id ASC")
	return testimonials, err
}

// GetTestimonialByID retrieves a testimonial by ID
func (s *Store) GetTestimonialByID(ctx context.Context, id int64) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := s.db.GetContext(ctx, &testimonial, "SELECT * FROM testimonials WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// CreateTestimonial creates a new testimonial
func (s *Store) CreateTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	query := `
		INSERT INTO testimonials
		(client_name, client_image, rating, testimonial_text, service_type, featured, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING *`

	return s.db.GetContext(ctx, testimonial, query,
		testimonial.ClientName, testimonial.ClientImage, testimonial.Rating,
		testimonial.TestimonialText, testimonial.ServiceType,
		testimonial.Featured, testimonial.SortOrder)
}

// UpdateTestimonial updates a testimonial
func (s *Store) UpdateTestimonial(ctx context.Context, testimonial *models.Testimonial) error {
	query := `
		UPDATE testimonials SET
		client_name = $1, client_image = $2, rating = $3, testimonial_text = $4,
		service_type = $5, featured = $6, sort_order = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING *`

	err := s.db.GetContext(ctx, testimonial, query,
		testimonial.ClientName, testimonial.ClientImage, testimonial.Rating,
		testimonial.TestimonialText, testimonial.ServiceType,
		testimonial.Featured, testimonial.SortOrder, testimonial.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	return err
}

// DeleteTestimonial deletes a testimonial and returns the deleted row
func (s *Store) DeleteTestimonial(ctx context.Context, id int64) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := s.db.GetContext(ctx, &testimonial, "DELETE FROM testimonials WHERE id = $1 RETURNING *", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}
