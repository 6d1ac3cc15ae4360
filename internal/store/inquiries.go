package store

import (
	"context"
	"database/sql"
	"errors"

	"boundless-api/internal/models"
)

// GetInquiries retrieves all inquiries
func (s *Store) GetInquiries(ctx context.Context) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := s.db.SelectContext(ctx, &inquiries, "SELECT * FROM inquiries ORDER BY id ASC")
	return inquiries, err
}

// GetInquiryByID retrieves an inquiry by ID
func (s *Store) GetInquiryByID(ctx context.Context, id int64) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := s.db.GetContext(ctx, &inquiry, "SELECT * FROM inquiries WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// CreateInquiry creates a new inquiry
func (s *Store) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	query := `
		INSERT INTO inquiries (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING *`

	return s.db.GetContext(ctx, inquiry, query,
		inquiry.Name, inquiry.Email, inquiry.Subject, inquiry.Message)
}

// UpdateInquiry updates an inquiry
func (s *Store) UpdateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	query := `
		UPDATE inquiries SET name = $1, email = $2, subject = $3, message = $4
		WHERE id = $5
		RETURNING *`

	err := s.db.GetContext(ctx, inquiry, query,
		inquiry.Name, inquiry.Email, inquiry.Subject, inquiry.Message, inquiry.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	return err
}

// DeleteInquiry deletes an inquiry and returns the deleted row
func (s *Store) DeleteInquiry(ctx context.Context, id int64) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := s.db.GetContext(ctx, &inquiry, "DELETE FROM inquiries WHERE id = $1 RETURNING *", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}
