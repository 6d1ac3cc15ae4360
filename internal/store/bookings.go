package store

import (
	"context"
	"database/sql"
	"errors"

	"boundless-api/internal/models"
)

// GetBookings retrieves all bookings
func (s *Store) GetBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.SelectContext(ctx, &bookings, "SELECT * FROM bookings ORDER BY id ASC")
	return bookings, err
}

// GetBookingByID retrieves a booking by ID
func (s *Store) GetBookingByID(ctx context.Context, id int64) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.GetContext(ctx, &booking, "SELECT * FROM bookings WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetBookedDates retrieves the dates of all bookings that still block their
// calendar day (pending and confirmed; cancelled ones free the day).
func (s *Store) GetBookedDates(ctx context.Context) ([]models.Date, error) {
	var dates []models.Date
	err := s.db.SelectContext(ctx, &dates, `
		SELECT DISTINCT booking_date FROM bookings
		WHERE status IN ($1, $2)
		ORDER BY booking_date`,
		models.BookingStatusPending, models.BookingStatusConfirmed)
	return dates, err
}

// CreateBookingChecked inserts a booking only if no pending or confirmed
// booking already occupies the same date. It relies on the partial unique
// index bookings_active_date_key, so two concurrent requests for the same day
// cannot both succeed; the loser gets models.ErrDateUnavailable.
func (s *Store) CreateBookingChecked(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings
		(name, email, phone, service_type, booking_date, booking_time, location, notes, status, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (booking_date) WHERE status IN ('pending', 'confirmed') DO NOTHING
		RETURNING *`

	err := s.db.GetContext(ctx, booking, query,
		booking.Name, booking.Email, booking.Phone, booking.ServiceType,
		booking.BookingDate, booking.BookingTime, booking.Location,
		booking.Notes, booking.Status, booking.TotalAmount)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrDateUnavailable
	}
	return err
}

// UpdateBooking updates a booking
func (s *Store) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		UPDATE bookings SET
		name = $1, email = $2, phone = $3, service_type = $4, booking_date = $5,
		booking_time = $6, location = $7, notes = $8, status = $9, total_amount = $10,
		updated_at = NOW()
		WHERE id = $11
		RETURNING *`

	err := s.db.GetContext(ctx, booking, query,
		booking.Name, booking.Email, booking.Phone, booking.ServiceType,
		booking.BookingDate, booking.BookingTime, booking.Location,
		booking.Notes, booking.Status, booking.TotalAmount, booking.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	return err
}

// DeleteBooking deletes a booking and returns the deleted row
func (s *Store) DeleteBooking(ctx context.Context, id int64) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.GetContext(ctx, &booking, "DELETE FROM bookings WHERE id = $1 RETURNING *", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
