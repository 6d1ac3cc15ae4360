package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"boundless-api/internal/broker"
	"boundless-api/internal/models"
	"boundless-api/internal/redisclient"
	"boundless-api/internal/store"
	"boundless-api/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const unavailableCacheTTL = 5 * time.Minute

// AvailabilityService decides which calendar days are open for booking and
// accepts booking requests. The unavailable set is always derived from the
// current booking list plus the studio's blocked days, never kept as ambient
// in-process state; redis only caches the derivation.
type AvailabilityService struct {
	store          *store.Store
	redis          *redisclient.Client
	eventPublisher *broker.EventPublisher
	blockedDays    []int
	bookingTime    string
	logger         *zap.Logger
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(
	store *store.Store,
	redis *redisclient.Client,
	eventPublisher *broker.EventPublisher,
	blockedDays []int,
	bookingTime string,
) *AvailabilityService {
	return &AvailabilityService{
		store:          store,
		redis:          redis,
		eventPublisher: eventPublisher,
		blockedDays:    blockedDays,
		bookingTime:    bookingTime,
		logger:         util.GetLogger(),
	}
}

// BookingRequest represents a public booking submission
type BookingRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone"`
	ServiceType string   `json:"service_type" binding:"required"`
	BookingDate string   `json:"booking_date" binding:"required"`
	Location    string   `json:"location"`
	Notes       string   `json:"notes"`
	TotalAmount *float64 `json:"total_amount"`
}

// UnavailableDates returns the sorted set of dates closed for booking,
// serving from the redis cache when warm and recomputing from the store
// otherwise.
func (s *AvailabilityService) UnavailableDates(ctx context.Context) ([]string, error) {
	ctx, span := util.StartSpan(ctx, "AvailabilityService.UnavailableDates")
	defer span.End()

	if cached, ok, err := s.redis.GetUnavailableDates(ctx); err != nil {
		s.logger.Warn("Unavailable-dates cache read failed", zap.Error(err))
	} else if ok {
		sort.Strings(cached)
		return cached, nil
	}

	dates, err := s.computeUnavailable(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.redis.SetUnavailableDates(ctx, dates, unavailableCacheTTL); err != nil {
		s.logger.Warn("Unavailable-dates cache write failed", zap.Error(err))
	}

	return dates, nil
}

// RequestBooking runs the conflict check and, on success, creates a pending
// booking. The store insert re-checks the date under a uniqueness guarantee,
// so two concurrent requests for the same day cannot both win.
func (s *AvailabilityService) RequestBooking(ctx context.Context, req *BookingRequest) (*models.Booking, error) {
	ctx, span := util.StartSpan(ctx, "AvailabilityService.RequestBooking")
	defer span.End()

	date, err := models.ParseDate(req.BookingDate)
	if err != nil {
		return nil, err
	}

	unavailable, err := s.computeUnavailable(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	if err := ValidateBookingDate(date, unavailable, time.Now()); err != nil {
		util.BookingsRejectedTotal.WithLabelValues(rejectReason(err)).Inc()
		return nil, err
	}

	booking := &models.Booking{
		Name:        req.Name,
		Email:       req.Email,
		ServiceType: req.ServiceType,
		BookingDate: date,
		BookingTime: s.bookingTime,
		Status:      models.BookingStatusPending,
		TotalAmount: req.TotalAmount,
	}
	if req.Phone != "" {
		booking.Phone = &req.Phone
	}
	if req.Location != "" {
		booking.Location = &req.Location
	}
	if req.Notes != "" {
		booking.Notes = &req.Notes
	}

	if err := s.store.CreateBookingChecked(ctx, booking); err != nil {
		if errors.Is(err, models.ErrDateUnavailable) {
			util.BookingsRejectedTotal.WithLabelValues("conflict").Inc()
		}
		return nil, err
	}

	// Block the day for subsequent checks right away rather than waiting for
	// the cache to expire. A cold cache is left cold; the next read rebuilds
	// the full set from the store.
	if _, err := s.redis.AddUnavailableDate(ctx, date.String()); err != nil {
		s.logger.Warn("Failed to update unavailable-dates cache", zap.Error(err))
	}

	util.BookingsAcceptedTotal.Inc()
	s.logger.Info("Booking accepted",
		zap.Int64("booking_id", booking.ID),
		zap.String("booking_date", date.String()))

	s.publishBookingRequested(ctx, booking)

	return booking, nil
}

// InvalidateCache drops the cached unavailable-date set. Admin mutations call
// this after changing bookings out-of-band.
func (s *AvailabilityService) InvalidateCache(ctx context.Context) {
	if err := s.redis.InvalidateUnavailableDates(ctx); err != nil {
		s.logger.Warn("Failed to invalidate unavailable-dates cache", zap.Error(err))
	}
}

func (s *AvailabilityService) computeUnavailable(ctx context.Context, now time.Time) ([]string, error) {
	booked, err := s.store.GetBookedDates(ctx)
	if err != nil {
		return nil, err
	}
	return UnavailableDates(booked, s.blockedDays, now), nil
}

func (s *AvailabilityService) publishBookingRequested(ctx context.Context, booking *models.Booking) {
	event := &models.BookingRequestedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeBookingRequested,
			Timestamp: time.Now(),
		},
		BookingID:   booking.ID,
		BookingDate: booking.BookingDate.String(),
		ServiceType: booking.ServiceType,
	}

	if err := s.eventPublisher.PublishBookingRequested(ctx, event); err != nil {
		s.logger.Error("Failed to publish BookingRequested event", zap.Error(err))
	}
}

// UnavailableDates derives the closed-date set from a booking-date list and
// the blocked day numbers of the month containing now. Pure function; the
// result is sorted and duplicate-free.
func UnavailableDates(booked []models.Date, blockedDays []int, now time.Time) []string {
	seen := make(map[string]struct{}, len(booked)+len(blockedDays))

	for _, d := range booked {
		seen[d.String()] = struct{}{}
	}

	year, month, _ := now.Date()
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for _, day := range blockedDays {
		if day < 1 || day > daysInMonth {
			continue
		}
		d := models.NewDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		seen[d.String()] = struct{}{}
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// ValidateBookingDate rejects dates in the unavailable set and dates earlier
// than tomorrow. Comparison is by calendar day only.
func ValidateBookingDate(date models.Date, unavailable []string, now time.Time) error {
	tomorrow := models.NewDate(now.AddDate(0, 0, 1))
	if date.Before(tomorrow.Time) {
		return models.ErrDateTooSoon
	}

	target := date.String()
	for _, d := range unavailable {
		if d == target {
			return models.ErrDateUnavailable
		}
	}
	return nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, models.ErrDateUnavailable):
		return "unavailable"
	case errors.Is(err, models.ErrDateTooSoon):
		return "too_soon"
	default:
		return "other"
	}
}
