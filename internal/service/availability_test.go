package service

import (
	"testing"
	"time"

	"boundless-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func date(s string) models.Date {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestUnavailableDates(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	booked := []models.Date{date("2024-06-13"), date("2024-06-07")}
	blocked := []int{5, 9}

	dates := UnavailableDates(booked, blocked, now)

	assert.Equal(t, []string{
		"2024-06-05",
		"2024-06-07",
		"2024-06-09",
		"2024-06-13",
	}, dates)
}

func TestUnavailableDatesDeduplicates(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	// Day 5 is both booked and blocked; it must appear once.
	booked := []models.Date{date("2024-06-05")}
	dates := UnavailableDates(booked, []int{5}, now)

	assert.Equal(t, []string{"2024-06-05"}, dates)
}

func TestUnavailableDatesClampsToMonth(t *testing.T) {
	// February 2023 has 28 days; day 30 must be skipped, not wrap.
	now := time.Date(2023, time.February, 10, 0, 0, 0, 0, time.UTC)

	dates := UnavailableDates(nil, []int{14, 30}, now)

	assert.Equal(t, []string{"2023-02-14"}, dates)
}

func TestUnavailableDatesEmpty(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, UnavailableDates(nil, nil, now))
}

func TestValidateBookingDate(t *testing.T) {
	now := time.Date(2024, time.June, 1, 15, 0, 0, 0, time.UTC)
	unavailable := []string{"2024-06-07", "2024-06-13"}

	assert.NoError(t, ValidateBookingDate(date("2024-06-08"), unavailable, now))

	err := ValidateBookingDate(date("2024-06-07"), unavailable, now)
	assert.ErrorIs(t, err, models.ErrDateUnavailable)
}

func TestValidateBookingDateTooSoon(t *testing.T) {
	now := time.Date(2024, time.June, 1, 15, 0, 0, 0, time.UTC)

	// Same day and past days are rejected; tomorrow is the earliest slot.
	assert.ErrorIs(t, ValidateBookingDate(date("2024-06-01"), nil, now), models.ErrDateTooSoon)
	assert.ErrorIs(t, ValidateBookingDate(date("2024-05-20"), nil, now), models.ErrDateTooSoon)
	assert.NoError(t, ValidateBookingDate(date("2024-06-02"), nil, now))
}

func TestRejectReason(t *testing.T) {
	assert.Equal(t, "unavailable", rejectReason(models.ErrDateUnavailable))
	assert.Equal(t, "too_soon", rejectReason(models.ErrDateTooSoon))
	assert.Equal(t, "other", rejectReason(assert.AnError))
}
