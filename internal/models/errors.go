package models

import "errors"

var (
	// ErrNotFound is returned by store lookups for a missing id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials covers both unknown username and wrong password
	// so the login response cannot be used for username enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmptyCart rejects a checkout before any write happens.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrDateUnavailable means the requested day is already taken or blocked.
	ErrDateUnavailable = errors.New("date unavailable")

	// ErrDateTooSoon rejects same-day and past booking dates.
	ErrDateTooSoon = errors.New("date must be at least tomorrow")

	// ErrInsufficientStock aborts a checkout when a catalog line exceeds the
	// remaining stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)
