package api

import (
	"errors"
	"net/http"

	"boundless-api/internal/models"
	"boundless-api/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listBookings(c *gin.Context) {
	bookings, err := h.store.GetBookings(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) getBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	booking, err := h.store.GetBookingByID(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if err != nil {
		h.serverError(c, err, "Failed to fetch booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *Handler) unavailableDates(c *gin.Context) {
	dates, err := h.availability.UnavailableDates(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch unavailable dates")
		return
	}
	c.JSON(http.StatusOK, gin.H{"unavailable_dates": dates})
}

// requestBooking is the public booking endpoint. Conflicting or too-early
// dates are rejected; the winning request is stored as pending.
func (h *Handler) requestBooking(c *gin.Context) {
	var req service.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := models.ParseDate(req.BookingDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking_date, expected YYYY-MM-DD"})
		return
	}

	booking, err := h.availability.RequestBooking(c.Request.Context(), &req)
	switch {
	case errors.Is(err, models.ErrDateUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "Selected date is not available"})
		return
	case errors.Is(err, models.ErrDateTooSoon):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Booking date must be at least one day ahead"})
		return
	case err != nil:
		h.serverError(c, err, "Failed to create booking")
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// updateBooking is the admin mutation path; it does not re-run the
// availability check, so an admin can confirm or move bookings freely.
func (h *Handler) updateBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	booking.ID = id

	if err := h.store.UpdateBooking(c.Request.Context(), &booking); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		h.serverError(c, err, "Failed to update booking")
		return
	}

	h.availability.InvalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, booking)
}

func (h *Handler) deleteBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	booking, err := h.store.DeleteBooking(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if err != nil {
		h.serverError(c, err, "Failed to delete booking")
		return
	}

	h.availability.InvalidateCache(c.Request.Context())
	c.JSON(http.StatusOK, booking)
}
