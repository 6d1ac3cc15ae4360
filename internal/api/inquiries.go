package api

import (
	"errors"
	"net/http"
	"time"

	"boundless-api/internal/models"
	"boundless-api/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) listInquiries(c *gin.Context) {
	inquiries, err := h.store.GetInquiries(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch inquiries")
		return
	}
	c.JSON(http.StatusOK, inquiries)
}

func (h *Handler) getInquiry(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	inquiry, err := h.store.GetInquiryByID(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}
	if err != nil {
		h.serverError(c, err, "Failed to fetch inquiry")
		return
	}
	c.JSON(http.StatusOK, inquiry)
}

func (h *Handler) createInquiry(c *gin.Context) {
	var inquiry models.Inquiry
	if err := c.ShouldBindJSON(&inquiry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.CreateInquiry(c.Request.Context(), &inquiry); err != nil {
		h.serverError(c, err, "Failed to create inquiry")
		return
	}

	util.InquiriesReceivedTotal.Inc()

	event := &models.InquiryReceivedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeInquiryReceived,
			Timestamp: time.Now(),
		},
		InquiryID: inquiry.ID,
		Email:     inquiry.Email,
	}
	if err := h.eventPublisher.PublishInquiryReceived(c.Request.Context(), event); err != nil {
		h.logger.Error("Failed to publish InquiryReceived event", zap.Error(err))
	}

	c.JSON(http.StatusCreated, inquiry)
}

func (h *Handler) updateInquiry(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var inquiry models.Inquiry
	if err := c.ShouldBindJSON(&inquiry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	inquiry.ID = id

	if err := h.store.UpdateInquiry(c.Request.Context(), &inquiry); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
			return
		}
		h.serverError(c, err, "Failed to update inquiry")
		return
	}
	c.JSON(http.StatusOK, inquiry)
}

func (h *Handler) deleteInquiry(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	inquiry, err := h.store.DeleteInquiry(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}
	if err != nil {
		h.serverError(c, err, "Failed to delete inquiry")
		return
	}
	c.JSON(http.StatusOK, inquiry)
}
