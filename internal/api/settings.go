package api

import (
	"errors"
	"net/http"

	"boundless-api/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listSettings(c *gin.Context) {
	settings, err := h.store.GetSettings(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *Handler) getSetting(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	setting, err := h.store.GetSettingByID(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Setting not found"})
		return
	}
	if err != nil {
		h.serverError(c, err, "Failed to fetch setting")
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (h *Handler) createSetting(c *gin.Context) {
	var setting models.Setting
	if err := c.ShouldBindJSON(&setting); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.CreateSetting(c.Request.Context(), &setting); err != nil {
		h.serverError(c, err, "Failed to create setting")
		return
	}
	c.JSON(http.StatusCreated, setting)
}

func (h *Handler) updateSetting(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var setting models.Setting
	if err := c.ShouldBindJSON(&setting); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	setting.ID = id

	if err := h.store.UpdateSetting(c.Request.Context(), &setting); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Setting not found"})
			return
		}
		h.serverError(c, err, "Failed to update setting")
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (h *Handler) deleteSetting(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	setting, err := h.store.DeleteSetting(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Setting not found"})
		return
	}
	if err != nil {
		h.serverError(c, err, "Failed to delete setting")
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (h *Handler) listAnalytics(c *gin.Context) {
	records, err := h.store.GetAnalytics(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch analytics")
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) getAnalyticsRecord(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	record, err := h.store.GetAnalyticsRecordByID(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analytics record not found"})
		return
	}
	if err != nil {
		h.serverError(c, err, "Failed to fetch analytics record")
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) createAnalyticsRecord(c *gin.Context) {
	var record models.AnalyticsRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.CreateAnalyticsRecord(c.Request.Context(), &record); err != nil {
		h.serverError(c, err, "Failed to create analytics record")
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *Handler) updateAnalyticsRecord(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var record models.AnalyticsRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	record.ID = id

	if err := h.store.UpdateAnalyticsRecord(c.Request.Context(), &record); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Analytics record not found"})
			return
		}
		h.serverError(c, err, "Failed to update analytics record")
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) deleteAnalyticsRecord(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	record, err := h.store.DeleteAnalyticsRecord(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analytics record not found"})
		return
	}
	if err != nil {
		h.serverError(c, err, "Failed to delete analytics record")
		return
	}
	c.JSON(http.StatusOK, record)
}
