package api

import (
	"errors"
	"net/http"

	"boundless-api/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listPortfolioItems(c *gin.Context) {
	items, err := h.store.GetPortfolioItems(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch portfolio items")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) getPortfolioItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	item, err := h.store.GetPortfolioItemByID(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio item not found"})
		return
	}
	if err != nil {
		h.serverError(c, err, "Failed to fetch portfolio item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) createPortfolioItem(c *gin.Context) {
	var item models.PortfolioItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.CreatePortfolioItem(c.Request.Context(), &item); err != nil {
		h.serverError(c, err, "Failed to create portfolio item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) updatePortfolioItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var item models.PortfolioItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.ID = id

	if err := h.store.UpdatePortfolioItem(c.Request.Context(), &item); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio item not found"})
			return
		}
		h.serverError(c, err, "Failed to update portfolio item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) deletePortfolioItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	item, err := h.store.DeletePortfolioItem(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio item not found"})
		return
	}
	if err != nil {
		h.serverError(c, err, "Failed to delete portfolio item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) listGalleryImages(c *gin.Context) {
	images, err := h.store.GetGalleryImages(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch gallery images")
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *Handler) getGalleryImage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	image, err := h.store.GetGalleryImageByID(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery image not found"})
		return
	}
	if err != nil {
		h.serverError(c, err, "Failed to fetch gallery image")
		return
	}
	c.JSON(http.StatusOK, image)
}

func (h *Handler) createGalleryImage(c *gin.Context) {
	var image models.GalleryImage
	if err := c.ShouldBindJSON(&image); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.CreateGalleryImage(c.Request.Context(), &image); err != nil {
		h.serverError(c, err, "Failed to create gallery image")
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (h *Handler) updateGalleryImage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var image models.GalleryImage
	if err := c.ShouldBindJSON(&image); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	image.ID = id

	if err := h.store.UpdateGalleryImage(c.Request.Context(), &image); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Gallery image not found"})
			return
		}
		h.serverError(c, err, "Failed to update gallery image")
		return
	}
	c.JSON(http.StatusOK, image)
}

func (h *Handler) deleteGalleryImage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	image, err := h.store.DeleteGalleryImage(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery image not found"})
		return
	}
	if err != nil {
		h.serverError(c, err, "Failed to delete gallery image")
		return
	}
	c.JSON(http.StatusOK, image)
}

func (h *Handler) listTestimonials(c *gin.Context) {
	testimonials, err := h.store.GetTestimonials(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch testimonials")
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

func (h *Handler) getTestimonial(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	testimonial, err := h.store.GetTestimonialByID(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}
	if err != nil {
		h.serverError(c, err, "Failed to fetch testimonial")
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

func (h *Handler) createTestimonial(c *gin.Context) {
	var testimonial models.Testimonial
	if err := c.ShouldBindJSON(&testimonial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.CreateTestimonial(c.Request.Context(), &testimonial); err != nil {
		h.serverError(c, err, "Failed to create testimonial")
		return
	}
	c.JSON(http.StatusCreated, testimonial)
}

func (h *Handler) updateTestimonial(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var testimonial models.Testimonial
	if err := c.ShouldBindJSON(&testimonial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	testimonial.ID = id

	if err := h.store.UpdateTestimonial(c.Request.Context(), &testimonial); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
			return
		}
		h.serverError(c, err, "Failed to update testimonial")
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

func (h *Handler) deleteTestimonial(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	testimonial, err := h.store.DeleteTestimonial(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}
	if err != nil {
		h.serverError(c, err, "Failed to delete testimonial")
		return
	}
	c.JSON(http.StatusOK, testimonial)
}
