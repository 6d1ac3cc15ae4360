package api

import (
	"errors"
	"net/http"

	"boundless-api/internal/models"
	"boundless-api/internal/service"

	"github.com/gin-gonic/gin"
)

// placeOrder is the public checkout endpoint. The idempotency key may arrive
// either in the body or as an Idempotency-Key header; the header wins.
func (h *Handler) placeOrder(c *gin.Context) {
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if key := c.GetHeader("Idempotency-Key"); key != "" {
		req.IdempotencyKey = key
	}

	resp, err := h.checkout.PlaceOrder(c.Request.Context(), &req)
	switch {
	case errors.Is(err, models.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart references an unknown product"})
		return
	case errors.Is(err, models.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock"})
		return
	case err != nil:
		h.serverError(c, err, "Failed to place order")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.store.GetOrders(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) getOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	order, err := h.store.GetOrderByID(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		h.serverError(c, err, "Failed to fetch order")
		return
	}

	items, err := h.store.GetOrderItemsByOrderID(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err, "Failed to fetch order items")
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order, "items": items})
}

// createOrder is the admin path: a bare order row with no items and no stock
// movement. Customer checkouts go through placeOrder.
func (h *Handler) createOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = models.PaymentStatusPending
	}

	if err := h.store.CreateOrder(c.Request.Context(), &order); err != nil {
		h.serverError(c, err, "Failed to create order")
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) updateOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order.ID = id

	if err := h.store.UpdateOrder(c.Request.Context(), &order); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		h.serverError(c, err, "Failed to update order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) deleteOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	order, err := h.store.DeleteOrder(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		h.serverError(c, err, "Failed to delete order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) listOrderItems(c *gin.Context) {
	items, err := h.store.GetOrderItems(c.Request.Context())
	if err != nil {
		h.serverError(c, err, "Failed to fetch order items")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) getOrderItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	item, err := h.store.GetOrderItemByID(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
		return
	}
	if err != nil {
		h.serverError(c, err, "Failed to fetch order item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) createOrderItem(c *gin.Context) {
	var item models.OrderItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.CreateOrderItem(c.Request.Context(), &item); err != nil {
		h.serverError(c, err, "Failed to create order item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) updateOrderItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var item models.OrderItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.ID = id

	if err := h.store.UpdateOrderItem(c.Request.Context(), &item); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
			return
		}
		h.serverError(c, err, "Failed to update order item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) deleteOrderItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	item, err := h.store.DeleteOrderItem(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order item not found"})
		return
	}
	if err != nil {
		h.serverError(c, err, "Failed to delete order item")
		return
	}
	c.JSON(http.StatusOK, item)
}
