package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"boundless-api/internal/broker"
	"boundless-api/internal/service"
	"boundless-api/internal/store"
	"boundless-api/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handler contains HTTP handlers
type Handler struct {
	store          *store.Store
	checkout       *service.CheckoutService
	availability   *service.AvailabilityService
	auth           *service.AuthService
	eventPublisher *broker.EventPublisher
	requestTimeout time.Duration
	logger         *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(
	store *store.Store,
	checkout *service.CheckoutService,
	availability *service.AvailabilityService,
	auth *service.AuthService,
	eventPublisher *broker.EventPublisher,
	requestTimeout time.Duration,
) *Handler {
	return &Handler{
		store:          store,
		checkout:       checkout,
		availability:   availability,
		auth:           auth,
		eventPublisher: eventPublisher,
		requestTimeout: requestTimeout,
		logger:         util.GetLogger(),
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(timeoutMiddleware(h.requestTimeout))
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/users", h.listUsers)
		api.GET("/users/:id", h.getUser)
		api.POST("/users", h.createUser)
		api.PUT("/users/:id", h.updateUser)
		api.DELETE("/users/:id", h.deleteUser)
		api.POST("/users/login", h.login)

		api.GET("/inquiries", h.listInquiries)
		api.GET("/inquiries/:id", h.getInquiry)
		api.POST("/inquiries", h.createInquiry)
		api.PUT("/inquiries/:id", h.updateInquiry)
		api.DELETE("/inquiries/:id", h.deleteInquiry)

		api.GET("/bookings", h.listBookings)
		api.GET("/bookings/unavailable-dates", h.unavailableDates)
		api.GET("/bookings/:id", h.getBooking)
		api.POST("/bookings", h.requestBooking)
		api.PUT("/bookings/:id", h.updateBooking)
		api.DELETE("/bookings/:id", h.deleteBooking)

		api.GET("/portfolio", h.listPortfolioItems)
		api.GET("/portfolio/:id", h.getPortfolioItem)
		api.POST("/portfolio", h.createPortfolioItem)
		api.PUT("/portfolio/:id", h.updatePortfolioItem)
		api.DELETE("/portfolio/:id", h.deletePortfolioItem)

		api.GET("/gallery", h.listGalleryImages)
		api.GET("/gallery/:id", h.getGalleryImage)
		api.POST("/gallery", h.createGalleryImage)
		api.PUT("/gallery/:id", h.updateGalleryImage)
		api.DELETE("/gallery/:id", h.deleteGalleryImage)

		api.GET("/testimonials", h.listTestimonials)
		api.GET("/testimonials/:id", h.getTestimonial)
		api.POST("/testimonials", h.createTestimonial)
		api.PUT("/testimonials/:id", h.updateTestimonial)
		api.DELETE("/testimonials/:id", h.deleteTestimonial)

		api.GET("/services", h.listServices)
		api.GET("/services/:id", h.getService)
		api.POST("/services", h.createService)
		api.PUT("/services/:id", h.updateService)
		api.DELETE("/services/:id", h.deleteService)

		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)
		api.POST("/products", h.createProduct)
		api.PUT("/products/:id", h.updateProduct)
		api.DELETE("/products/:id", h.deleteProduct)

		api.GET("/orders", h.listOrders)
		api.GET("/orders/:id", h.getOrder)
		api.POST("/orders", h.createOrder)
		api.PUT("/orders/:id", h.updateOrder)
		api.DELETE("/orders/:id", h.deleteOrder)

		api.GET("/order-items", h.listOrderItems)
		api.GET("/order-items/:id", h.getOrderItem)
		api.POST("/order-items", h.createOrderItem)
		api.PUT("/order-items/:id", h.updateOrderItem)
		api.DELETE("/order-items/:id", h.deleteOrderItem)

		api.POST("/checkout", h.placeOrder)

		api.GET("/settings", h.listSettings)
		api.GET("/settings/:id", h.getSetting)
		api.POST("/settings", h.createSetting)
		api.PUT("/settings/:id", h.updateSetting)
		api.DELETE("/settings/:id", h.deleteSetting)

		api.GET("/analytics", h.listAnalytics)
		api.GET("/analytics/:id", h.getAnalyticsRecord)
		api.POST("/analytics", h.createAnalyticsRecord)
		api.PUT("/analytics/:id", h.updateAnalyticsRecord)
		api.DELETE("/analytics/:id", h.deleteAnalyticsRecord)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// paramID parses the :id path parameter, writing a 400 response itself when
// the value is not numeric.
func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// serverError logs the cause and answers with the generic message so store
// internals never leak to clients.
func (h *Handler) serverError(c *gin.Context, err error, msg string) {
	h.logger.Error(msg, zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}

// timeoutMiddleware bounds every request context
func timeoutMiddleware(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
