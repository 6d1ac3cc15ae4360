package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"boundless-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	checkout := service.NewCheckoutService(nil, nil, nil, 1)
	h := NewHandler(nil, checkout, nil, nil, nil, 15*time.Second)

	router := gin.New()
	h.SetupRoutes(router)
	return router
}

func TestCheckoutEmptyCart(t *testing.T) {
	router := testRouter()

	body := `{"customer_name":"Test Customer","customer_email":"customer@example.com","items":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cart is empty")
}

func TestCheckoutRejectsMissingFields(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRejectsMissingCredentials(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(`{"username":"admin"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvalidIDParam(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/not-a-number", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid id")
}

func TestBookingRejectsMalformedDate(t *testing.T) {
	router := testRouter()

	body := `{"name":"Test","email":"test@example.com","service_type":"wedding","booking_date":"07/06/2024"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "booking_date")
}

func TestHealthCheck(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
