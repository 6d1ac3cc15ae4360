package service

import (
	"context"
	"testing"

	"boundless-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderTotal(t *testing.T) {
	lines := []resolvedLine{
		{productID: 1, quantity: 2, unitPrice: 20.00},
		{productID: 2, quantity: 1, unitPrice: 15.00},
	}

	assert.Equal(t, 55.00, orderTotal(lines))
}

func TestOrderTotalRoundsToCents(t *testing.T) {
	lines := []resolvedLine{
		{productID: 1, quantity: 3, unitPrice: 9.999},
	}

	assert.Equal(t, 30.00, orderTotal(lines))
}

func TestOrderTotalEmpty(t *testing.T) {
	assert.Equal(t, 0.00, orderTotal(nil))
}

func TestResolveProductRef(t *testing.T) {
	tests := []struct {
		ref    string
		wantID int64
		static bool
	}{
		{"5", 5, false},
		{"12", 12, false},
		{"p1", 1, true},
		{"static-print", 1, true},
		{"0", 1, true},
		{"-3", 1, true},
		{"", 1, true},
	}

	for _, tt := range tests {
		id, static := resolveProductRef(tt.ref, 1)
		assert.Equal(t, tt.wantID, id, "ref %q", tt.ref)
		assert.Equal(t, tt.static, static, "ref %q", tt.ref)
	}
}

func TestNormalizePaymentStatus(t *testing.T) {
	assert.Equal(t, models.PaymentStatusPaid, normalizePaymentStatus("paid"))
	assert.Equal(t, models.PaymentStatusPending, normalizePaymentStatus("pending"))
	assert.Equal(t, models.PaymentStatusPending, normalizePaymentStatus(""))
	assert.Equal(t, models.PaymentStatusPending, normalizePaymentStatus("refunded"))
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc := NewCheckoutService(nil, nil, nil, 1)

	_, err := svc.PlaceOrder(context.Background(), &CheckoutRequest{
		CustomerName:  "Test Customer",
		CustomerEmail: "customer@example.com",
	})

	assert.ErrorIs(t, err, models.ErrEmptyCart)
}

func TestPlaceOrderRevalidatesPrices(t *testing.T) {
	// This would require mocking the store
	// Placeholder for demonstration
	t.Skip("Requires mocked store")
}
