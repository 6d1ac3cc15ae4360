package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"boundless-api/internal/broker"
	"boundless-api/internal/models"
	"boundless-api/internal/redisclient"
	"boundless-api/internal/store"
	"boundless-api/internal/util"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const idempotencyTTL = 24 * time.Hour

// CheckoutService owns the order placement flow: one order row plus its item
// rows and stock deductions, committed or rolled back as a unit.
type CheckoutService struct {
	store           *store.Store
	redis           *redisclient.Client
	eventPublisher  *broker.EventPublisher
	staticProductID int64
	logger          *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	store *store.Store,
	redis *redisclient.Client,
	eventPublisher *broker.EventPublisher,
	staticProductID int64,
) *CheckoutService {
	return &CheckoutService{
		store:           store,
		redis:           redis,
		eventPublisher:  eventPublisher,
		staticProductID: staticProductID,
		logger:          util.GetLogger(),
	}
}

// CheckoutRequest represents a cart submission
type CheckoutRequest struct {
	CustomerName    string     `json:"customer_name" binding:"required"`
	CustomerEmail   string     `json:"customer_email" binding:"required,email"`
	CustomerPhone   string     `json:"customer_phone"`
	ShippingAddress string     `json:"shipping_address"`
	PaymentStatus   string     `json:"payment_status"`
	IdempotencyKey  string     `json:"idempotency_key,omitempty"`
	Items           []CartLine `json:"items"`
}

// CartLine is one cart entry. ProductID is a string reference: numeric values
// name catalog products, anything else is a static item resolved to the
// fallback product id.
type CartLine struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	UnitPrice float64 `json:"unit_price"`
}

// CheckoutResponse represents the result of a checkout
type CheckoutResponse struct {
	OrderID     int64   `json:"order_id"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"total_amount"`
}

// resolvedLine is a cart line after product-reference resolution and price
// revalidation.
type resolvedLine struct {
	productID int64
	quantity  int
	unitPrice float64
	static    bool
}

// PlaceOrder validates the cart, resolves and reprices its lines, and writes
// the order, its items and the stock deductions in a single transaction.
func (s *CheckoutService) PlaceOrder(ctx context.Context, req *CheckoutRequest) (*CheckoutResponse, error) {
	ctx, span := util.StartSpan(ctx, "CheckoutService.PlaceOrder")
	defer span.End()

	if len(req.Items) == 0 {
		return nil, models.ErrEmptyCart
	}

	if req.IdempotencyKey == "" {
		req.IdempotencyKey = uuid.New().String()
	} else if resp, ok := s.replayIdempotent(ctx, req.IdempotencyKey); ok {
		return resp, nil
	}

	lines, err := s.resolveLines(ctx, req.Items)
	if err != nil {
		util.OrdersFailedTotal.WithLabelValues("invalid_items").Inc()
		return nil, err
	}

	order := &models.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		TotalAmount:   orderTotal(lines),
		Status:        models.OrderStatusPending,
		PaymentStatus: normalizePaymentStatus(req.PaymentStatus),
	}
	if req.CustomerPhone != "" {
		order.CustomerPhone = &req.CustomerPhone
	}
	if req.ShippingAddress != "" {
		order.ShippingAddress = &req.ShippingAddress
	}

	err = s.store.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.store.CreateOrderTx(ctx, tx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, line := range lines {
			item := &models.OrderItem{
				OrderID:   order.ID,
				ProductID: line.productID,
				Quantity:  line.quantity,
				Price:     line.unitPrice,
			}
			if err := s.store.CreateOrderItemTx(ctx, tx, item); err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}

			if !line.static {
				if err := s.store.DeductStockTx(ctx, tx, line.productID, line.quantity); err != nil {
					return fmt.Errorf("failed to deduct stock for product %d: %w", line.productID, err)
				}
			}
		}

		return nil
	})
	if err != nil {
		util.OrdersFailedTotal.WithLabelValues("db_error").Inc()
		return nil, err
	}

	util.OrdersPlacedTotal.Inc()
	s.logger.Info("Order placed",
		zap.Int64("order_id", order.ID),
		zap.Float64("total_amount", order.TotalAmount),
		zap.Int("items", len(lines)))

	if err := s.redis.SetIdempotentOrder(ctx, req.IdempotencyKey, order.ID, idempotencyTTL); err != nil {
		s.logger.Warn("Failed to store idempotency key", zap.Error(err))
	}

	s.publishOrderPlaced(ctx, order, lines)

	return &CheckoutResponse{
		OrderID:     order.ID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
	}, nil
}

// replayIdempotent returns the previously created order for a repeated
// idempotency key.
func (s *CheckoutService) replayIdempotent(ctx context.Context, key string) (*CheckoutResponse, bool) {
	orderID, found, err := s.redis.GetIdempotentOrder(ctx, key)
	if err != nil {
		s.logger.Warn("Idempotency lookup failed", zap.Error(err))
		return nil, false
	}
	if !found {
		return nil, false
	}

	order, err := s.store.GetOrderByID(ctx, orderID)
	if err != nil {
		s.logger.Warn("Idempotent order lookup failed",
			zap.Int64("order_id", orderID), zap.Error(err))
		return nil, false
	}

	s.logger.Info("Duplicate checkout request detected",
		zap.String("idempotency_key", key),
		zap.Int64("order_id", order.ID))

	return &CheckoutResponse{
		OrderID:     order.ID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
	}, true
}

// resolveLines maps cart lines to catalog products and revalidates prices.
// Catalog lines take the authoritative product price at this moment; static
// lines keep the submitted price because no catalog row backs them.
func (s *CheckoutService) resolveLines(ctx context.Context, items []CartLine) ([]resolvedLine, error) {
	lines := make([]resolvedLine, len(items))
	catalogIDs := make([]int64, 0, len(items))

	for i, item := range items {
		productID, static := resolveProductRef(item.ProductID, s.staticProductID)
		lines[i] = resolvedLine{
			productID: productID,
			quantity:  item.Quantity,
			unitPrice: item.UnitPrice,
			static:    static,
		}
		if !static {
			catalogIDs = append(catalogIDs, productID)
		}
	}

	if len(catalogIDs) == 0 {
		return lines, nil
	}

	products, err := s.store.GetProductsByIDs(ctx, catalogIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	priceByID := make(map[int64]float64, len(products))
	for _, p := range products {
		priceByID[p.ID] = p.Price
	}

	for i := range lines {
		if lines[i].static {
			continue
		}
		price, ok := priceByID[lines[i].productID]
		if !ok {
			return nil, fmt.Errorf("product %d: %w", lines[i].productID, models.ErrNotFound)
		}
		lines[i].unitPrice = price
	}

	return lines, nil
}

func (s *CheckoutService) publishOrderPlaced(ctx context.Context, order *models.Order, lines []resolvedLine) {
	itemData := make([]models.OrderItemData, len(lines))
	for i, line := range lines {
		itemData[i] = models.OrderItemData{
			ProductID: line.productID,
			Quantity:  line.quantity,
			UnitPrice: line.unitPrice,
		}
	}

	event := &models.OrderPlacedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderPlaced,
			Timestamp: time.Now(),
		},
		OrderID:       order.ID,
		CustomerEmail: order.CustomerEmail,
		TotalAmount:   order.TotalAmount,
		PaymentStatus: order.PaymentStatus,
		Items:         itemData,
	}

	if err := s.eventPublisher.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.Error("Failed to publish OrderPlaced event", zap.Error(err))
	}
}

// resolveProductRef resolves a cart product reference. Numeric references
// name catalog rows; anything else (a static item like "p1") falls back to
// staticID and reports static=true.
func resolveProductRef(ref string, staticID int64) (int64, bool) {
	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil || id <= 0 {
		return staticID, true
	}
	return id, false
}

// orderTotal sums quantity times unit price across lines, rounded to cents.
func orderTotal(lines []resolvedLine) float64 {
	var total float64
	for _, line := range lines {
		total += float64(line.quantity) * line.unitPrice
	}
	return round2(total)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func normalizePaymentStatus(status string) string {
	if status == models.PaymentStatusPaid {
		return models.PaymentStatusPaid
	}
	return models.PaymentStatusPending
}
