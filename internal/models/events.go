package models

import "time"

// Event types
const (
	EventTypeOrderPlaced      = "ORDER_PLACED"
	EventTypeBookingRequested = "BOOKING_REQUESTED"
	EventTypeInquiryReceived  = "INQUIRY_RECEIVED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderPlacedEvent published after a checkout transaction commits
type OrderPlacedEvent struct {
	BaseEvent
	OrderID       int64           `json:"order_id"`
	CustomerEmail string          `json:"customer_email"`
	TotalAmount   float64         `json:"total_amount"`
	PaymentStatus string          `json:"payment_status"`
	Items         []OrderItemData `json:"items"`
}

// BookingRequestedEvent published when a booking passes the conflict check
type BookingRequestedEvent struct {
	BaseEvent
	BookingID   int64  `json:"booking_id"`
	BookingDate string `json:"booking_date"`
	ServiceType string `json:"service_type"`
}

// InquiryReceivedEvent published when a contact inquiry is stored
type InquiryReceivedEvent struct {
	BaseEvent
	InquiryID int64  `json:"inquiry_id"`
	Email     string `json:"email"`
}

// OrderItemData represents item data in events
type OrderItemData struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}
