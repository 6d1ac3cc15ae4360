package models

import "time"

// User is an admin or site account. PasswordHash stores a bcrypt hash; it is
// never returned by the API.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username" binding:"required"`
	Email        string    `db:"email" json:"email" binding:"required,email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Inquiry is a contact-form message.
type Inquiry struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name" binding:"required"`
	Email     string    `db:"email" json:"email" binding:"required,email"`
	Subject   *string   `db:"subject" json:"subject"`
	Message   string    `db:"message" json:"message" binding:"required"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Booking is a session request for a calendar day. BookingTime is fixed by
// the business (one slot per day), so conflicts are decided on BookingDate
// alone.
type Booking struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name" binding:"required"`
	Email       string    `db:"email" json:"email" binding:"required,email"`
	Phone       *string   `db:"phone" json:"phone"`
	ServiceType string    `db:"service_type" json:"service_type" binding:"required"`
	BookingDate Date      `db:"booking_date" json:"booking_date"`
	BookingTime string    `db:"booking_time" json:"booking_time"`
	Location    *string   `db:"location" json:"location"`
	Notes       *string   `db:"notes" json:"notes"`
	Status      string    `db:"status" json:"status"`
	TotalAmount *float64  `db:"total_amount" json:"total_amount"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Booking statuses
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// PortfolioItem is a curated portfolio entry.
type PortfolioItem struct {
	ID           int64     `db:"id" json:"id"`
	Title        string    `db:"title" json:"title" binding:"required"`
	Description  *string   `db:"description" json:"description"`
	Category     string    `db:"category" json:"category"`
	ImageURL     string    `db:"image_url" json:"image_url" binding:"required"`
	ThumbnailURL *string   `db:"thumbnail_url" json:"thumbnail_url"`
	Featured     bool      `db:"featured" json:"featured"`
	SortOrder    int       `db:"sort_order" json:"sort_order"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// GalleryImage is a public gallery entry.
type GalleryImage struct {
	ID           int64     `db:"id" json:"id"`
	Title        *string   `db:"title" json:"title"`
	Description  *string   `db:"description" json:"description"`
	ImageURL     string    `db:"image_url" json:"image_url" binding:"required"`
	ThumbnailURL *string   `db:"thumbnail_url" json:"thumbnail_url"`
	Category     string    `db:"category" json:"category"`
	Featured     bool      `db:"featured" json:"featured"`
	SortOrder    int       `db:"sort_order" json:"sort_order"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Testimonial is a client review.
type Testimonial struct {
	ID              int64     `db:"id" json:"id"`
	ClientName      string    `db:"client_name" json:"client_name" binding:"required"`
	ClientImage     *string   `db:"client_image" json:"client_image"`
	Rating          int       `db:"rating" json:"rating" binding:"required,min=1,max=5"`
	TestimonialText string    `db:"testimonial_text" json:"testimonial_text" binding:"required"`
	ServiceType     *string   `db:"service_type" json:"service_type"`
	Featured        bool      `db:"featured" json:"featured"`
	SortOrder       int       `db:"sort_order" json:"sort_order"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Service is a bookable photography package.
type Service struct {
	ID            int64     `db:"id" json:"id"`
	Name          string    `db:"name" json:"name" binding:"required"`
	Description   *string   `db:"description" json:"description"`
	Price         float64   `db:"price" json:"price"`
	DurationHours *int      `db:"duration_hours" json:"duration_hours"`
	Features      *string   `db:"features" json:"features"`
	Active        bool      `db:"active" json:"active"`
	SortOrder     int       `db:"sort_order" json:"sort_order"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Product is a shop item (prints and similar). Price is authoritative only at
// order-item creation time; items snapshot it.
type Product struct {
	ID            int64     `db:"id" json:"id"`
	Name          string    `db:"name" json:"name" binding:"required"`
	Description   *string   `db:"description" json:"description"`
	Price         float64   `db:"price" json:"price" binding:"required"`
	ImageURL      *string   `db:"image_url" json:"image_url"`
	ThumbnailURL  *string   `db:"thumbnail_url" json:"thumbnail_url"`
	Category      string    `db:"category" json:"category"`
	StockQuantity int       `db:"stock_quantity" json:"stock_quantity"`
	Featured      bool      `db:"featured" json:"featured"`
	Active        bool      `db:"active" json:"active"`
	SortOrder     int       `db:"sort_order" json:"sort_order"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Order is one checkout. Mutated only by status transitions after creation.
type Order struct {
	ID              int64     `db:"id" json:"id"`
	CustomerName    string    `db:"customer_name" json:"customer_name" binding:"required"`
	CustomerEmail   string    `db:"customer_email" json:"customer_email" binding:"required,email"`
	CustomerPhone   *string   `db:"customer_phone" json:"customer_phone"`
	ShippingAddress *string   `db:"shipping_address" json:"shipping_address"`
	TotalAmount     float64   `db:"total_amount" json:"total_amount"`
	Status          string    `db:"status" json:"status"`
	PaymentStatus   string    `db:"payment_status" json:"payment_status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Payment statuses
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// OrderItem belongs to exactly one order. Price is the unit price captured at
// purchase time, immune to later catalog changes.
type OrderItem struct {
	ID        int64     `db:"id" json:"id"`
	OrderID   int64     `db:"order_id" json:"order_id" binding:"required"`
	ProductID int64     `db:"product_id" json:"product_id" binding:"required"`
	Quantity  int       `db:"quantity" json:"quantity" binding:"required,min=1"`
	Price     float64   `db:"price" json:"price"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Setting is a key/value site setting.
type Setting struct {
	ID           int64     `db:"id" json:"id"`
	SettingKey   string    `db:"setting_key" json:"setting_key" binding:"required"`
	SettingValue *string   `db:"setting_value" json:"setting_value"`
	SettingType  string    `db:"setting_type" json:"setting_type"`
	Description  *string   `db:"description" json:"description"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// AnalyticsRecord is a per-day counter for a page or event.
type AnalyticsRecord struct {
	ID           int64     `db:"id" json:"id"`
	PageName     string    `db:"page_name" json:"page_name" binding:"required"`
	VisitorCount int       `db:"visitor_count" json:"visitor_count"`
	Date         Date      `db:"date" json:"date"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
