package broker

import (
	"context"
	"encoding/json"
	"fmt"

	"boundless-api/internal/models"
	"boundless-api/internal/util"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventPublisher handles publishing domain events
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishOrderPlaced publishes an OrderPlaced event
func (ep *EventPublisher) PublishOrderPlaced(ctx context.Context, event *models.OrderPlacedEvent) error {
	key := fmt.Sprintf("order-%d", event.OrderID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishBookingRequested publishes a BookingRequested event
func (ep *EventPublisher) PublishBookingRequested(ctx context.Context, event *models.BookingRequestedEvent) error {
	key := fmt.Sprintf("booking-%d", event.BookingID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishInquiryReceived publishes an InquiryReceived event
func (ep *EventPublisher) PublishInquiryReceived(ctx context.Context, event *models.InquiryReceivedEvent) error {
	key := fmt.Sprintf("inquiry-%d", event.InquiryID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// EventHandler routes incoming events to registered handlers
type EventHandler struct {
	onOrderPlaced      func(context.Context, *models.OrderPlacedEvent) error
	onBookingRequested func(context.Context, *models.BookingRequestedEvent) error
	onInquiryReceived  func(context.Context, *models.InquiryReceivedEvent) error
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// OnOrderPlaced registers a handler for OrderPlaced events
func (eh *EventHandler) OnOrderPlaced(handler func(context.Context, *models.OrderPlacedEvent) error) {
	eh.onOrderPlaced = handler
}

// OnBookingRequested registers a handler for BookingRequested events
func (eh *EventHandler) OnBookingRequested(handler func(context.Context, *models.BookingRequestedEvent) error) {
	eh.onBookingRequested = handler
}

// OnInquiryReceived registers a handler for InquiryReceived events
func (eh *EventHandler) OnInquiryReceived(handler func(context.Context, *models.InquiryReceivedEvent) error) {
	eh.onInquiryReceived = handler
}

// HandleMessage routes messages to appropriate handlers
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	switch baseEvent.EventType {
	case models.EventTypeOrderPlaced:
		if eh.onOrderPlaced != nil {
			var event models.OrderPlacedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal OrderPlaced event: %w", err)
			}
			return eh.onOrderPlaced(ctx, &event)
		}

	case models.EventTypeBookingRequested:
		if eh.onBookingRequested != nil {
			var event models.BookingRequestedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal BookingRequested event: %w", err)
			}
			return eh.onBookingRequested(ctx, &event)
		}

	case models.EventTypeInquiryReceived:
		if eh.onInquiryReceived != nil {
			var event models.InquiryReceivedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal InquiryReceived event: %w", err)
			}
			return eh.onInquiryReceived(ctx, &event)
		}

	default:
		util.GetLogger().Warn("Unhandled event type", zap.String("type", baseEvent.EventType))
	}

	return nil
}
