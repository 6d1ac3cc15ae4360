package worker

import (
	"context"
	"time"

	"boundless-api/internal/broker"
	"boundless-api/internal/models"
	"boundless-api/internal/store"
	"boundless-api/internal/util"

	"go.uber.org/zap"
)

// AnalyticsWorker consumes domain events and folds them into the per-day
// analytics counters the admin dashboard reads.
type AnalyticsWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	store        *store.Store
	logger       *zap.Logger
}

// NewAnalyticsWorker creates a new analytics worker
func NewAnalyticsWorker(consumer *broker.Consumer, st *store.Store) *AnalyticsWorker {
	w := &AnalyticsWorker{
		consumer: consumer,
		store:    st,
		logger:   util.GetLogger(),
	}

	eventHandler := broker.NewEventHandler()
	eventHandler.OnOrderPlaced(w.handleOrderPlaced)
	eventHandler.OnBookingRequested(w.handleBookingRequested)
	eventHandler.OnInquiryReceived(w.handleInquiryReceived)
	w.eventHandler = eventHandler

	return w
}

// Start starts the worker
func (w *AnalyticsWorker) Start(ctx context.Context) error {
	w.logger.Info("Starting analytics worker")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *AnalyticsWorker) Stop() error {
	w.logger.Info("Stopping analytics worker")
	return w.consumer.Close()
}

func (w *AnalyticsWorker) handleOrderPlaced(ctx context.Context, event *models.OrderPlacedEvent) error {
	util.EventsProcessedTotal.WithLabelValues(event.EventType).Inc()
	return w.record(ctx, "checkout", event.Timestamp)
}

func (w *AnalyticsWorker) handleBookingRequested(ctx context.Context, event *models.BookingRequestedEvent) error {
	util.EventsProcessedTotal.WithLabelValues(event.EventType).Inc()
	return w.record(ctx, "booking", event.Timestamp)
}

func (w *AnalyticsWorker) handleInquiryReceived(ctx context.Context, event *models.InquiryReceivedEvent) error {
	util.EventsProcessedTotal.WithLabelValues(event.EventType).Inc()
	return w.record(ctx, "contact", event.Timestamp)
}

func (w *AnalyticsWorker) record(ctx context.Context, pageName string, at time.Time) error {
	if err := w.store.IncrementDailyCount(ctx, pageName, models.NewDate(at)); err != nil {
		w.logger.Error("Failed to record analytics count",
			zap.String("page_name", pageName), zap.Error(err))
		return err
	}
	return nil
}
