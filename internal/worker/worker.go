package worker

import (
	"context"
	"log"

	"guesthouse-service/internal/broker"
	"guesthouse-service/internal/models"
)

// BookingViewCache is the slice of the cache the worker needs. Satisfied
// by redisclient.Client.
type BookingViewCache interface {
	InvalidateBookingDetails(ctx context.Context) error
}

// CacheWorker consumes entity-change events and drops the cached booking
// view when another instance mutates a booking, room or client.
type CacheWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	cache        BookingViewCache
}

// NewCacheWorker creates a new cache-invalidation worker
func NewCacheWorker(consumer *broker.Consumer, cache BookingViewCache) *CacheWorker {
	w := &CacheWorker{
		consumer: consumer,
		cache:    cache,
	}

	eventHandler := broker.NewEventHandler()
	eventHandler.OnEntityChanged(w.handleEntityChanged)
	w.eventHandler = eventHandler

	return w
}

// Start starts the worker
func (w *CacheWorker) Start(ctx context.Context) error {
	log.Println("Starting cache invalidation worker...")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *CacheWorker) Stop() error {
	log.Println("Stopping cache invalidation worker...")
	return w.consumer.Close()
}

func (w *CacheWorker) handleEntityChanged(ctx context.Context, event *models.EntityChangedEvent) error {
	switch event.Entity {
	case models.EntityBooking, models.EntityRoom, models.EntityClient:
		if err := w.cache.InvalidateBookingDetails(ctx); err != nil {
			log.Printf("Failed to invalidate booking view cache: %v", err)
			return err
		}
	}
	return nil
}
