package service

import (
	"context"
	"errors"
	"fmt"

	"guesthouse-service/internal/broker"
	"guesthouse-service/internal/models"
	"guesthouse-service/internal/store"
	"guesthouse-service/internal/util"

	"go.uber.org/zap"
)

// BookingViewCache caches the detailed-bookings read. Satisfied by
// redisclient.Client; tests substitute a fake. A nil cache disables
// caching entirely.
type BookingViewCache interface {
	GetBookingDetails(ctx context.Context) ([]models.BookingDetail, bool, error)
	SetBookingDetails(ctx context.Context, details []models.BookingDetail) error
	InvalidateBookingDetails(ctx context.Context) error
}

// StorageError wraps a persistence-layer fault. The handler surfaces it as
// a generic 500; the wrapped cause is only ever logged.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// wrapStorage converts a store fault into a StorageError, letting
// store.ErrNotFound pass through untouched.
func wrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return err
	}
	util.StorageErrorsTotal.WithLabelValues(op).Inc()
	return &StorageError{Op: op, Err: err}
}

// publishChange emits an entity-change event best-effort. A publish failure
// never fails the request; the mutation already committed.
func publishChange(ctx context.Context, events *broker.EventPublisher, logger *zap.Logger, eventType, entity string, id int64) {
	if events == nil {
		return
	}
	if err := events.PublishEntityChanged(ctx, eventType, entity, id); err != nil {
		logger.Warn("Failed to publish entity change",
			zap.String("entity", entity),
			zap.Int64("entity_id", id),
			zap.Error(err))
	}
}

// invalidateBookingView drops the cached detailed-bookings read. Room,
// client and booking mutations all feed the join view, so each of those
// services calls this after a successful write.
func invalidateBookingView(ctx context.Context, cache BookingViewCache, logger *zap.Logger) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateBookingDetails(ctx); err != nil {
		logger.Warn("Failed to invalidate booking view cache", zap.Error(err))
	}
}
