package service

import (
	"context"
	"time"

	"guesthouse-service/internal/broker"
	"guesthouse-service/internal/models"
	"guesthouse-service/internal/store"
	"guesthouse-service/internal/util"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BookingService owns CRUD for bookings and the detailed booking view
type BookingService struct {
	store  store.Store
	cache  BookingViewCache
	events *broker.EventPublisher
	logger *zap.Logger
}

// NewBookingService creates a new booking service. cache may be nil, in
// which case the detailed view always reads from the store.
func NewBookingService(st store.Store, cache BookingViewCache, events *broker.EventPublisher) *BookingService {
	return &BookingService{
		store:  st,
		cache:  cache,
		events: events,
		logger: util.GetLogger(),
	}
}

// BookingRequest carries the full field set for create and update. The
// foreign keys are accepted as given; a dangling reference only surfaces
// in the detailed view.
type BookingRequest struct {
	RoomID       *int64           `json:"room_id" binding:"required"`
	ClientID     *int64           `json:"client_id" binding:"required"`
	CheckInDate  *time.Time       `json:"check_in_date" binding:"required"`
	CheckOutDate *time.Time       `json:"check_out_date" binding:"required"`
	TotalPrice   *decimal.Decimal `json:"total_price" binding:"required"`
	Status       string           `json:"status"`
}

func (r *BookingRequest) toModel() *models.Booking {
	status := r.Status
	if status == "" {
		status = models.BookingStatusBooked
	}
	return &models.Booking{
		RoomID:       *r.RoomID,
		ClientID:     *r.ClientID,
		CheckInDate:  *r.CheckInDate,
		CheckOutDate: *r.CheckOutDate,
		TotalPrice:   *r.TotalPrice,
		Status:       status,
	}
}

// List returns all bookings ordered by id
func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.store.ListBookings(ctx)
	return bookings, wrapStorage("list bookings", err)
}

// Get returns one booking
func (s *BookingService) Get(ctx context.Context, id int64) (*models.Booking, error) {
	booking, err := s.store.GetBooking(ctx, id)
	if err != nil {
		return nil, wrapStorage("get booking", err)
	}
	return booking, nil
}

// ListDetails returns the denormalized booking view, ordered by booking id.
// The result is served from the cache when possible and cached after a miss.
func (s *BookingService) ListDetails(ctx context.Context) ([]models.BookingDetail, error) {
	ctx, span := util.StartSpan(ctx, "BookingService.ListDetails")
	defer span.End()

	if s.cache != nil {
		details, ok, err := s.cache.GetBookingDetails(ctx)
		switch {
		case err != nil:
			// a flapping cache is not a miss; keep the hit-rate honest
			util.BookingViewCacheErrors.Inc()
			s.logger.Warn("Booking view cache read failed", zap.Error(err))
		case ok:
			util.BookingViewCacheHits.Inc()
			return details, nil
		default:
			util.BookingViewCacheMisses.Inc()
		}
	}

	details, err := s.store.ListBookingDetails(ctx)
	if err != nil {
		return nil, wrapStorage("list booking details", err)
	}

	if s.cache != nil {
		if err := s.cache.SetBookingDetails(ctx, details); err != nil {
			s.logger.Warn("Booking view cache write failed", zap.Error(err))
		}
	}
	return details, nil
}

// Create stores a new booking and returns it with the assigned id
func (s *BookingService) Create(ctx context.Context, req *BookingRequest) (*models.Booking, error) {
	ctx, span := util.StartSpan(ctx, "BookingService.Create")
	defer span.End()

	booking := req.toModel()
	if err := s.store.CreateBooking(ctx, booking); err != nil {
		return nil, wrapStorage("create booking", err)
	}

	util.EntityMutationsTotal.WithLabelValues(models.EntityBooking, "create").Inc()
	s.logger.Info("Booking created",
		zap.Int64("id", booking.ID),
		zap.Int64("room_id", booking.RoomID),
		zap.Int64("client_id", booking.ClientID))
	publishChange(ctx, s.events, s.logger, models.EventTypeEntityCreated, models.EntityBooking, booking.ID)
	invalidateBookingView(ctx, s.cache, s.logger)
	return booking, nil
}

// Update replaces all mutable fields of a booking
func (s *BookingService) Update(ctx context.Context, id int64, req *BookingRequest) (*models.Booking, error) {
	booking := req.toModel()
	booking.ID = id
	if err := s.store.UpdateBooking(ctx, booking); err != nil {
		return nil, wrapStorage("update booking", err)
	}

	util.EntityMutationsTotal.WithLabelValues(models.EntityBooking, "update").Inc()
	publishChange(ctx, s.events, s.logger, models.EventTypeEntityUpdated, models.EntityBooking, id)
	invalidateBookingView(ctx, s.cache, s.logger)
	return booking, nil
}

// Delete removes a booking
func (s *BookingService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteBooking(ctx, id); err != nil {
		return wrapStorage("delete booking", err)
	}

	util.EntityMutationsTotal.WithLabelValues(models.EntityBooking, "delete").Inc()
	publishChange(ctx, s.events, s.logger, models.EventTypeEntityDeleted, models.EntityBooking, id)
	invalidateBookingView(ctx, s.cache, s.logger)
	return nil
}
