package service

import (
	"context"

	"guesthouse-service/internal/broker"
	"guesthouse-service/internal/models"
	"guesthouse-service/internal/store"
	"guesthouse-service/internal/util"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RoomService owns CRUD for rooms
type RoomService struct {
	store  store.Store
	cache  BookingViewCache
	events *broker.EventPublisher
	logger *zap.Logger
}

// NewRoomService creates a new room service. cache may be nil.
func NewRoomService(st store.Store, cache BookingViewCache, events *broker.EventPublisher) *RoomService {
	return &RoomService{
		store:  st,
		cache:  cache,
		events: events,
		logger: util.GetLogger(),
	}
}

// RoomRequest carries the full field set for create and update
type RoomRequest struct {
	RoomNumber    string           `json:"room_number" binding:"required"`
	Type          string           `json:"type" binding:"required"`
	PricePerNight *decimal.Decimal `json:"price_per_night" binding:"required"`
	Status        string           `json:"status"`
}

func (r *RoomRequest) toModel() *models.Room {
	status := r.Status
	if status == "" {
		status = models.RoomStatusAvailable
	}
	return &models.Room{
		RoomNumber:    r.RoomNumber,
		Type:          r.Type,
		PricePerNight: *r.PricePerNight,
		Status:        status,
	}
}

// List returns all rooms ordered by id
func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.store.ListRooms(ctx)
	return rooms, wrapStorage("list rooms", err)
}

// Get returns one room
func (s *RoomService) Get(ctx context.Context, id int64) (*models.Room, error) {
	room, err := s.store.GetRoom(ctx, id)
	if err != nil {
		return nil, wrapStorage("get room", err)
	}
	return room, nil
}

// Create stores a new room and returns it with the assigned id
func (s *RoomService) Create(ctx context.Context, req *RoomRequest) (*models.Room, error) {
	ctx, span := util.StartSpan(ctx, "RoomService.Create")
	defer span.End()

	room := req.toModel()
	if err := s.store.CreateRoom(ctx, room); err != nil {
		return nil, wrapStorage("create room", err)
	}

	util.EntityMutationsTotal.WithLabelValues(models.EntityRoom, "create").Inc()
	s.logger.Info("Room created", zap.Int64("id", room.ID), zap.String("room_number", room.RoomNumber))
	publishChange(ctx, s.events, s.logger, models.EventTypeEntityCreated, models.EntityRoom, room.ID)
	invalidateBookingView(ctx, s.cache, s.logger)
	return room, nil
}

// Update replaces all mutable fields of a room
func (s *RoomService) Update(ctx context.Context, id int64, req *RoomRequest) (*models.Room, error) {
	room := req.toModel()
	room.ID = id
	if err := s.store.UpdateRoom(ctx, room); err != nil {
		return nil, wrapStorage("update room", err)
	}

	util.EntityMutationsTotal.WithLabelValues(models.EntityRoom, "update").Inc()
	publishChange(ctx, s.events, s.logger, models.EventTypeEntityUpdated, models.EntityRoom, id)
	invalidateBookingView(ctx, s.cache, s.logger)
	return room, nil
}

// Delete removes a room. Bookings referencing it keep their raw room_id and
// show placeholder room fields in the detailed view.
func (s *RoomService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteRoom(ctx, id); err != nil {
		return wrapStorage("delete room", err)
	}

	util.EntityMutationsTotal.WithLabelValues(models.EntityRoom, "delete").Inc()
	publishChange(ctx, s.events, s.logger, models.EventTypeEntityDeleted, models.EntityRoom, id)
	invalidateBookingView(ctx, s.cache, s.logger)
	return nil
}
