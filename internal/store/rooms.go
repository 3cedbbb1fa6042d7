package store

import (
	"context"
	"database/sql"

	"guesthouse-service/internal/models"
)

// ListRooms retrieves all rooms ordered by id
func (s *Postgres) ListRooms(ctx context.Context) ([]models.Room, error) {
	rooms := []models.Room{}
	err := s.db.SelectContext(ctx, &rooms, "SELECT * FROM rooms ORDER BY id")
	return rooms, err
}

// GetRoom retrieves a room by ID
func (s *Postgres) GetRoom(ctx context.Context, id int64) (*models.Room, error) {
	var room models.Room
	err := s.db.GetContext(ctx, &room, "SELECT * FROM rooms WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// CreateRoom inserts a room and fills the assigned id and timestamps
func (s *Postgres) CreateRoom(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO rooms (room_number, type, price_per_night, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	return s.db.GetContext(ctx, room, query,
		room.RoomNumber, room.Type, room.PricePerNight, room.Status)
}

// UpdateRoom replaces all mutable fields of a room
func (s *Postgres) UpdateRoom(ctx context.Context, room *models.Room) error {
	query := `
		UPDATE rooms
		SET room_number = $1, type = $2, price_per_night = $3, status = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING created_at, updated_at`

	err := s.db.GetContext(ctx, room, query,
		room.RoomNumber, room.Type, room.PricePerNight, room.Status, room.ID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	return err
}

// DeleteRoom removes a room by ID
func (s *Postgres) DeleteRoom(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM rooms WHERE id = $1", id)
	return rowsAffected(res, err)
}
