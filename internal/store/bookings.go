package store

import (
	"context"
	"database/sql"

	"guesthouse-service/internal/models"
)

// ListBookings retrieves all bookings ordered by id
func (s *Postgres) ListBookings(ctx context.Context) ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := s.db.SelectContext(ctx, &bookings, "SELECT * FROM bookings ORDER BY id")
	return bookings, err
}

// GetBooking retrieves a booking by ID
func (s *Postgres) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.GetContext(ctx, &booking, "SELECT * FROM bookings WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CreateBooking inserts a booking and fills the assigned id and timestamps.
// The foreign keys are stored as given; existence is not checked here.
func (s *Postgres) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (room_id, client_id, check_in_date, check_out_date, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return s.db.GetContext(ctx, booking, query,
		booking.RoomID, booking.ClientID, booking.CheckInDate, booking.CheckOutDate,
		booking.TotalPrice, booking.Status)
}

// UpdateBooking replaces all mutable fields of a booking
func (s *Postgres) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	query := `
		UPDATE bookings
		SET room_id = $1, client_id = $2, check_in_date = $3, check_out_date = $4,
		    total_price = $5, status = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING created_at, updated_at`

	err := s.db.GetContext(ctx, booking, query,
		booking.RoomID, booking.ClientID, booking.CheckInDate, booking.CheckOutDate,
		booking.TotalPrice, booking.Status, booking.ID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	return err
}

// DeleteBooking removes a booking by ID
func (s *Postgres) DeleteBooking(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM bookings WHERE id = $1", id)
	return rowsAffected(res, err)
}

// ListBookingDetails composes each booking with its room and client display
// fields. Left joins keep bookings with dangling references visible, with
// placeholder fields, instead of silently dropping them from the ledger.
func (s *Postgres) ListBookingDetails(ctx context.Context) ([]models.BookingDetail, error) {
	query := `
		SELECT b.*,
		       COALESCE(r.room_number, $1)  AS room_number,
		       COALESCE(r.type, $1)         AS room_type,
		       COALESCE(c.name, $1)         AS client_name,
		       COALESCE(c.contact_info, $1) AS client_contact_info
		FROM bookings b
		LEFT JOIN rooms r   ON r.id = b.room_id
		LEFT JOIN clients c ON c.id = b.client_id
		ORDER BY b.id`

	details := []models.BookingDetail{}
	err := s.db.SelectContext(ctx, &details, query, models.FieldPlaceholder)
	return details, err
}
