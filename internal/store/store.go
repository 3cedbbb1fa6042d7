package store

import (
	"context"
	"errors"

	"guesthouse-service/internal/models"
)

// ErrNotFound is returned when an id does not resolve to a record, and by
// update/delete when zero rows were affected.
var ErrNotFound = errors.New("record not found")

// Store is the persistence boundary. It is constructed once at startup and
// injected into the services; tests substitute the in-memory implementation.
type Store interface {
	Healthcheck(ctx context.Context) error
	Close() error

	ListInventoryItems(ctx context.Context) ([]models.InventoryItem, error)
	GetInventoryItem(ctx context.Context, id int64) (*models.InventoryItem, error)
	CreateInventoryItem(ctx context.Context, item *models.InventoryItem) error
	UpdateInventoryItem(ctx context.Context, item *models.InventoryItem) error
	DeleteInventoryItem(ctx context.Context, id int64) error

	ListRooms(ctx context.Context) ([]models.Room, error)
	GetRoom(ctx context.Context, id int64) (*models.Room, error)
	CreateRoom(ctx context.Context, room *models.Room) error
	UpdateRoom(ctx context.Context, room *models.Room) error
	DeleteRoom(ctx context.Context, id int64) error

	ListClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, id int64) (*models.Client, error)
	CreateClient(ctx context.Context, client *models.Client) error
	UpdateClient(ctx context.Context, client *models.Client) error
	DeleteClient(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id int64) error

	ListBookings(ctx context.Context) ([]models.Booking, error)
	GetBooking(ctx context.Context, id int64) (*models.Booking, error)
	CreateBooking(ctx context.Context, booking *models.Booking) error
	UpdateBooking(ctx context.Context, booking *models.Booking) error
	DeleteBooking(ctx context.Context, id int64) error

	// ListBookingDetails resolves each booking's room and client display
	// fields, substituting placeholders for dangling references.
	ListBookingDetails(ctx context.Context) ([]models.BookingDetail, error)
}
