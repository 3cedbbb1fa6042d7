package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money columns come back from some drivers as NUMERIC text; decimals
	// must still serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// InventoryItem represents a stock item tracked for the guesthouse
type InventoryItem struct {
	ID           int64           `db:"id" json:"id"`
	Name         string          `db:"name" json:"name"`
	CategoryID   int64           `db:"category_id" json:"category_id"`
	Quantity     int             `db:"quantity" json:"quantity"`
	Unit         string          `db:"unit" json:"unit"`
	CostPrice    decimal.Decimal `db:"cost_price" json:"cost_price"`
	SellingPrice decimal.Decimal `db:"selling_price" json:"selling_price"`
	ReorderLevel int             `db:"reorder_level" json:"reorder_level"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

// Room represents a guest room
type Room struct {
	ID            int64           `db:"id" json:"id"`
	RoomNumber    string          `db:"room_number" json:"room_number"`
	Type          string          `db:"type" json:"type"`
	PricePerNight decimal.Decimal `db:"price_per_night" json:"price_per_night"`
	Status        string          `db:"status" json:"status"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// Client represents a guest on file
type Client struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	ContactInfo string    `db:"contact_info" json:"contact_info"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Category groups inventory items
type Category struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Booking ties a client to a room for a date range. room_id and client_id
// are raw foreign keys; existence is not checked at write time.
type Booking struct {
	ID           int64           `db:"id" json:"id"`
	RoomID       int64           `db:"room_id" json:"room_id"`
	ClientID     int64           `db:"client_id" json:"client_id"`
	CheckInDate  time.Time       `db:"check_in_date" json:"check_in_date"`
	CheckOutDate time.Time       `db:"check_out_date" json:"check_out_date"`
	TotalPrice   decimal.Decimal `db:"total_price" json:"total_price"`
	Status       string          `db:"status" json:"status"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

// BookingDetail is the denormalized booking view with room and client
// display fields resolved. A dangling reference yields FieldPlaceholder
// rather than hiding the booking.
type BookingDetail struct {
	Booking
	RoomNumber        string `db:"room_number" json:"room_number"`
	RoomType          string `db:"room_type" json:"room_type"`
	ClientName        string `db:"client_name" json:"client_name"`
	ClientContactInfo string `db:"client_contact_info" json:"client_contact_info"`
}

// FieldPlaceholder substitutes display fields whose referenced room or
// client no longer exists.
const FieldPlaceholder = "N/A"

// Room statuses
const (
	RoomStatusAvailable = "Available"
	RoomStatusOccupied  = "Occupied"
)

// Booking statuses
const (
	BookingStatusBooked     = "Booked"
	BookingStatusCheckedIn  = "CheckedIn"
	BookingStatusCheckedOut = "CheckedOut"
	BookingStatusCancelled  = "Cancelled"
)

// Entity names used in event payloads and metric labels
const (
	EntityInventoryItem = "inventory_item"
	EntityRoom          = "room"
	EntityClient        = "client"
	EntityCategory      = "category"
	EntityBooking       = "booking"
)
