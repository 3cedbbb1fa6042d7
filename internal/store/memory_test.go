package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"guesthouse-service/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryItemCreateThenGet(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	item := &models.InventoryItem{
		Name:         "Bath towels",
		CategoryID:   1,
		Quantity:     40,
		Unit:         "pcs",
		CostPrice:    decimal.NewFromFloat(3.50),
		SellingPrice: decimal.NewFromFloat(0),
		ReorderLevel: 10,
	}

	require.NoError(t, st.CreateInventoryItem(ctx, item))
	assert.Equal(t, int64(1), item.ID)

	got, err := st.GetInventoryItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.Name, got.Name)
	assert.Equal(t, item.Quantity, got.Quantity)
	assert.True(t, got.CostPrice.Equal(decimal.NewFromFloat(3.50)))
}

func TestGetUnknownIDReturnsNotFound(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	_, err := st.GetInventoryItem(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = st.GetRoom(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = st.GetBooking(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUnknownIDMutatesNothing(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	room := &models.Room{RoomNumber: "101", Type: "Single", PricePerNight: decimal.NewFromInt(50), Status: models.RoomStatusAvailable}
	require.NoError(t, st.CreateRoom(ctx, room))

	stranger := &models.Room{ID: 42, RoomNumber: "999", Type: "Suite", PricePerNight: decimal.NewFromInt(500)}
	assert.ErrorIs(t, st.UpdateRoom(ctx, stranger), ErrNotFound)

	rooms, err := st.ListRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "101", rooms[0].RoomNumber)
}

func TestUpdateReplacesAllFieldsAndKeepsID(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	room := &models.Room{RoomNumber: "101", Type: "Single", PricePerNight: decimal.NewFromInt(50), Status: models.RoomStatusAvailable}
	require.NoError(t, st.CreateRoom(ctx, room))

	updated := &models.Room{ID: room.ID, RoomNumber: "101A", Type: "Double", PricePerNight: decimal.NewFromInt(80), Status: models.RoomStatusOccupied}
	require.NoError(t, st.UpdateRoom(ctx, updated))

	got, err := st.GetRoom(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, room.ID, got.ID)
	assert.Equal(t, "101A", got.RoomNumber)
	assert.Equal(t, "Double", got.Type)
	assert.Equal(t, models.RoomStatusOccupied, got.Status)
	assert.Equal(t, room.CreatedAt, got.CreatedAt)
}

func TestDeleteRemovesRecord(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	client := &models.Client{Name: "John Doe", ContactInfo: "john@example.com"}
	require.NoError(t, st.CreateClient(ctx, client))

	require.NoError(t, st.DeleteClient(ctx, client.ID))

	_, err := st.GetClient(ctx, client.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting again is a NotFound no-op
	assert.ErrorIs(t, st.DeleteClient(ctx, client.ID), ErrNotFound)
}

func TestListOrderedByIDAndTracksLength(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	for _, name := range []string{"Linen", "Toiletries", "Kitchen"} {
		require.NoError(t, st.CreateCategory(ctx, &models.Category{Name: name}))
	}

	categories, err := st.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	for i := 1; i < len(categories); i++ {
		assert.Less(t, categories[i-1].ID, categories[i].ID)
	}

	require.NoError(t, st.DeleteCategory(ctx, categories[1].ID))
	categories, err = st.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestConcurrentCreatesAssignDistinctIDs(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	const n = 50
	ids := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			client := &models.Client{Name: fmt.Sprintf("Guest %d", i)}
			if err := st.CreateClient(ctx, client); err == nil {
				ids <- client.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	// the counter never skips: n creates assign exactly 1..n
	for id := int64(1); id <= n; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}

	clients, err := st.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, n)
}

func TestBookingDetailsJoinsRoomAndClient(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	room := &models.Room{RoomNumber: "101", Type: "Single", PricePerNight: decimal.NewFromInt(100)}
	require.NoError(t, st.CreateRoom(ctx, room))

	client := &models.Client{Name: "John Doe", ContactInfo: "john@example.com"}
	require.NoError(t, st.CreateClient(ctx, client))

	booking := &models.Booking{
		RoomID:       room.ID,
		ClientID:     client.ID,
		CheckInDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		TotalPrice:   decimal.NewFromInt(200000),
		Status:       models.BookingStatusBooked,
	}
	require.NoError(t, st.CreateBooking(ctx, booking))

	details, err := st.ListBookingDetails(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, booking.ID, details[0].ID)
	assert.Equal(t, "101", details[0].RoomNumber)
	assert.Equal(t, "Single", details[0].RoomType)
	assert.Equal(t, "John Doe", details[0].ClientName)
	assert.True(t, details[0].TotalPrice.Equal(decimal.NewFromInt(200000)))
}

func TestBookingDetailsDanglingReferenceShowsPlaceholder(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	room := &models.Room{RoomNumber: "101", Type: "Single", PricePerNight: decimal.NewFromInt(100)}
	require.NoError(t, st.CreateRoom(ctx, room))

	client := &models.Client{Name: "John Doe"}
	require.NoError(t, st.CreateClient(ctx, client))

	booking := &models.Booking{
		RoomID:       room.ID,
		ClientID:     client.ID,
		CheckInDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		TotalPrice:   decimal.NewFromInt(200000),
		Status:       models.BookingStatusBooked,
	}
	require.NoError(t, st.CreateBooking(ctx, booking))

	// Deleting the room must not hide the booking from the ledger
	require.NoError(t, st.DeleteRoom(ctx, room.ID))

	details, err := st.ListBookingDetails(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, models.FieldPlaceholder, details[0].RoomNumber)
	assert.Equal(t, models.FieldPlaceholder, details[0].RoomType)
	assert.Equal(t, "John Doe", details[0].ClientName)
}

func TestBookingDetailsOrderedByBookingID(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		booking := &models.Booking{
			RoomID:       1,
			ClientID:     1,
			CheckInDate:  time.Date(2026, 9, 1+i, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2026, 9, 2+i, 0, 0, 0, 0, time.UTC),
			TotalPrice:   decimal.NewFromInt(int64(1000 * (i + 1))),
			Status:       models.BookingStatusBooked,
		}
		require.NoError(t, st.CreateBooking(ctx, booking))
	}

	details, err := st.ListBookingDetails(ctx)
	require.NoError(t, err)
	require.Len(t, details, 3)
	for i := 1; i < len(details); i++ {
		assert.Less(t, details[i-1].ID, details[i].ID)
	}
}
