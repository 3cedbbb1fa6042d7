package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"guesthouse-service/internal/models"
	"guesthouse-service/internal/service"
	"guesthouse-service/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(st store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(
		service.NewInventoryService(st, nil),
		service.NewRoomService(st, nil, nil),
		service.NewClientService(st, nil, nil),
		service.NewCategoryService(st, nil),
		service.NewBookingService(st, nil, nil),
		st,
	)

	router := gin.New()
	handler.SetupRoutes(router)
	return router
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateInventoryItemReturns201(t *testing.T) {
	router := newTestRouter(store.NewMemStore())

	w := perform(router, http.MethodPost, "/api/inventory", `{
		"name": "Bath towels",
		"category_id": 1,
		"quantity": 40,
		"unit": "pcs",
		"cost_price": 12.5,
		"selling_price": 20,
		"reorder_level": 10
	}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var item models.InventoryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, int64(1), item.ID)
	assert.Equal(t, "Bath towels", item.Name)

	// money fields must serialize as JSON numbers, not strings
	assert.Contains(t, w.Body.String(), `"cost_price":12.5`)
	assert.Contains(t, w.Body.String(), `"quantity":40`)
}

func TestCreateInventoryItemMissingFieldReturns400(t *testing.T) {
	router := newTestRouter(store.NewMemStore())

	w := perform(router, http.MethodPost, "/api/inventory", `{"name": "Bath towels"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"message"`)
}

func TestGetInventoryItemUnknownIDReturns404(t *testing.T) {
	router := newTestRouter(store.NewMemStore())

	w := perform(router, http.MethodGet, "/api/inventory/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message": "record not found"}`, w.Body.String())
}

func TestNonNumericIDReturns400(t *testing.T) {
	router := newTestRouter(store.NewMemStore())

	w := perform(router, http.MethodGet, "/api/rooms/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoomLifecycle(t *testing.T) {
	router := newTestRouter(store.NewMemStore())

	w := perform(router, http.MethodPost, "/api/rooms", `{
		"room_number": "101",
		"type": "Single",
		"price_per_night": 75.5
	}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var room models.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
	assert.Equal(t, models.RoomStatusAvailable, room.Status, "status defaults when omitted")

	w = perform(router, http.MethodPut, "/api/rooms/1", `{
		"room_number": "101A",
		"type": "Double",
		"price_per_night": 95,
		"status": "Occupied"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(router, http.MethodGet, "/api/rooms/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"room_number":"101A"`)
	assert.Contains(t, w.Body.String(), `"price_per_night":95`)

	w = perform(router, http.MethodDelete, "/api/rooms/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = perform(router, http.MethodGet, "/api/rooms/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRoomsReturnsArray(t *testing.T) {
	router := newTestRouter(store.NewMemStore())

	w := perform(router, http.MethodGet, "/api/rooms", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestBookingViewEndpoint(t *testing.T) {
	router := newTestRouter(store.NewMemStore())

	w := perform(router, http.MethodPost, "/api/rooms", `{
		"room_number": "101",
		"type": "Single",
		"price_per_night": 100
	}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(router, http.MethodPost, "/api/clients", `{
		"name": "John Doe",
		"contact_info": "john@example.com"
	}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(router, http.MethodPost, "/api/bookings/rooms", `{
		"room_id": 1,
		"client_id": 1,
		"check_in_date": "2026-09-01T00:00:00Z",
		"check_out_date": "2026-09-03T00:00:00Z",
		"total_price": 200000
	}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(router, http.MethodGet, "/api/bookings/rooms", "")
	require.Equal(t, http.StatusOK, w.Code)

	var details []models.BookingDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
	require.Len(t, details, 1)
	assert.Equal(t, "101", details[0].RoomNumber)
	assert.Equal(t, "John Doe", details[0].ClientName)
	assert.Contains(t, w.Body.String(), `"total_price":200000`)

	// deleting the room leaves the booking visible with placeholders
	w = perform(router, http.MethodDelete, "/api/rooms/1", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = perform(router, http.MethodGet, "/api/bookings/rooms", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"room_number":"N/A"`)
	assert.Contains(t, w.Body.String(), `"client_name":"John Doe"`)
}

func TestUpdateBookingUnknownIDReturns404(t *testing.T) {
	router := newTestRouter(store.NewMemStore())

	w := perform(router, http.MethodPut, "/api/bookings/rooms/42", `{
		"room_id": 1,
		"client_id": 1,
		"check_in_date": "2026-09-01T00:00:00Z",
		"check_out_date": "2026-09-03T00:00:00Z",
		"total_price": 1000
	}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBookingUnknownIDReturns404(t *testing.T) {
	router := newTestRouter(store.NewMemStore())

	w := perform(router, http.MethodDelete, "/api/bookings/rooms/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// faultyStore simulates a persistence fault on the booking view read
type faultyStore struct {
	store.Store
}

func (f *faultyStore) ListBookingDetails(ctx context.Context) ([]models.BookingDetail, error) {
	return nil, errors.New("dial tcp: connection refused")
}

func TestStorageFaultReturnsGeneric500(t *testing.T) {
	router := newTestRouter(&faultyStore{Store: store.NewMemStore()})

	w := perform(router, http.MethodGet, "/api/bookings/rooms", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// the driver fault is logged, never echoed to the caller
	assert.JSONEq(t, `{"message": "internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestHealthAndReadiness(t *testing.T) {
	router := newTestRouter(store.NewMemStore())

	w := perform(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(router, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
