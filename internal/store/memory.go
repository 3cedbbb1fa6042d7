package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"guesthouse-service/internal/models"
)

// MemStore implements Store with mutex-guarded maps and per-entity
// auto-increment counters. It backs the "memory" store backend and is the
// injectable fake for service and handler tests.
type MemStore struct {
	mu sync.Mutex

	inventory  map[int64]models.InventoryItem
	rooms      map[int64]models.Room
	clients    map[int64]models.Client
	categories map[int64]models.Category
	bookings   map[int64]models.Booking

	nextInventoryID int64
	nextRoomID      int64
	nextClientID    int64
	nextCategoryID  int64
	nextBookingID   int64
}

// NewMemStore creates an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{
		inventory:  make(map[int64]models.InventoryItem),
		rooms:      make(map[int64]models.Room),
		clients:    make(map[int64]models.Client),
		categories: make(map[int64]models.Category),
		bookings:   make(map[int64]models.Booking),
	}
}

// Healthcheck always succeeds for the in-memory store
func (s *MemStore) Healthcheck(ctx context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemStore) Close() error {
	return nil
}

// ListInventoryItems returns all inventory items ordered by id
func (s *MemStore) ListInventoryItems(ctx context.Context) ([]models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.InventoryItem, 0, len(s.inventory))
	for _, item := range s.inventory {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// GetInventoryItem returns an inventory item by ID
func (s *MemStore) GetInventoryItem(ctx context.Context, id int64) (*models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.inventory[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

// CreateInventoryItem assigns the next id and stores the item
func (s *MemStore) CreateInventoryItem(ctx context.Context, item *models.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextInventoryID++
	item.ID = s.nextInventoryID
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	s.inventory[item.ID] = *item
	return nil
}

// UpdateInventoryItem replaces a stored item, keeping its creation time
func (s *MemStore) UpdateInventoryItem(ctx context.Context, item *models.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.inventory[item.ID]
	if !ok {
		return ErrNotFound
	}
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now()
	s.inventory[item.ID] = *item
	return nil
}

// DeleteInventoryItem removes an item by ID
func (s *MemStore) DeleteInventoryItem(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inventory[id]; !ok {
		return ErrNotFound
	}
	delete(s.inventory, id)
	return nil
}

// ListRooms returns all rooms ordered by id
func (s *MemStore) ListRooms(ctx context.Context) ([]models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rooms := make([]models.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms, nil
}

// GetRoom returns a room by ID
func (s *MemStore) GetRoom(ctx context.Context, id int64) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &room, nil
}

// CreateRoom assigns the next id and stores the room
func (s *MemStore) CreateRoom(ctx context.Context, room *models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextRoomID++
	room.ID = s.nextRoomID
	room.CreatedAt = time.Now()
	room.UpdatedAt = room.CreatedAt
	s.rooms[room.ID] = *room
	return nil
}

// UpdateRoom replaces a stored room, keeping its creation time
func (s *MemStore) UpdateRoom(ctx context.Context, room *models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.rooms[room.ID]
	if !ok {
		return ErrNotFound
	}
	room.CreatedAt = existing.CreatedAt
	room.UpdatedAt = time.Now()
	s.rooms[room.ID] = *room
	return nil
}

// DeleteRoom removes a room by ID
func (s *MemStore) DeleteRoom(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[id]; !ok {
		return ErrNotFound
	}
	delete(s.rooms, id)
	return nil
}

// ListClients returns all clients ordered by id
func (s *MemStore) ListClients(ctx context.Context) ([]models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients := make([]models.Client, 0, len(s.clients))
	for _, client := range s.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].ID < clients[j].ID })
	return clients, nil
}

// GetClient returns a client by ID
func (s *MemStore) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &client, nil
}

// CreateClient assigns the next id and stores the client
func (s *MemStore) CreateClient(ctx context.Context, client *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextClientID++
	client.ID = s.nextClientID
	client.CreatedAt = time.Now()
	client.UpdatedAt = client.CreatedAt
	s.clients[client.ID] = *client
	return nil
}

// UpdateClient replaces a stored client, keeping its creation time
func (s *MemStore) UpdateClient(ctx context.Context, client *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.clients[client.ID]
	if !ok {
		return ErrNotFound
	}
	client.CreatedAt = existing.CreatedAt
	client.UpdatedAt = time.Now()
	s.clients[client.ID] = *client
	return nil
}

// DeleteClient removes a client by ID
func (s *MemStore) DeleteClient(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[id]; !ok {
		return ErrNotFound
	}
	delete(s.clients, id)
	return nil
}

// ListCategories returns all categories ordered by id
func (s *MemStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]models.Category, 0, len(s.categories))
	for _, category := range s.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

// GetCategory returns a category by ID
func (s *MemStore) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &category, nil
}

// CreateCategory assigns the next id and stores the category
func (s *MemStore) CreateCategory(ctx context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCategoryID++
	category.ID = s.nextCategoryID
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	s.categories[category.ID] = *category
	return nil
}

// UpdateCategory replaces a stored category, keeping its creation time
func (s *MemStore) UpdateCategory(ctx context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.categories[category.ID]
	if !ok {
		return ErrNotFound
	}
	category.CreatedAt = existing.CreatedAt
	category.UpdatedAt = time.Now()
	s.categories[category.ID] = *category
	return nil
}

// DeleteCategory removes a category by ID
func (s *MemStore) DeleteCategory(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return ErrNotFound
	}
	delete(s.categories, id)
	return nil
}

// ListBookings returns all bookings ordered by id
func (s *MemStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := s.sortedBookings()
	return bookings, nil
}

// GetBooking returns a booking by ID
func (s *MemStore) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &booking, nil
}

// CreateBooking assigns the next id and stores the booking. Foreign keys
// are stored as given; existence is not checked here.
func (s *MemStore) CreateBooking(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextBookingID++
	booking.ID = s.nextBookingID
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	s.bookings[booking.ID] = *booking
	return nil
}

// UpdateBooking replaces a stored booking, keeping its creation time
func (s *MemStore) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.bookings[booking.ID]
	if !ok {
		return ErrNotFound
	}
	booking.CreatedAt = existing.CreatedAt
	booking.UpdatedAt = time.Now()
	s.bookings[booking.ID] = *booking
	return nil
}

// DeleteBooking removes a booking by ID
func (s *MemStore) DeleteBooking(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(s.bookings, id)
	return nil
}

// ListBookingDetails resolves room and client display fields by manual
// lookup, substituting placeholders for dangling references. Matches the
// left-join policy of the relational backend.
func (s *MemStore) ListBookingDetails(ctx context.Context) ([]models.BookingDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := s.sortedBookings()
	details := make([]models.BookingDetail, 0, len(bookings))
	for _, booking := range bookings {
		detail := models.BookingDetail{
			Booking:           booking,
			RoomNumber:        models.FieldPlaceholder,
			RoomType:          models.FieldPlaceholder,
			ClientName:        models.FieldPlaceholder,
			ClientContactInfo: models.FieldPlaceholder,
		}
		if room, ok := s.rooms[booking.RoomID]; ok {
			detail.RoomNumber = room.RoomNumber
			detail.RoomType = room.Type
		}
		if client, ok := s.clients[booking.ClientID]; ok {
			detail.ClientName = client.Name
			detail.ClientContactInfo = client.ContactInfo
		}
		details = append(details, detail)
	}
	return details, nil
}

// sortedBookings must be called with the lock held
func (s *MemStore) sortedBookings() []models.Booking {
	bookings := make([]models.Booking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		bookings = append(bookings, booking)
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })
	return bookings
}
