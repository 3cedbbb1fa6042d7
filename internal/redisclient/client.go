package redisclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"guesthouse-service/internal/models"

	"github.com/go-redis/redis/v8"
)

const bookingDetailsKey = "cache:booking_details"

// Client caches the detailed-bookings read, the one expensive query in the
// system. Everything else goes straight to the store.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewClient creates a new Redis cache client
func NewClient(addr, password string, db int, ttl time.Duration) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// GetBookingDetails returns the cached view. The second return value is
// false on a cache miss.
func (c *Client) GetBookingDetails(ctx context.Context) ([]models.BookingDetail, bool, error) {
	payload, err := c.rdb.Get(ctx, bookingDetailsKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var details []models.BookingDetail
	if err := json.Unmarshal(payload, &details); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached booking details: %w", err)
	}
	return details, true, nil
}

// SetBookingDetails caches the view with the configured TTL
func (c *Client) SetBookingDetails(ctx context.Context, details []models.BookingDetail) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to encode booking details: %w", err)
	}
	return c.rdb.Set(ctx, bookingDetailsKey, payload, c.ttl).Err()
}

// InvalidateBookingDetails drops the cached view
func (c *Client) InvalidateBookingDetails(ctx context.Context) error {
	return c.rdb.Del(ctx, bookingDetailsKey).Err()
}
