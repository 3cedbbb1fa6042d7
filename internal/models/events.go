package models

import "time"

// Event types
const (
	EventTypeEntityCreated = "ENTITY_CREATED"
	EventTypeEntityUpdated = "ENTITY_UPDATED"
	EventTypeEntityDeleted = "ENTITY_DELETED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// EntityChangedEvent is published after every successful mutation so other
// instances can drop stale cached views.
type EntityChangedEvent struct {
	BaseEvent
	Entity   string `json:"entity"`
	EntityID int64  `json:"entity_id"`
}
