package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"guesthouse-service/internal/models"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// EventPublisher handles publishing entity-change events
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishEntityChanged publishes an entity-change event keyed by entity and
// id so changes to one record stay ordered within a partition.
func (ep *EventPublisher) PublishEntityChanged(ctx context.Context, eventType, entity string, entityID int64) error {
	event := &models.EntityChangedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: eventType,
			Timestamp: time.Now(),
		},
		Entity:   entity,
		EntityID: entityID,
	}

	key := fmt.Sprintf("%s-%d", entity, entityID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// EventHandler routes incoming entity-change events
type EventHandler struct {
	onEntityChanged func(context.Context, *models.EntityChangedEvent) error
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// OnEntityChanged registers a handler for entity-change events
func (eh *EventHandler) OnEntityChanged(handler func(context.Context, *models.EntityChangedEvent) error) {
	eh.onEntityChanged = handler
}

// HandleMessage routes messages to the appropriate handler
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	switch baseEvent.EventType {
	case models.EventTypeEntityCreated, models.EventTypeEntityUpdated, models.EventTypeEntityDeleted:
		if eh.onEntityChanged != nil {
			var event models.EntityChangedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal entity change event: %w", err)
			}
			return eh.onEntityChanged(ctx, &event)
		}

	default:
		log.Printf("Unhandled event type: %s", baseEvent.EventType)
	}

	return nil
}
