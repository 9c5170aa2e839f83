package services

import (
	"formdesk/pkg/rabbitmq"

	"github.com/rs/zerolog"
)

// Event types published by the services.
const (
	EventTodoCreated      = "todo.created"
	EventContactSubmitted = "contact.submitted"
	EventContactDeleted   = "contact.deleted"
)

// EventPublisher is satisfied by *rabbitmq.Client.
type EventPublisher interface {
	PublishEvent(event rabbitmq.Event) error
}

// publish is best-effort: a missing or failing publisher never fails the
// request that produced the event.
func publish(publisher EventPublisher, log zerolog.Logger, eventType string, data interface{}) {
	if publisher == nil {
		log.Debug().Str("type", eventType).Msg("event publisher not configured, skipping event")
		return
	}
	event := rabbitmq.NewEvent(eventType, data)
	if err := publisher.PublishEvent(event); err != nil {
		log.Warn().Err(err).Str("type", eventType).Str("event_id", event.ID).Msg("failed to publish event")
	}
}
