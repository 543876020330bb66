package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents what happened to an entity
type EventType string

const (
	EventTypeUpdated EventType = "updated"
	EventTypeError   EventType = "error"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeReport EntityType = "report"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "report.updated"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "report"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// ErrorPayload is the payload of an error event
type ErrorPayload struct {
	Month   string `json:"month"`
	Message string `json:"message"`
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// ReportUpdated creates a report.updated event
func ReportUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeReport, payload)
}

// ReportError creates a report.error event
func ReportError(month, message string) Event {
	return NewEvent(EventTypeError, EntityTypeReport, ErrorPayload{Month: month, Message: message})
}
