package events

import "time"

// Event defines the contract for all domain events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "ARTIFACT_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

// New stamps data with the current time. The timestamp is also copied into
// the payload so subscribers can recover it.
func New(eventType string, data map[string]interface{}) BaseEvent {
	now := time.Now().UTC()
	if data == nil {
		data = make(map[string]interface{})
	}
	data["occurred_at"] = now.Format(time.RFC3339Nano)
	return BaseEvent{Type: eventType, Data: data, OccurredAt: now}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
