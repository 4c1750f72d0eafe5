package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered    EventType = "user_registered"
	EventUserUpdated       EventType = "user_updated"
	EventUserDeleted       EventType = "user_deleted"
	EventLaboratoryCreated EventType = "laboratory_created"
	EventLaboratoryUpdated EventType = "laboratory_updated"
	EventLaboratoryDeleted EventType = "laboratory_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	ResourceID string      `json:"resource_id"`
	ActorID    string      `json:"actor_id,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LaboratoryCreatedPayload payload.
type LaboratoryCreatedPayload struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// LaboratoryDeletedPayload payload.
type LaboratoryDeletedPayload struct {
	Name string `json:"name"`
}
