package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is the contract for anything published on the workspace bus.
type Event interface {
	// EventType returns the unique code for this event (e.g. "copilot_query").
	EventType() string

	// WorkspaceID returns the workspace the event belongs to.
	WorkspaceID() uuid.UUID

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// WorkspaceEvent is the standard Event implementation used across the
// service layer.
type WorkspaceEvent struct {
	Type        string
	WorkspaceId uuid.UUID
	Data        map[string]interface{}
	OccurredAt  time.Time
}

func NewWorkspaceEvent(eventType string, workspaceId uuid.UUID, data map[string]interface{}) WorkspaceEvent {
	return WorkspaceEvent{
		Type:        eventType,
		WorkspaceId: workspaceId,
		Data:        data,
		OccurredAt:  time.Now(),
	}
}

func (e WorkspaceEvent) EventType() string {
	return e.Type
}

func (e WorkspaceEvent) WorkspaceID() uuid.UUID {
	return e.WorkspaceId
}

func (e WorkspaceEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e WorkspaceEvent) Timestamp() time.Time {
	return e.OccurredAt
}
