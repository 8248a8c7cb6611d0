// pkg/core/notification.go
package core

import "time"

// Level classifies a user-visible notification
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Event names the arena action that raised a notification
type Event string

const (
	EventEnqueue         Event = "enqueue"
	EventDeploy          Event = "deploy"
	EventEmptyQueue      Event = "empty_queue"
	EventQueueCleared    Event = "queue_cleared"
	EventFieldCleared    Event = "battlefield_cleared"
	EventReset           Event = "reset"
	EventCastleDestroyed Event = "castle_destroyed"
)

// Notification is a transient toast shown to the player
type Notification struct {
	Event       Event     `json:"event"`
	Level       Level     `json:"level"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	At          time.Time `json:"at"`
}
