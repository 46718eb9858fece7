package notify

import (
	"context"
	"time"
)

// =============================================================================
// Notification Types
// =============================================================================

// EventType represents the type of task list event.
type EventType string

// Event type constants.
const (
	EventSessionStarted EventType = "session_started"
	EventSessionEnded   EventType = "session_ended"
	EventTaskAdded      EventType = "task_added"
	EventTaskToggled    EventType = "task_toggled"
	EventTaskUpdated    EventType = "task_updated"
	EventTaskDeleted    EventType = "task_deleted"
)

// Severity constants for notifications.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Event describes a task list event for notification.
type Event struct {
	Type      EventType      `json:"type"`
	SessionID string         `json:"session_id,omitempty"`
	TaskID    int            `json:"task_id,omitempty"`
	Message   string         `json:"message"`
	Severity  string         `json:"severity"` // SeverityInfo, SeverityWarning, SeverityError
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// =============================================================================
// Notifier Interface
// =============================================================================

// Notifier receives task list events.
type Notifier interface {
	// Notify delivers an event. Delivery is synchronous; implementations
	// must return promptly and never start background work.
	Notify(ctx context.Context, event Event) error
}

// =============================================================================
// Context Injection
// =============================================================================

type serviceContextKey string

const notifierServiceKey serviceContextKey = "tasklist.notifier"

// WithNotifier adds a Notifier to the context.
func WithNotifier(ctx context.Context, n Notifier) context.Context {
	return context.WithValue(ctx, notifierServiceKey, n)
}

// NotifierFromContext extracts the Notifier from context.
// Returns nil if no notifier is configured.
func NotifierFromContext(ctx context.Context) Notifier {
	if n, ok := ctx.Value(notifierServiceKey).(Notifier); ok {
		return n
	}
	return nil
}

// WithSession returns a notifier that stamps sessionID onto every event
// that does not already carry one.
func WithSession(n Notifier, sessionID string) Notifier {
	return sessionNotifier{next: n, sessionID: sessionID}
}

type sessionNotifier struct {
	next      Notifier
	sessionID string
}

func (s sessionNotifier) Notify(ctx context.Context, event Event) error {
	if event.SessionID == "" {
		event.SessionID = s.sessionID
	}
	return s.next.Notify(ctx, event)
}
