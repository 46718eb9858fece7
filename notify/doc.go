// Package notify provides notification services for task list events.
//
// Core types:
//   - Notifier: Interface for receiving events
//   - Event: Notification event with type, task id, message, and metadata
//   - EventType: Type of event (task added, toggled, updated, deleted, ...)
//
// Implementations:
//   - LogNotifier: Logs events through slog
//   - MultiNotifier: Combines multiple notifiers
//   - NopNotifier: No-op notifier (for testing)
//
// Delivery is synchronous. Notifiers run on the caller's goroutine and
// must not spawn background work.
//
// Example usage:
//
//	notifier := notify.WithSession(notify.NewLogNotifier(logger), sessionID)
//	err := notifier.Notify(ctx, notify.Event{
//	    Type:    notify.EventTaskAdded,
//	    TaskID:  1,
//	    Message: "task added",
//	})
package notify
