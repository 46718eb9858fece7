package tasklist

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/randalmurphal/tasklist/notify"
	"github.com/randalmurphal/tasklist/task"
)

// Patch describes an edit to an existing task.
type Patch struct {
	// Title replaces the title when non-nil and non-empty.
	// An empty title keeps the current one.
	Title *string

	// Deadline is applied to the current deadline. The zero value keeps it.
	Deadline task.DeadlineChange
}

// Registry owns the tasks of one session in insertion order, together with
// the counter for the next id. Ids start at 1 and are never reused, even
// after the task holding one is deleted.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	tasks    []task.Task
	nextID   int
	now      func() time.Time
	notifier notify.Notifier
	logger   *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock sets the source of task creation times.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// WithNotifier sets the notifier that receives task events. Without one,
// the registry uses the notifier carried by the operation's context, if any.
func WithNotifier(n notify.Notifier) Option {
	return func(r *Registry) {
		r.notifier = n
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		nextID: 1,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add creates a task with the next id and appends it.
// An empty title returns a *ValidationError and leaves the registry unchanged.
func (r *Registry) Add(ctx context.Context, title string, deadline task.Deadline) (task.Task, error) {
	if title == "" {
		return task.Task{}, &ValidationError{Field: FieldTitle, Reason: "cannot be empty"}
	}

	t := task.New(r.nextID, title, deadline, r.now())
	r.tasks = append(r.tasks, t)
	r.nextID++

	r.logger.Debug("task added", "task_id", t.ID, "title", t.Title)
	r.emit(ctx, notify.Event{
		Type:     notify.EventTaskAdded,
		TaskID:   t.ID,
		Message:  fmt.Sprintf("task %d added", t.ID),
		Metadata: map[string]any{"title": t.Title, "deadline": deadlineMeta(t.Deadline)},
	})
	return t, nil
}

// FindByID returns the task with the given id.
func (r *Registry) FindByID(id int) (task.Task, bool) {
	if i := r.indexOf(id); i >= 0 {
		return r.tasks[i], true
	}
	return task.Task{}, false
}

// Get is FindByID for callers that want an error: an unknown id returns a
// *TaskError wrapping ErrNotFound.
func (r *Registry) Get(id int) (task.Task, error) {
	t, ok := r.FindByID(id)
	if !ok {
		return task.Task{}, &TaskError{Op: "find", ID: id, Err: ErrNotFound}
	}
	return t, nil
}

// ToggleComplete flips the status of a task and returns the new status.
func (r *Registry) ToggleComplete(ctx context.Context, id int) (task.Status, error) {
	i := r.indexOf(id)
	if i < 0 {
		return "", &TaskError{Op: "toggle", ID: id, Err: ErrNotFound}
	}

	t := &r.tasks[i]
	t.Status = t.Status.Toggle()

	r.logger.Debug("task toggled", "task_id", id, "status", t.Status)
	r.emit(ctx, notify.Event{
		Type:     notify.EventTaskToggled,
		TaskID:   id,
		Message:  fmt.Sprintf("task %d is now %s", id, t.Status),
		Metadata: map[string]any{"status": string(t.Status)},
	})
	return t.Status, nil
}

// Update applies patch to a task and returns the result.
func (r *Registry) Update(ctx context.Context, id int, patch Patch) (task.Task, error) {
	i := r.indexOf(id)
	if i < 0 {
		return task.Task{}, &TaskError{Op: "update", ID: id, Err: ErrNotFound}
	}

	t := &r.tasks[i]
	if patch.Title != nil && *patch.Title != "" {
		t.Title = *patch.Title
	}
	t.Deadline = patch.Deadline.Apply(t.Deadline)

	r.logger.Debug("task updated", "task_id", id, "deadline_change", patch.Deadline.Kind)
	r.emit(ctx, notify.Event{
		Type:    notify.EventTaskUpdated,
		TaskID:  id,
		Message: fmt.Sprintf("task %d updated", id),
		Metadata: map[string]any{
			"title":           t.Title,
			"deadline":        deadlineMeta(t.Deadline),
			"deadline_change": patch.Deadline.Kind.String(),
		},
	})
	return *t, nil
}

// Delete removes a task and returns it. The order of the remaining tasks
// is preserved and the id is not handed out again.
func (r *Registry) Delete(ctx context.Context, id int) (task.Task, error) {
	i := r.indexOf(id)
	if i < 0 {
		return task.Task{}, &TaskError{Op: "delete", ID: id, Err: ErrNotFound}
	}

	removed := r.tasks[i]
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)

	r.logger.Debug("task deleted", "task_id", id)
	r.emit(ctx, notify.Event{
		Type:     notify.EventTaskDeleted,
		TaskID:   id,
		Message:  fmt.Sprintf("task %d deleted", id),
		Metadata: map[string]any{"title": removed.Title},
	})
	return removed, nil
}

// List returns a copy of all tasks in insertion order.
func (r *Registry) List() []task.Task {
	out := make([]task.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// Len returns the number of tasks.
func (r *Registry) Len() int {
	return len(r.tasks)
}

// NextID returns the id the next successful Add will assign.
func (r *Registry) NextID() int {
	return r.nextID
}

func (r *Registry) indexOf(id int) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// emit delivers an event. Notifier failures are logged, never returned.
func (r *Registry) emit(ctx context.Context, event notify.Event) {
	n := r.notifier
	if n == nil {
		n = notify.NotifierFromContext(ctx)
	}
	if n == nil {
		return
	}

	if event.Severity == "" {
		event.Severity = notify.SeverityInfo
	}
	event.Timestamp = r.now()

	if err := n.Notify(ctx, event); err != nil {
		r.logger.Warn("notify failed", "event_type", event.Type, "task_id", event.TaskID, "error", err)
	}
}

func deadlineMeta(d task.Deadline) any {
	if text, ok := d.Value(); ok {
		return text
	}
	return nil
}
