package task

import "time"

// Status represents the completion state of a task.
type Status string

const (
	Incomplete Status = "Incomplete"
	Complete   Status = "Complete"
)

// Toggle returns the opposite status.
func (s Status) Toggle() Status {
	if s == Complete {
		return Incomplete
	}
	return Complete
}

// IsComplete reports whether the status is Complete.
func (s Status) IsComplete() bool {
	return s == Complete
}

// Symbol returns the check mark shown in task listings.
func (s Status) Symbol() string {
	if s == Complete {
		return "✓"
	}
	return "✗"
}

// ASCIISymbol is Symbol for terminals without unicode support.
func (s Status) ASCIISymbol() string {
	if s == Complete {
		return "x"
	}
	return " "
}

// Task is a single to-do item.
type Task struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	Deadline  Deadline  `json:"deadline"`
	Status    Status    `json:"status"`
}

// New creates an incomplete task.
func New(id int, title string, deadline Deadline, createdAt time.Time) Task {
	return Task{
		ID:        id,
		Title:     title,
		CreatedAt: createdAt,
		Deadline:  deadline,
		Status:    Incomplete,
	}
}
