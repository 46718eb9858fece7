// Package task defines the to-do item model.
//
// Core types:
//   - Task: A single to-do item with id, title, creation time, deadline and status
//   - Status: Completion state (Incomplete or Complete)
//   - Deadline: An optional free-form deadline
//   - DeadlineChange: A keep/clear/set instruction applied to a Deadline
//
// Example usage:
//
//	t := task.Task{ID: 1, Title: "Pay bills", Deadline: task.Some("2025-12-31")}
//	t.Deadline = task.ClearDeadline().Apply(t.Deadline)
//	t.Status = t.Status.Toggle()
package task
