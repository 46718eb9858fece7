package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/randalmurphal/tasklist"
	"github.com/randalmurphal/tasklist/prompt"
	"github.com/randalmurphal/tasklist/task"
)

// menuItem is one numbered menu entry. Exit has a nil run.
type menuItem struct {
	Key   int
	Label string
	run   func(context.Context) error
}

func (s *Shell) menu() []menuItem {
	return []menuItem{
		{Key: 1, Label: "add task", run: s.add},
		{Key: 2, Label: "view all tasks", run: s.viewAll},
		{Key: 3, Label: "toggle task status", run: s.toggle},
		{Key: 4, Label: "update task", run: s.update},
		{Key: 5, Label: "delete task", run: s.remove},
		{Key: 6, Label: "exit"},
	}
}

func (s *Shell) add(ctx context.Context) error {
	title, err := s.readLine("Enter the task title: ")
	if err != nil {
		return err
	}
	if title == "" {
		// Let the registry reject it so the message comes from one place.
		_, err := s.reg.Add(ctx, title, task.None())
		return err
	}

	deadline, err := s.readLine("Enter a deadline (optional, e.g., '2025-12-31'): ")
	if err != nil {
		return err
	}

	t, err := s.reg.Add(ctx, title, task.Some(deadline))
	if err != nil {
		return err
	}
	s.printf("Task '%s' added successfully.\n", t.Title)
	return nil
}

func (s *Shell) viewAll(ctx context.Context) error {
	out, err := s.prompts.LoadWithVars(prompt.Tasks, map[string]any{
		"Tasks": s.reg.List(),
	})
	if err != nil {
		return fmt.Errorf("render tasks: %w", err)
	}
	s.printf("%s", out)
	return nil
}

func (s *Shell) toggle(ctx context.Context) error {
	id, err := s.readID("Enter the task ID to toggle status: ")
	if err != nil {
		return err
	}

	status, err := s.reg.ToggleComplete(ctx, id)
	if err != nil {
		return err
	}
	s.printf("Task %d status changed to '%s'.\n", id, status)
	return nil
}

func (s *Shell) update(ctx context.Context) error {
	id, err := s.readID("Enter the ID of the task to update: ")
	if err != nil {
		return err
	}

	current, err := s.reg.Get(id)
	if err != nil {
		return err
	}

	title, err := s.readLine(fmt.Sprintf(
		"Enter new title for task %d (or press Enter to keep '%s'): ", id, current.Title))
	if err != nil {
		return err
	}

	input, err := s.readLine(fmt.Sprintf(
		"Enter new deadline for task %d (e.g., '2025-12-31'), or type '%s' to remove, or press Enter to keep current ('%s'): ",
		id, s.clearKeyword, current.Deadline))
	if err != nil {
		return err
	}

	patch := tasklist.Patch{Deadline: s.deadlineChange(input)}
	if title != "" {
		patch.Title = &title
	}

	if _, err := s.reg.Update(ctx, id, patch); err != nil {
		return err
	}
	s.printf("Task %d updated successfully.\n", id)
	return nil
}

func (s *Shell) remove(ctx context.Context) error {
	id, err := s.readID("Enter the ID of the task to delete: ")
	if err != nil {
		return err
	}

	removed, err := s.reg.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.printf("Task %d ('%s') deleted successfully.\n", id, removed.Title)
	return nil
}

func (s *Shell) deadlineChange(input string) task.DeadlineChange {
	switch {
	case input == "":
		return task.KeepDeadline()
	case strings.EqualFold(input, s.clearKeyword):
		return task.ClearDeadline()
	default:
		return task.SetDeadline(input)
	}
}
