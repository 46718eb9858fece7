package tasklist

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a Registry, and every input error
// produced by the shell, matches exactly one of these with errors.Is.
var (
	// ErrValidation indicates rejected input, such as an empty title.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates no task has the requested id.
	ErrNotFound = errors.New("task not found")

	// ErrParse indicates text could not be read as the number required.
	ErrParse = errors.New("invalid number")
)

// Field names used in ValidationError and ParseError.
const (
	FieldTitle  = "title"
	FieldTaskID = "task ID"
	FieldChoice = "choice"
)

// ValidationError reports a field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Unwrap returns ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// TaskError wraps a failed registry operation on a specific task.
type TaskError struct {
	Op  string // add, toggle, update, delete
	ID  int
	Err error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("%s task %d: %v", e.Op, e.ID, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// ParseError reports text that could not be read as a number.
type ParseError struct {
	Field string
	Input string
	Err   error // underlying cause, may be nil
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Input, e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrParse as a match in addition to the wrapped cause.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsParse reports whether err is a parse error.
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}
