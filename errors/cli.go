package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/randalmurphal/tasklist"
)

// CLIError wraps an error with user-friendly context and suggestions.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// ErrorMessenger provides customizable error messages.
// Implement this interface to reword what the shell prints.
type ErrorMessenger interface {
	// ValidationMessage returns the message and suggestion for rejected input.
	ValidationMessage(field, reason string) (message, suggestion string)

	// NotFoundMessage returns the message and suggestion for an unknown task id.
	NotFoundMessage(id int) (message, suggestion string)

	// InvalidNumberMessage returns the message and suggestion for a
	// non-numeric value where a number is required.
	InvalidNumberMessage(field, input string) (message, suggestion string)

	// InvalidChoiceMessage returns the message and suggestion for a menu
	// choice outside 1..maxChoice.
	InvalidChoiceMessage(input string, maxChoice int) (message, suggestion string)

	// ConfigErrorMessage returns the message and suggestion for bad settings.
	ConfigErrorMessage() (message, suggestion string)

	// InputErrorMessage returns the message and suggestion when the
	// console cannot be read or written.
	InputErrorMessage() (message, suggestion string)
}

// DefaultMessenger provides default error messages.
type DefaultMessenger struct{}

func (m DefaultMessenger) ValidationMessage(field, reason string) (string, string) {
	return fmt.Sprintf("Task %s %s.", field, reason), ""
}

func (m DefaultMessenger) NotFoundMessage(id int) (string, string) {
	return fmt.Sprintf("Error: Task with ID %d not found.", id),
		"View all tasks to see the available IDs."
}

func (m DefaultMessenger) InvalidNumberMessage(field, input string) (string, string) {
	return fmt.Sprintf("Invalid input. Please enter a valid number for the %s.", field), ""
}

func (m DefaultMessenger) InvalidChoiceMessage(input string, maxChoice int) (string, string) {
	return fmt.Sprintf("Invalid choice. Please enter a number between 1 and %d.", maxChoice), ""
}

func (m DefaultMessenger) ConfigErrorMessage() (string, string) {
	return "Invalid configuration.",
		"Check ~/.config/tasklist/config.yaml, .tasklist.yaml and TASKLIST_* environment variables."
}

func (m DefaultMessenger) InputErrorMessage() (string, string) {
	return "Could not read from the console.", ""
}

// WrapConfig configures error wrapping behavior.
type WrapConfig struct {
	Messenger ErrorMessenger
	MaxChoice int
}

// Option configures WrapConfig.
type Option func(*WrapConfig)

// WithMessenger sets a custom error messenger.
func WithMessenger(m ErrorMessenger) Option {
	return func(c *WrapConfig) {
		if m != nil {
			c.Messenger = m
		}
	}
}

// WithMaxChoice sets the highest valid menu choice reported in
// invalid-choice messages.
func WithMaxChoice(n int) Option {
	return func(c *WrapConfig) {
		c.MaxChoice = n
	}
}

func getConfig(opts []Option) *WrapConfig {
	cfg := &WrapConfig{
		Messenger: DefaultMessenger{},
		MaxChoice: 6,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Wrap converts a task list error into a *CLIError carrying the message the
// user should see. Errors of unknown kind are returned unchanged, and an
// existing *CLIError is returned as is.
func Wrap(err error, opts ...Option) error {
	if err == nil {
		return nil
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return err
	}

	cfg := getConfig(opts)
	messenger := cfg.Messenger

	var verr *tasklist.ValidationError
	if errors.As(err, &verr) {
		msg, suggestion := messenger.ValidationMessage(verr.Field, verr.Reason)
		return &CLIError{Err: err, Message: msg, Suggestion: suggestion}
	}

	var terr *tasklist.TaskError
	if errors.As(err, &terr) && errors.Is(err, tasklist.ErrNotFound) {
		msg, suggestion := messenger.NotFoundMessage(terr.ID)
		return &CLIError{Err: err, Message: msg, Suggestion: suggestion}
	}

	var perr *tasklist.ParseError
	if errors.As(err, &perr) {
		var msg, suggestion string
		if perr.Field == tasklist.FieldChoice {
			msg, suggestion = messenger.InvalidChoiceMessage(perr.Input, cfg.MaxChoice)
		} else {
			msg, suggestion = messenger.InvalidNumberMessage(perr.Field, perr.Input)
		}
		return &CLIError{Err: err, Message: msg, Suggestion: suggestion}
	}

	return err
}

// NewConfigError wraps a configuration failure for display.
func NewConfigError(err error, opts ...Option) error {
	msg, suggestion := getConfig(opts).Messenger.ConfigErrorMessage()
	if err == nil {
		return &CLIError{Err: ErrConfig, Message: msg, Suggestion: suggestion}
	}
	return &CLIError{
		Err:        fmt.Errorf("%w: %w", ErrConfig, err),
		Message:    msg,
		Details:    err.Error(),
		Suggestion: suggestion,
	}
}

// WrapInputError wraps a console read or write failure for display.
func WrapInputError(err error, opts ...Option) error {
	if err == nil {
		return nil
	}
	msg, suggestion := getConfig(opts).Messenger.InputErrorMessage()
	return &CLIError{
		Err:        fmt.Errorf("%w: %w", ErrInput, err),
		Message:    msg,
		Details:    err.Error(),
		Suggestion: suggestion,
	}
}
