package errors

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/randalmurphal/tasklist"
)

func TestCLIError(t *testing.T) {
	err := &CLIError{
		Err:        tasklist.ErrNotFound,
		Message:    "Test message",
		Suggestion: "Test suggestion",
		Details:    "Test details",
	}

	errStr := err.Error()
	for _, want := range []string{"Test message", "Test details", "Test suggestion"} {
		if !strings.Contains(errStr, want) {
			t.Errorf("expected error to contain %q, got %q", want, errStr)
		}
	}

	if !errors.Is(err, tasklist.ErrNotFound) {
		t.Error("expected error to unwrap to ErrNotFound")
	}
}

func TestCLIError_MinimalFields(t *testing.T) {
	err := &CLIError{
		Err:     tasklist.ErrValidation,
		Message: "Task title cannot be empty.",
	}

	if errStr := err.Error(); errStr != "Task title cannot be empty." {
		t.Errorf("expected 'Task title cannot be empty.', got %q", errStr)
	}
}

func TestWrap(t *testing.T) {
	_, atoiErr := strconv.Atoi("abc")

	tests := []struct {
		name       string
		err        error
		opts       []Option
		wantNil    bool
		wantKind   error
		wantText   string
		passthough bool
	}{
		{
			name:    "nil error",
			err:     nil,
			wantNil: true,
		},
		{
			name:     "empty title",
			err:      &tasklist.ValidationError{Field: tasklist.FieldTitle, Reason: "cannot be empty"},
			wantKind: tasklist.ErrValidation,
			wantText: "Task title cannot be empty.",
		},
		{
			name:     "unknown id",
			err:      &tasklist.TaskError{Op: "toggle", ID: 7, Err: tasklist.ErrNotFound},
			wantKind: tasklist.ErrNotFound,
			wantText: "Error: Task with ID 7 not found.\nView all tasks to see the available IDs.",
		},
		{
			name:     "non-numeric id",
			err:      &tasklist.ParseError{Field: tasklist.FieldTaskID, Input: "abc", Err: atoiErr},
			wantKind: tasklist.ErrParse,
			wantText: "Invalid input. Please enter a valid number for the task ID.",
		},
		{
			name:     "bad menu choice",
			err:      &tasklist.ParseError{Field: tasklist.FieldChoice, Input: "9"},
			wantKind: tasklist.ErrParse,
			wantText: "Invalid choice. Please enter a number between 1 and 6.",
		},
		{
			name:     "bad menu choice custom range",
			err:      &tasklist.ParseError{Field: tasklist.FieldChoice, Input: "0"},
			opts:     []Option{WithMaxChoice(4)},
			wantKind: tasklist.ErrParse,
			wantText: "Invalid choice. Please enter a number between 1 and 4.",
		},
		{
			name:       "other error passthrough",
			err:        errors.New("some other error"),
			passthough: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.opts...)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("expected nil, got %v", wrapped)
				}
				return
			}

			if tt.passthough {
				if wrapped != tt.err {
					t.Errorf("expected passthrough, got wrapped error")
				}
				return
			}

			var cliErr *CLIError
			if !errors.As(wrapped, &cliErr) {
				t.Fatalf("expected *CLIError, got %T", wrapped)
			}
			if !errors.Is(wrapped, tt.wantKind) {
				t.Errorf("expected error to be %v, got %v", tt.wantKind, wrapped)
			}
			if wrapped.Error() != tt.wantText {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantText)
			}
		})
	}
}

func TestWrap_AlreadyWrapped(t *testing.T) {
	first := Wrap(&tasklist.TaskError{Op: "delete", ID: 1, Err: tasklist.ErrNotFound})
	if second := Wrap(first); second != first {
		t.Error("Wrap should not double-wrap a CLIError")
	}
}

func TestWrap_CustomMessenger(t *testing.T) {
	messenger := &testMessenger{notFound: "Nope"}

	err := Wrap(&tasklist.TaskError{Op: "update", ID: 3, Err: tasklist.ErrNotFound}, WithMessenger(messenger))

	if !strings.Contains(err.Error(), "Nope 3") {
		t.Errorf("expected custom message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "Try again") {
		t.Errorf("expected custom suggestion, got %q", err.Error())
	}
}

func TestNewConfigError(t *testing.T) {
	cause := errors.New(`unknown log_level "loud"`)
	err := NewConfigError(cause)

	if !IsConfigError(err) {
		t.Error("expected IsConfigError to be true")
	}
	if !errors.Is(err, cause) {
		t.Error("expected error to wrap the cause")
	}
	if !strings.Contains(err.Error(), "loud") {
		t.Errorf("expected details in error, got %q", err.Error())
	}

	if !IsConfigError(NewConfigError(nil)) {
		t.Error("nil cause should still be a config error")
	}
}

func TestWrapInputError(t *testing.T) {
	if WrapInputError(nil) != nil {
		t.Error("expected nil for nil error")
	}

	err := WrapInputError(io.ErrClosedPipe)
	if !errors.Is(err, ErrInput) || !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("expected ErrInput wrapping the cause, got %v", err)
	}
}

func TestPredicates(t *testing.T) {
	notFound := &tasklist.TaskError{Op: "toggle", ID: 1, Err: tasklist.ErrNotFound}
	invalid := &tasklist.ValidationError{Field: tasklist.FieldTitle, Reason: "cannot be empty"}
	parse := &tasklist.ParseError{Field: tasklist.FieldTaskID, Input: "x"}

	tests := []struct {
		name  string
		check func(error) bool
		err   error
		want  bool
	}{
		{"nil validation", IsValidationError, nil, false},
		{"validation", IsValidationError, invalid, true},
		{"wrapped validation", IsValidationError, Wrap(invalid), true},
		{"validation vs not found", IsValidationError, notFound, false},
		{"not found", IsNotFoundError, notFound, true},
		{"wrapped not found", IsNotFoundError, Wrap(notFound), true},
		{"parse", IsParseError, parse, true},
		{"parse vs other", IsParseError, errors.New("x"), false},
		{"user error parse", IsUserError, Wrap(parse), true},
		{"user error config", IsUserError, NewConfigError(errors.New("bad")), false},
		{"config", IsConfigError, NewConfigError(errors.New("bad")), true},
		{"nil config", IsConfigError, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

type testMessenger struct {
	DefaultMessenger
	notFound string
}

func (m *testMessenger) NotFoundMessage(id int) (string, string) {
	return m.notFound + " " + strconv.Itoa(id), "Try again"
}
