package tasklist

import (
	"errors"
	"strconv"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: FieldTitle, Reason: "cannot be empty"}

	if got := err.Error(); got != "title cannot be empty" {
		t.Errorf("Error() = %q, want %q", got, "title cannot be empty")
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("errors.Is should match ErrValidation")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("errors.Is should not match ErrNotFound")
	}
}

func TestTaskError(t *testing.T) {
	err := &TaskError{Op: "delete", ID: 3, Err: ErrNotFound}

	if got := err.Error(); got != "delete task 3: task not found" {
		t.Errorf("Error() = %q", got)
	}
	if err.Unwrap() != ErrNotFound {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), ErrNotFound)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true")
	}
	if IsValidation(err) || IsParse(err) {
		t.Error("TaskError should only match ErrNotFound")
	}
}

func TestParseError(t *testing.T) {
	_, cause := strconv.Atoi("abc")
	err := &ParseError{Field: FieldTaskID, Input: "abc", Err: cause}

	if !errors.Is(err, ErrParse) {
		t.Error("errors.Is should match ErrParse")
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Error("errors.Is should match the wrapped strconv error")
	}

	var pe *ParseError
	if !errors.As(err, &pe) || pe.Input != "abc" {
		t.Errorf("errors.As should recover the input, got %+v", pe)
	}
}

func TestParseError_NoCause(t *testing.T) {
	err := &ParseError{Field: FieldChoice, Input: "9"}

	if got := err.Error(); got != `invalid choice "9"` {
		t.Errorf("Error() = %q", got)
	}
	if !IsParse(err) {
		t.Error("IsParse should return true")
	}
}

func TestPredicates_Nil(t *testing.T) {
	if IsNotFound(nil) || IsValidation(nil) || IsParse(nil) {
		t.Error("predicates should return false for nil")
	}
}
