package errors

import (
	"errors"

	"github.com/randalmurphal/tasklist"
)

// IsValidationError checks if an error is a rejected-input error.
func IsValidationError(err error) bool {
	return err != nil && errors.Is(err, tasklist.ErrValidation)
}

// IsNotFoundError checks if an error reports an unknown task id.
func IsNotFoundError(err error) bool {
	return err != nil && errors.Is(err, tasklist.ErrNotFound)
}

// IsParseError checks if an error reports non-numeric or out-of-range input.
func IsParseError(err error) bool {
	return err != nil && errors.Is(err, tasklist.ErrParse)
}

// IsConfigError checks if an error is configuration-related.
func IsConfigError(err error) bool {
	return err != nil && errors.Is(err, ErrConfig)
}

// IsUserError reports whether err is caused by user input and should be
// shown to the user rather than end the session.
func IsUserError(err error) bool {
	return IsValidationError(err) || IsNotFoundError(err) || IsParseError(err)
}
