// Package errors provides CLI error patterns with user-friendly messaging.
//
// Core types:
//   - CLIError: Wraps errors with message, suggestion, and details
//   - ErrorMessenger: Interface for customizing error messages
//
// Wrap turns the registry's typed errors (tasklist.ValidationError,
// tasklist.TaskError, tasklist.ParseError) into the text the shell prints.
//
// Example usage:
//
//	if _, err := reg.Delete(ctx, id); err != nil {
//	    fmt.Fprintln(out, errors.Wrap(err))
//	}
//
//	// Reword messages
//	type QuietMessenger struct{ errors.DefaultMessenger }
//	func (QuietMessenger) NotFoundMessage(id int) (string, string) {
//	    return fmt.Sprintf("no task %d", id), ""
//	}
//
//	wrapped := errors.Wrap(err, errors.WithMessenger(QuietMessenger{}))
//
//	// Check error kinds
//	if errors.IsNotFoundError(err) {
//	    // Handle unknown id
//	}
package errors
