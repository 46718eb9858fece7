// Package prompt loads and renders the text views shown by the shell.
//
// Templates are text/template files named <name>.txt. Defaults for the
// menu and the task listing are embedded in the binary; a directory passed
// to NewLoader can override any of them by name.
//
// Functions available to templates:
//   - title, upper, lower, trim, default: string helpers
//   - symbol: status check mark (replaceable with AddFunc)
//   - timefmt: creation time layout (replaceable with AddFunc)
//   - deadline: a task's deadline text, empty when unset
//
// Example usage:
//
//	loader := prompt.NewLoader("")
//	out, err := loader.LoadWithVars(prompt.Tasks, map[string]any{
//	    "Tasks": reg.List(),
//	})
package prompt
