// Package tasklist provides an in-memory task registry for a single-user
// to-do list.
//
// The package is organized into subpackages by concern:
//
//   - task: The task model (status, optional deadline, deadline changes)
//   - shell: Interactive menu front end over a Registry
//   - errors: User-facing CLI error messages
//   - config: Layered configuration (defaults, yaml files, env, flags)
//   - notify: Task event notifications
//   - prompt: Menu and task view templates
//   - testutil: Test utilities
//
// # Quick Start
//
//	reg := tasklist.NewRegistry()
//
//	t, err := reg.Add(ctx, "Pay bills", task.Some("2025-12-31"))
//	if err != nil {
//	    return err
//	}
//	status, _ := reg.ToggleComplete(ctx, t.ID)
//
//	for _, t := range reg.List() {
//	    fmt.Println(t.ID, t.Title, t.Status)
//	}
//
// A Registry holds its state for the lifetime of the value. Nothing is
// persisted, and a Registry is not safe for concurrent use.
package tasklist
