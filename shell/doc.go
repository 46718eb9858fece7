// Package shell implements the interactive text menu for a task registry.
//
// A Shell prints a numbered menu, reads one choice per line and runs the
// matching registry operation, prompting for whatever text it needs:
//
//	reg := tasklist.NewRegistry()
//	sh := shell.New(reg, os.Stdin, os.Stdout, shell.WithClearKeyword("clear"))
//	if err := sh.Run(ctx); err != nil {
//	    return err
//	}
//
// Input mistakes (a choice outside the menu, a task id that is not a number,
// an empty title, an unknown id) are printed and the menu is shown again.
// Run returns nil when the user picks Exit or the input ends.
package shell
