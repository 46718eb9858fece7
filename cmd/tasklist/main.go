// Command tasklist is an interactive, in-memory task list.
//
// Usage:
//
//	tasklist                      start the menu
//	tasklist config show          print settings and where each came from
//	tasklist config set KEY VALUE save a setting to the global config
//	tasklist config unset KEY     remove a setting from the global config
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(Execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
