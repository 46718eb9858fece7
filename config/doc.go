// Package config provides hierarchical configuration resolution for the
// tasklist command.
//
// Values are layered with clear precedence:
//  1. Command-line flags (highest priority)
//  2. Environment variables (TASKLIST_LOG_LEVEL, ...)
//  3. Local config (.tasklist.yaml in the working directory or a parent)
//  4. Global config (~/.config/tasklist/config.yaml)
//  5. Built-in defaults (lowest priority)
//
// None of the files are required. Configuration only tunes presentation
// and logging; tasks themselves are never written to disk.
//
// # Basic Usage
//
//	resolver := config.NewResolver(config.AppResolverConfig())
//	settings, err := config.Load(resolver.ResolveWithFlags(flags))
//	if err != nil {
//	    return err
//	}
//
// # Config Sources
//
// Each resolved value tracks where it came from:
//   - "default": Built-in default value
//   - "global": ~/.config/tasklist/config.yaml
//   - "local": .tasklist.yaml
//   - "env": Environment variable
//   - "flag": Command-line flag
package config
