package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/tasklist/config"
	clierr "github.com/randalmurphal/tasklist/errors"
)

func newConfigCmd(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
		Long: fmt.Sprintf(`Show or change settings.

Known keys: %s`, strings.Join(config.Keys(), ", ")),
	}

	cmd.AddCommand(
		newConfigShowCmd(opts, stdout, stderr),
		newConfigSetCmd(opts, stdout, stderr),
		newConfigUnsetCmd(opts, stdout, stderr),
	)
	return cmd
}

func newConfigShowCmd(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every setting with its source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved := opts.resolve(stderr)
			for _, key := range config.Keys() {
				value, source := resolved.GetWithSource(key)
				fmt.Fprintf(stdout, "%-14s %-18q (%s)\n", key, value, source)
			}
			return nil
		},
		SilenceUsage: true,
	}
}

func newConfigSetCmd(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Save a setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			// Reject values the shell would refuse to start with.
			check := opts.resolver(io.Discard).ResolveWithFlags(map[string]string{key: value})
			if _, err := config.Load(check); err != nil {
				return clierr.NewConfigError(err)
			}

			saver := saveConfig(opts)
			var (
				path string
				err  error
			)
			if local {
				dir, werr := os.Getwd()
				if werr != nil {
					return werr
				}
				path, err = saver.SaveLocal(dir, key, value)
			} else {
				path, err = saver.SaveGlobal(key, value)
			}
			if err != nil {
				return clierr.NewConfigError(err)
			}

			fmt.Fprintf(stdout, "Set %s = %q in %s\n", key, value, path)
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&local, "local", false, "Write to "+config.LocalConfigName+" in the current directory")
	return cmd
}

func newConfigUnsetCmd(opts *rootOptions, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a setting from the global config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := saveConfig(opts).DeleteGlobalKey(args[0]); err != nil {
				return clierr.NewConfigError(err)
			}
			fmt.Fprintf(stdout, "Removed %s\n", args[0])
			return nil
		},
		SilenceUsage: true,
	}
}

func saveConfig(opts *rootOptions) config.SaveConfig {
	return config.SaveConfig{
		GlobalConfigDir: config.AppName,
		GlobalPath:      opts.configPath,
		LocalConfigName: config.LocalConfigName,
		ValidKeys:       config.Keys(),
	}
}
