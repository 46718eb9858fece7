package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	nanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/tasklist"
	"github.com/randalmurphal/tasklist/config"
	clierr "github.com/randalmurphal/tasklist/errors"
	"github.com/randalmurphal/tasklist/notify"
	"github.com/randalmurphal/tasklist/prompt"
	"github.com/randalmurphal/tasklist/shell"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tasklist",
		Short: "Manage a task list from an interactive menu",
		Long: `Manage a task list from an interactive menu.

Tasks live in memory for the length of the session and are gone on exit.
Settings are read from ~/.config/tasklist/config.yaml, .tasklist.yaml and
TASKLIST_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.Context(), opts, stdin, stdout, stderr)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Global config file (default ~/.config/tasklist/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")

	cmd.AddCommand(newConfigCmd(opts, stdout, stderr))
	return cmd
}

// resolver builds the config resolver, honoring --config.
func (o *rootOptions) resolver(stderr io.Writer) *config.Resolver {
	cfg := config.AppResolverConfig()
	cfg.ErrWriter = stderr

	r := config.NewResolver(cfg)
	if o.configPath != "" {
		r = config.NewResolverWithPaths(cfg, o.configPath, r.LocalPath())
	}
	return r
}

func (o *rootOptions) resolve(stderr io.Writer) *config.Resolved {
	return o.resolver(stderr).ResolveWithFlags(map[string]string{
		config.KeyLogLevel:  o.logLevel,
		config.KeyLogFormat: o.logFormat,
	})
}

func runShell(ctx context.Context, opts *rootOptions, stdin io.Reader, stdout, stderr io.Writer) error {
	settings, err := config.Load(opts.resolve(stderr))
	if err != nil {
		return clierr.NewConfigError(err)
	}

	sessionID, err := nanoid.New()
	if err != nil {
		return fmt.Errorf("generate session id: %w", err)
	}

	logger := newLogger(stderr, settings).With("session", sessionID)
	notifier := notify.WithSession(notify.NewLogNotifier(logger), sessionID)

	now := time.Now
	reg := tasklist.NewRegistry(
		tasklist.WithClock(now),
		tasklist.WithLogger(logger),
		tasklist.WithNotifier(notifier),
	)

	sh := shell.New(reg, stdin, stdout,
		shell.WithPrompts(prompt.NewLoader(settings.TemplateDir)),
		shell.WithClock(now),
		shell.WithLogger(logger),
		shell.WithNotifier(notifier),
		shell.WithClearKeyword(settings.ClearKeyword),
		shell.WithTimeFormat(settings.TimeFormat),
		shell.WithASCII(settings.ASCII),
	)

	logger.Debug("session starting", "template_dir", settings.TemplateDir, "ascii", settings.ASCII)
	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newLogger(w io.Writer, settings config.Settings) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: settings.LogLevel}
	if settings.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}
