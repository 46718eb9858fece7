package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/randalmurphal/tasklist"
	clierr "github.com/randalmurphal/tasklist/errors"
	"github.com/randalmurphal/tasklist/notify"
	"github.com/randalmurphal/tasklist/prompt"
	"github.com/randalmurphal/tasklist/task"
)

// MenuTitle is the heading of the main menu.
const MenuTitle = "Todo List Menu"

// errInputClosed ends the session when input runs out mid-prompt.
var errInputClosed = errors.New("input closed")

// Shell is the interactive menu over a Registry. It reads one line per
// prompt from its input and writes everything the user sees to its output.
type Shell struct {
	reg      *tasklist.Registry
	in       *bufio.Reader
	out      io.Writer
	prompts  *prompt.Loader
	logger   *slog.Logger
	now      func() time.Time
	notifier notify.Notifier
	errOpts  []clierr.Option
	items    []menuItem

	clearKeyword string
	timeFormat   string
	ascii        bool
}

// Option configures a Shell.
type Option func(*Shell)

// WithPrompts sets the template loader used for the menu and task views.
// The shell renders with its own copy, so the loader can be shared.
func WithPrompts(l *prompt.Loader) Option {
	return func(s *Shell) {
		if l != nil {
			s.prompts = l
		}
	}
}

// WithClock sets the source of session event timestamps. Pass the same
// clock given to the registry so both event streams agree.
func WithClock(now func() time.Time) Option {
	return func(s *Shell) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithNotifier sets the notifier that receives session start and end events.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Shell) {
		s.notifier = n
	}
}

// WithMessenger rewords the error messages shown to the user.
func WithMessenger(m clierr.ErrorMessenger) Option {
	return func(s *Shell) {
		s.errOpts = append(s.errOpts, clierr.WithMessenger(m))
	}
}

// WithClearKeyword sets the word that clears a deadline during update.
// Matching is case-insensitive.
func WithClearKeyword(word string) Option {
	return func(s *Shell) {
		if word != "" {
			s.clearKeyword = word
		}
	}
}

// WithTimeFormat sets the layout for creation times in task listings.
func WithTimeFormat(layout string) Option {
	return func(s *Shell) {
		if layout != "" {
			s.timeFormat = layout
		}
	}
}

// WithASCII replaces the unicode status marks with ASCII ones.
func WithASCII(ascii bool) Option {
	return func(s *Shell) {
		s.ascii = ascii
	}
}

// New creates a shell reading from in and writing to out. Input lines have
// no length limit.
func New(reg *tasklist.Registry, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		reg:          reg,
		in:           bufio.NewReader(in),
		out:          out,
		logger:       slog.Default(),
		now:          time.Now,
		clearKeyword: "clear",
		timeFormat:   prompt.DefaultTimeFormat,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.prompts == nil {
		s.prompts = prompt.NewLoader("")
	} else {
		s.prompts = s.prompts.Clone()
	}

	layout := s.timeFormat
	s.prompts.AddFunc("timefmt", func(t time.Time) string { return t.Format(layout) })
	if s.ascii {
		s.prompts.AddFunc("symbol", task.Status.ASCIISymbol)
	}

	s.items = s.menu()
	s.errOpts = append(s.errOpts, clierr.WithMaxChoice(len(s.items)))
	return s
}

// Run shows the menu and dispatches choices until the user exits or the
// input ends, both of which return nil. Bad input is reported and the menu
// shown again; only console and rendering failures are returned.
func (s *Shell) Run(ctx context.Context) error {
	s.emit(ctx, notify.EventSessionStarted, "session started")
	defer s.emit(ctx, notify.EventSessionEnded, "session ended")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.showMenu(); err != nil {
			return err
		}

		choice, err := s.readLine(fmt.Sprintf("Enter your choice (1-%d): ", len(s.items)))
		if errors.Is(err, errInputClosed) {
			s.logger.Debug("input closed at menu")
			return nil
		}
		if err != nil {
			return err
		}

		item, err := s.lookup(choice)
		if err != nil {
			s.report(err)
			continue
		}

		s.logger.Debug("menu choice", "key", item.Key, "label", item.Label)
		if item.run == nil {
			s.printf("Exiting the Todo application. Goodbye!\n")
			return nil
		}

		err = item.run(ctx)
		switch {
		case err == nil:
		case errors.Is(err, errInputClosed):
			s.logger.Debug("input closed during operation", "label", item.Label)
			return nil
		case clierr.IsUserError(err):
			s.report(err)
		default:
			return err
		}
	}
}

func (s *Shell) showMenu() error {
	out, err := s.prompts.LoadWithVars(prompt.Menu, map[string]any{
		"Title": MenuTitle,
		"Items": s.items,
	})
	if err != nil {
		return err
	}
	s.printf("%s", out)
	return nil
}

// lookup matches input against the menu keys exactly, so "01" and "+1"
// are not choices.
func (s *Shell) lookup(input string) (menuItem, error) {
	for _, item := range s.items {
		if input == strconv.Itoa(item.Key) {
			return item, nil
		}
	}
	return menuItem{}, &tasklist.ParseError{Field: tasklist.FieldChoice, Input: input}
}

// readLine prints label and returns the next input line with surrounding
// whitespace removed.
func (s *Shell) readLine(label string) (string, error) {
	s.printf("%s", label)
	line, err := s.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
		// Last line without a trailing newline.
	case errors.Is(err, io.EOF):
		s.printf("\n")
		return "", errInputClosed
	default:
		return "", clierr.WrapInputError(err, s.errOpts...)
	}
	return strings.TrimSpace(line), nil
}

// readID reads a task id. Non-numeric input is a *tasklist.ParseError.
func (s *Shell) readID(label string) (int, error) {
	input, err := s.readLine(label)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(input)
	if err != nil {
		return 0, &tasklist.ParseError{Field: tasklist.FieldTaskID, Input: input, Err: err}
	}
	return id, nil
}

func (s *Shell) report(err error) {
	s.logger.Debug("input rejected", "error", err)
	s.printf("%s\n", clierr.Wrap(err, s.errOpts...).Error())
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) emit(ctx context.Context, typ notify.EventType, msg string) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.Notify(ctx, notify.Event{
		Type:      typ,
		Message:   msg,
		Severity:  notify.SeverityInfo,
		Timestamp: s.now(),
		Metadata:  map[string]any{"tasks": s.reg.Len()},
	})
	if err != nil {
		s.logger.Warn("notify failed", "event_type", typ, "error", err)
	}
}
