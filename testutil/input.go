package testutil

import (
	"context"
	"io"
	"strings"

	"github.com/randalmurphal/tasklist/notify"
)

// Script returns a reader that yields each line followed by a newline,
// for driving line-oriented input in tests.
func Script(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// Recorder is a notify.Notifier that keeps every event it receives.
type Recorder struct {
	Events []notify.Event
	Err    error // returned from every Notify call
}

// Notify implements notify.Notifier.
func (r *Recorder) Notify(ctx context.Context, event notify.Event) error {
	r.Events = append(r.Events, event)
	return r.Err
}

// Types returns the types of the recorded events in order.
func (r *Recorder) Types() []notify.EventType {
	out := make([]notify.EventType, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Type
	}
	return out
}
