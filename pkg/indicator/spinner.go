// Package indicator renders request progress as a pterm spinner.
package indicator

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// ElapsedToken is replaced by the elapsed milliseconds in finish templates.
const ElapsedToken = "$"

// Expand substitutes the first ElapsedToken in template with elapsed milliseconds.
func Expand(template string, elapsed time.Duration) string {
	return strings.Replace(template, ElapsedToken, strconv.FormatInt(elapsed.Milliseconds(), 10), 1)
}

// Spinner is a restartable progress indicator. One Spinner is reused across
// the requests of a session and is not safe for concurrent requests.
type Spinner struct {
	mu sync.Mutex

	w        io.Writer
	now      func() time.Time
	terminal bool

	pending   string
	onSuccess string
	onError   string

	printer *pterm.SpinnerPrinter
	started time.Time
	running bool
	last    string
}

// Option configures a Spinner.
type Option func(*Spinner)

// WithClock injects the time source used for elapsed time.
func WithClock(now func() time.Time) Option {
	return func(s *Spinner) { s.now = now }
}

// New creates a Spinner writing to w, or stdout when w is nil.
func New(w io.Writer, opts ...Option) *Spinner {
	if w == nil {
		w = os.Stdout
	}
	s := &Spinner{w: w, now: time.Now}
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		s.terminal = isatty.IsTerminal(f.Fd())
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Spinner) SetMessage(pending string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = pending
}

func (s *Spinner) OnSuccess(template string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSuccess = template
}

func (s *Spinner) OnError(template string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onError = template
}

// Start begins rendering the pending message. Starting a running spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}

	if s.terminal {
		cursor.Hide()
	}
	s.started = s.now()
	s.running = true

	printer, err := pterm.DefaultSpinner.
		WithWriter(s.w).
		WithRemoveWhenDone(false).
		Start(s.pending)
	if err != nil {
		// Rendering is best effort; elapsed time is still tracked.
		s.printer = nil
		return
	}
	s.printer = printer
}

// Stop finalizes the spinner with the success or error template.
// Stopping a spinner that is not running is a no-op.
func (s *Spinner) Stop(isError bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false

	tmpl := s.onSuccess
	if isError {
		tmpl = s.onError
	}
	s.last = Expand(tmpl, s.now().Sub(s.started))

	if s.printer != nil {
		if isError {
			s.printer.Fail(s.last)
		} else {
			s.printer.Success(s.last)
		}
		s.printer = nil
	}
	if s.terminal {
		cursor.Show()
	}
}

// Running reports whether the spinner is currently rendering.
func (s *Spinner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// LastMessage returns the most recently finalized line.
func (s *Spinner) LastMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
