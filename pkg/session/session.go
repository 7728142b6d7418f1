// Package session runs panel requests for one command invocation: it
// resolves credentials, drives the progress indicator around each request,
// classifies responses and renders the final outcome.
package session

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/pteropackages/soar/pkg/client"
	"github.com/pteropackages/soar/pkg/config"
	"github.com/pteropackages/soar/pkg/indicator"
	"github.com/pteropackages/soar/pkg/logger"
	"github.com/pteropackages/soar/pkg/models"
	"github.com/pteropackages/soar/pkg/output"
)

// Dispatcher sends one HTTP request. *client.Client implements it.
type Dispatcher interface {
	Send(ctx context.Context, req client.Request) (*client.Response, error)
}

// headerer is implemented by dispatchers that can report the headers they send.
type headerer interface {
	Headers(token string) http.Header
}

// Indicator renders progress while a request is in flight. Templates may
// contain indicator.ElapsedToken, replaced by elapsed milliseconds on Stop.
type Indicator interface {
	SetMessage(pending string)
	OnSuccess(template string)
	OnError(template string)
	Start()
	Stop(isError bool)
	Running() bool
}

// Session is created per command action and is not safe for concurrent use.
type Session struct {
	cfg   *config.Config
	scope Scope
	auth  config.Auth
	flags models.FlagOptions

	dispatcher Dispatcher
	indicator  Indicator
	log        *zap.SugaredLogger
	out        io.Writer
	colour     bool

	showDebugLog bool
	showHTTPLog  bool
}

type settings struct {
	dispatcher   Dispatcher
	newIndicator func() Indicator
	logger       *zap.SugaredLogger
	version      string
	out          io.Writer
	colour       *bool
	forceDebug   bool
}

// Option configures a Session.
type Option func(*settings)

// WithDispatcher replaces the HTTP client.
func WithDispatcher(d Dispatcher) Option {
	return func(s *settings) { s.dispatcher = d }
}

// WithIndicator sets the indicator factory. It is not called in silent mode.
func WithIndicator(factory func() Indicator) Option {
	return func(s *settings) { s.newIndicator = factory }
}

// WithLogger replaces the global logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *settings) { s.logger = l }
}

// WithVersion sets the version reported in the User-Agent header.
func WithVersion(v string) Option {
	return func(s *settings) { s.version = v }
}

// WithOutput sets where file-written notices go. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.out = w }
}

// WithColour overrides colour detection for rendered bodies.
func WithColour(enabled bool) Option {
	return func(s *settings) { s.colour = &enabled }
}

// WithForceDebug enables both log gates regardless of config, unless silent.
func WithForceDebug(enabled bool) Option {
	return func(s *settings) { s.forceDebug = enabled }
}

// New resolves credentials for scope and configures the session from flags.
// It fails with *MissingAuthError before anything is sent.
func New(cfg *config.Config, scope Scope, flags models.FlagOptions, opts ...Option) (*Session, error) {
	auth, err := ResolveAuth(cfg, scope)
	if err != nil {
		return nil, err
	}

	st := settings{version: "0.0.1"}
	for _, opt := range opts {
		opt(&st)
	}

	s := &Session{
		cfg:          cfg,
		scope:        scope,
		auth:         auth,
		flags:        flags,
		dispatcher:   st.dispatcher,
		log:          st.logger,
		out:          st.out,
		showDebugLog: cfg.Logs.ShowDebug || st.forceDebug,
		showHTTPLog:  cfg.Logs.ShowHTTP || st.forceDebug,
	}
	if s.dispatcher == nil {
		s.dispatcher = client.New(client.Options{
			Timeout:   cfg.RequestTimeout(),
			UserAgent: client.UserAgent(st.version),
		})
	}
	if s.log == nil {
		s.log = logger.Log
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	if st.colour != nil {
		s.colour = *st.colour
	} else {
		s.colour = cfg.Logs.UseColour && output.IsTerminal()
	}

	if flags.Silent {
		s.showDebugLog = false
		s.showHTTPLog = false
	} else {
		if st.newIndicator == nil {
			st.newIndicator = func() Indicator { return indicator.New(os.Stdout) }
		}
		s.indicator = st.newIndicator()
	}
	return s, nil
}

func (s *Session) Auth() config.Auth { return s.auth }

func (s *Session) Config() *config.Config { return s.cfg }

func (s *Session) Flags() models.FlagOptions { return s.flags }

// Indicator returns the progress indicator, or nil in silent mode.
func (s *Session) Indicator() Indicator { return s.indicator }

// Colour reports whether rendered output should be coloured.
func (s *Session) Colour() bool { return s.colour }

// Request sends one request to the panel and classifies the response.
// path is relative to the scope URL and already carries any query string.
func (s *Session) Request(ctx context.Context, method, path string, body any) (Outcome, error) {
	url := strings.TrimRight(s.auth.URL, "/") + path
	kv := []any{"method", method, "body", body != nil}
	if h, ok := s.dispatcher.(headerer); ok {
		kv = append(kv, "headers", client.MaskHeaders(h.Headers(s.auth.Key)))
	}
	s.debug("starting HTTP request", kv...)
	s.httpLog(fmt.Sprintf("sending a request to '%s'", url))

	var (
		resp    *client.Response
		outcome Outcome
	)
	err := s.track(path, func() error {
		var sendErr error
		resp, sendErr = s.dispatcher.Send(ctx, client.Request{
			Method: method,
			URL:    url,
			Token:  s.auth.Key,
			Body:   body,
		})
		if sendErr != nil {
			return &RequestError{Method: method, Path: path, Err: sendErr}
		}
		outcome, sendErr = Classify(resp.StatusCode, resp.ContentType, resp.Body)
		return sendErr
	})

	if resp != nil {
		s.httpLog(fmt.Sprintf("received status: %d", resp.StatusCode))
	}
	if err != nil {
		s.debug("request failed", "error", err)
		return nil, err
	}

	switch o := outcome.(type) {
	case NoContent:
		s.debug("request ended with no response body")
	case BinaryBody:
		s.debug("buffer response body received", "bytes", len(o.Data), "content_type", o.ContentType)
	}
	return outcome, nil
}

// track runs fn with the indicator started for path. The indicator is
// stopped exactly once on every exit of fn, in the error state unless fn
// returned nil.
func (s *Session) track(path string, fn func() error) error {
	if s.indicator == nil {
		return fn()
	}

	base := resourceBase(path)
	s.indicator.SetMessage("fetching " + base)
	s.indicator.OnSuccess("fetched " + base + " (" + indicator.ElapsedToken + "ms taken)")
	s.indicator.OnError("fetch failed " + base + " (" + indicator.ElapsedToken + "ms timeout)")
	s.indicator.Start()

	failed := true
	defer func() { s.indicator.Stop(failed) }()

	err := fn()
	failed = err != nil
	return err
}

// resourceBase turns "/api/application/users?filter[email]=x" into
// "/application/users".
func resourceBase(path string) string {
	base, _, _ := strings.Cut(path, "?")
	return strings.TrimPrefix(base, "/api")
}

func (s *Session) suppressed() bool {
	return s.indicator != nil && s.indicator.Running()
}

func (s *Session) debug(msg string, kv ...any) {
	if !s.showDebugLog || s.suppressed() {
		return
	}
	s.log.Debugw(msg, kv...)
}

func (s *Session) httpLog(msg string, kv ...any) {
	if !s.showHTTPLog || s.suppressed() {
		return
	}
	s.log.Infow("http: "+client.MaskToken(msg), kv...)
}
