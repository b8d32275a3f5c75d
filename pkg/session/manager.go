package session

import (
	"context"
	"io"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/thesyncim/uicheck/pkg/session/internal"
)

// Body is a test case body run by Manager.Run.
type Body func(ctx context.Context, s *Session) error

// Result is the recorded outcome of one test case.
type Result struct {
	Name       string
	SessionID  string
	Outcome    Outcome
	Err        error // body error, or the acquisition error when Outcome is Errored
	ReleaseErr error // logged only; never affects Outcome
	Started    time.Time
	Duration   time.Duration
}

// T is the part of testing.TB used by Manager.Test.
type T interface {
	Helper()
	Name() string
	Cleanup(func())
	Logf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// Manager hands out one fresh Session per test case.
type Manager struct {
	driver Driver
	cfg    Config
	logger logrus.FieldLogger
	clock  internal.Clock
	newID  func() string
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. The default discards output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithClock sets the clock used to time test cases.
func WithClock(c internal.Clock) Option {
	return func(m *Manager) { m.clock = c }
}

// WithIDGenerator overrides session ID generation.
func WithIDGenerator(f func() string) Option {
	return func(m *Manager) { m.newID = f }
}

// NewManager creates a Manager launching browsers through d.
func NewManager(d Driver, cfg Config, opts ...Option) *Manager {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	m := &Manager{
		driver: d,
		cfg:    cfg,
		logger: discard,
		clock:  internal.MonotonicClock{},
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Config returns the session configuration.
func (m *Manager) Config() Config { return m.cfg }

// Acquire launches a new browser and wraps it in a Session. Errors are
// *EnvironmentError.
func (m *Manager) Acquire(ctx context.Context) (*Session, error) {
	browser, err := m.driver.Launch(ctx)
	if err != nil {
		return nil, &EnvironmentError{Op: "launch " + m.driver.Name(), Err: err}
	}
	id := m.newID()
	logger := m.logger.WithFields(logrus.Fields{"session": id, "driver": m.driver.Name()})
	logger.Debug("Session acquired")
	return &Session{
		id:      id,
		driver:  m.driver.Name(),
		browser: browser,
		cfg:     m.cfg,
		logger:  logger,
	}, nil
}

// Run acquires a session, runs body and releases the session whether body
// returns, fails or panics. Release errors are logged and stored in
// Result.ReleaseErr without touching Outcome or Err.
func (m *Manager) Run(ctx context.Context, name string, body Body) (res Result) {
	res.Name = name
	res.Started = m.clock.Now()
	logger := m.logger.WithField("test", name)

	s, err := m.Acquire(ctx)
	if err != nil {
		logger.WithError(err).Error("Could not create browser session")
		res.Outcome = Errored
		res.Err = err
		res.Duration = m.clock.Now().Sub(res.Started)
		return res
	}
	res.SessionID = s.ID()

	defer func() {
		if r := recover(); r != nil {
			res.Outcome = Failed
			res.Err = &PanicError{Value: r, Stack: debug.Stack()}
		}
		if err := s.Release(); err != nil {
			logger.WithError(err).WithField("session", s.ID()).Warn("Session release failed")
			res.ReleaseErr = err
		}
		res.Duration = m.clock.Now().Sub(res.Started)
	}()

	err = body(ctx, s)
	res.Outcome = Classify(err)
	res.Err = err
	return res
}

// Test is the `go test` fixture: it acquires a session for t, registers its
// release with t.Cleanup and runs body. A failed acquisition aborts t before
// body runs. A failed release is only logged, so t keeps its own outcome.
func (m *Manager) Test(t T, body func(s *Session)) {
	t.Helper()

	s, err := m.Acquire(context.Background())
	if err != nil {
		t.Fatalf("environment error: %v", err)
		return
	}
	t.Cleanup(func() {
		if err := s.Release(); err != nil {
			m.logger.WithError(err).WithFields(logrus.Fields{"test": t.Name(), "session": s.ID()}).Warn("Session release failed")
			t.Logf("session release failed: %v", err)
		}
	})
	body(s)
}
