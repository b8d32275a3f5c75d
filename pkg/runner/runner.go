// Package runner executes catalog scenarios one after another, each in its
// own browser session, and summarises the outcome.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/thesyncim/uicheck/pkg/errext"
	"github.com/thesyncim/uicheck/pkg/scenario"
	"github.com/thesyncim/uicheck/pkg/session"
)

// Options configures a Runner.
type Options struct {
	Logger logrus.FieldLogger

	// FailFast stops after the first scenario that does not pass.
	FailFast bool
}

// Runner runs scenarios from a catalog through a session manager.
type Runner struct {
	manager *session.Manager
	catalog *scenario.Catalog
	opts    Options
}

// New creates a Runner.
func New(m *session.Manager, c *scenario.Catalog, opts Options) *Runner {
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}
	return &Runner{manager: m, catalog: c, opts: opts}
}

// Run executes every scenario carrying any of tags, or all scenarios when no
// tag is given. A canceled ctx stops the run before the next scenario.
func (r *Runner) Run(ctx context.Context, tags ...string) Summary {
	cases := r.catalog.Cases(tags...)
	sum := Summary{Results: make([]session.Result, 0, len(cases))}
	r.opts.Logger.WithField("count", len(cases)).Info("Running scenarios")

	for _, cs := range cases {
		if ctx.Err() != nil {
			sum.Canceled = true
			break
		}
		res := r.manager.Run(ctx, cs.Name, cs.Run)
		sum.Results = append(sum.Results, res)

		logger := r.opts.Logger.WithFields(logrus.Fields{
			"scenario": res.Name,
			"session":  res.SessionID,
			"outcome":  res.Outcome.String(),
			"duration": res.Duration.Round(time.Millisecond),
		})
		switch res.Outcome {
		case session.Passed:
			logger.Info("Scenario passed")
		case session.Failed:
			logger.WithError(res.Err).Warn("Scenario failed")
		default:
			logger.WithError(res.Err).Error("Scenario could not run")
		}

		if r.opts.FailFast && res.Outcome != session.Passed {
			break
		}
	}
	return sum
}

// Summary holds the results of a run in execution order.
type Summary struct {
	Results  []session.Result
	Canceled bool
}

// Count returns how many results have outcome o.
func (s Summary) Count(o session.Outcome) int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == o {
			n++
		}
	}
	return n
}

// Duration is the summed duration of every scenario.
func (s Summary) Duration() time.Duration {
	var d time.Duration
	for _, r := range s.Results {
		d += r.Duration
	}
	return d
}

// Err returns nil when every scenario passed. Otherwise the error carries
// errext.EnvironmentError if any scenario could not run, and
// errext.ChecksFailed if some only failed.
func (s Summary) Err() error {
	failed, errored := s.Count(session.Failed), s.Count(session.Errored)
	switch {
	case errored > 0:
		return errext.WithHint(
			errext.WithExitCodeIfNone(fmt.Errorf("%d of %d scenarios could not run", errored, len(s.Results)), errext.EnvironmentError),
			"check that a Chromium browser can be launched",
		)
	case failed > 0:
		return errext.WithExitCodeIfNone(fmt.Errorf("%d of %d scenarios failed", failed, len(s.Results)), errext.ChecksFailed)
	case s.Canceled:
		return errext.WithExitCodeIfNone(fmt.Errorf("run canceled after %d scenarios", len(s.Results)), errext.ChecksFailed)
	}
	return nil
}
