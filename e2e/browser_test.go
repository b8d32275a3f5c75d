//go:build e2e

package e2e

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesyncim/uicheck/cmd/demosite/server"
	"github.com/thesyncim/uicheck/pkg/driver"
	"github.com/thesyncim/uicheck/pkg/scenario"
	"github.com/thesyncim/uicheck/pkg/session"
)

// startDemoSite serves the demo pages on a random port for the lifetime of t.
func startDemoSite(t *testing.T) string {
	t.Helper()
	srv, err := server.NewServer(server.DefaultConfig())
	require.NoError(t, err)
	addr, err := srv.Start()
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			t.Errorf("server shutdown error: %v", err)
		}
	})
	t.Logf("Demo site started on %s", addr)
	return srv.URL()
}

func newManager(t *testing.T) *session.Manager {
	t.Helper()
	cfg, err := session.ConfigFromEnv()
	require.NoError(t, err)
	drv, err := driver.New(cfg)
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	logger.SetOutput(testWriter{t})
	return session.NewManager(drv, cfg, session.WithLogger(logger))
}

// testWriter routes log output through t.Log.
type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// TestBrowser_CanConnect is a smoke test: a session can be acquired, can
// reach the demo site and is released afterwards.
func TestBrowser_CanConnect(t *testing.T) {
	base := startDemoSite(t)
	m := newManager(t)

	var s *session.Session
	t.Run("session", func(t *testing.T) {
		m.Test(t, func(sess *session.Session) {
			s = sess
			ctx := context.Background()
			require.NoError(t, s.Open(ctx, base+"/"))
			title, err := s.Title(ctx)
			require.NoError(t, err)
			assert.Equal(t, server.InternetTitle, title)
		})
	})
	require.NotNil(t, s)
	assert.True(t, s.Released(), "session must be released once the test ends")
}

// TestBrowser_ReleasedAfterFailure checks the session is released when the
// body gives up half way, the way a failed assertion would.
func TestBrowser_ReleasedAfterFailure(t *testing.T) {
	base := startDemoSite(t)
	m := newManager(t)

	res := m.Run(context.Background(), "missing element", func(ctx context.Context, s *session.Session) error {
		if err := s.Open(ctx, base+"/checkboxes"); err != nil {
			return err
		}
		_, err := s.Find(ctx, session.ID("does-not-exist"))
		return err
	})
	assert.Equal(t, session.Failed, res.Outcome)
	assert.ErrorIs(t, res.Err, session.ErrElementNotFound)
	assert.NoError(t, res.ReleaseErr)
}

func TestScenarios(t *testing.T) {
	base := startDemoSite(t)
	m := newManager(t)

	testdata, err := filepath.Abs("testdata")
	require.NoError(t, err)
	cat, err := scenario.Default()
	require.NoError(t, err)
	cat.WithSites(map[string]string{"demoqa": base + "/demoqa", "the-internet": base}).
		WithFS(afero.NewOsFs(), testdata)
	cat.Scenarios["drag_and_drop"].Params["verify_swap"] = "true"
	cat.Scenarios["login"].Selectors["welcome"] = "id:userName-value"

	for _, cs := range cat.Cases() {
		cs := cs
		t.Run(cs.Name, func(t *testing.T) {
			m.Test(t, func(s *session.Session) {
				if err := cs.Run(context.Background(), s); err != nil {
					t.Fatalf("%s: %v", session.Classify(err), err)
				}
			})
		})
	}
}
