package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesyncim/uicheck/pkg/scenario"
	"github.com/thesyncim/uicheck/pkg/session"
)

type blankDriver struct{ err error }

func (d blankDriver) Name() string { return "blank" }

func (d blankDriver) Launch(context.Context) (session.Browser, error) {
	if d.err != nil {
		return nil, d.err
	}
	return &blankBrowser{}, nil
}

type blankBrowser struct{ url string }

func (b *blankBrowser) Navigate(_ context.Context, url string) error { b.url = url; return nil }
func (b *blankBrowser) Title(context.Context) (string, error) { return "", nil }
func (b *blankBrowser) URL(context.Context) (string, error) { return b.url, nil }
func (b *blankBrowser) Eval(context.Context, string) error { return nil }
func (b *blankBrowser) Close() error { return nil }

func (b *blankBrowser) Find(_ context.Context, loc session.Locator) (session.Element, error) {
	return nil, fmt.Errorf("%w: %s", session.ErrElementNotFound, loc)
}

func soak(t *testing.T, d session.Driver) SoakResult {
	t.Helper()
	cat, err := scenario.Load(strings.NewReader("sites: {a: http://a.test}\nscenarios:\n  checkboxes: {site: a, selectors: {first: 'css:input'}}\n"))
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := session.DefaultConfig()
	cfg.ElementTimeout = 10 * time.Millisecond
	return runSoakTest(context.Background(), logger, d, cfg, cat, nil, 50*time.Millisecond, 5*time.Millisecond)
}

func TestRunSoakTest_Pass(t *testing.T) {
	res := soak(t, blankDriver{})

	assert.Equal(t, "PASS", res.Status)
	assert.Positive(t, res.Rounds)
	assert.Equal(t, res.Rounds, res.Scenarios)
	assert.Equal(t, res.Launched, res.Closed)
	assert.Equal(t, int64(res.Rounds), res.Launched)
}

func TestRunSoakTest_EnvironmentErrorFails(t *testing.T) {
	res := soak(t, blankDriver{err: errors.New("no browser")})

	assert.Equal(t, "FAIL", res.Status)
	assert.Equal(t, res.Rounds, res.Errored)
	assert.Zero(t, res.Launched)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "01:02:03", formatDuration(time.Hour+2*time.Minute+3*time.Second))
	assert.Equal(t, "00:00:00", formatDuration(0))
}
