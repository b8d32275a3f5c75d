// Package roddriver launches Chrome through Rod (Chrome DevTools Protocol)
// for end-to-end checks.
package roddriver

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/thesyncim/uicheck/pkg/session"
)

// Name is the driver name used in configuration.
const Name = "rod"

// Config configures Chrome launch options.
type Config struct {
	Headless bool   // Run in headless mode (default: true)
	Bin      string // Browser binary; empty lets Rod find or download one
}

// DefaultConfig returns sensible defaults for E2E testing.
func DefaultConfig() Config {
	return Config{Headless: true}
}

// Driver launches one Chrome process per session.
type Driver struct {
	cfg Config
}

// New returns a Rod driver.
func New(cfg Config) *Driver {
	return &Driver{cfg: cfg}
}

// Name implements session.Driver.
func (d *Driver) Name() string { return Name }

// Launch starts a new Chrome with its own user data directory and opens a
// blank page. The browser is configured with:
//   - No sandbox (for container compatibility)
//   - No GPU
//   - No first-run UI or default-browser prompt
func (d *Driver) Launch(ctx context.Context) (session.Browser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l := launcher.New().
		Headless(d.cfg.Headless).
		Set("no-sandbox").
		Set("disable-gpu").
		Set("no-first-run").
		Set("no-default-browser-check")
	if d.cfg.Bin != "" {
		l = l.Bin(d.cfg.Bin)
	}

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch Chrome: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect to Chrome: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = browser.Close()
		l.Kill()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	return &Browser{browser: browser, launcher: l, page: page}, nil
}

// Browser is a Chrome instance with one page.
type Browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
}

// Navigate opens url and waits for the load event.
func (b *Browser) Navigate(ctx context.Context, url string) error {
	p := b.page.Context(ctx)
	if err := p.Navigate(url); err != nil {
		return err
	}
	return p.WaitLoad()
}

// Title returns document.title.
func (b *Browser) Title(ctx context.Context) (string, error) {
	res, err := b.page.Context(ctx).Eval(`() => document.title`)
	if err != nil {
		return "", fmt.Errorf("failed to read title: %w", err)
	}
	return res.Value.Str(), nil
}

// URL returns location.href.
func (b *Browser) URL(ctx context.Context) (string, error) {
	res, err := b.page.Context(ctx).Eval(`() => location.href`)
	if err != nil {
		return "", fmt.Errorf("failed to read URL: %w", err)
	}
	return res.Value.Str(), nil
}

// Find waits for an element matching loc until ctx is done.
func (b *Browser) Find(ctx context.Context, loc session.Locator) (session.Element, error) {
	p := b.page.Context(ctx)
	kind, expr := loc.Expr()

	var (
		el  *rod.Element
		err error
	)
	switch kind {
	case session.XPathExpr:
		el, err = p.ElementX(expr)
	default:
		el, err = p.Element(expr)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", session.ErrElementNotFound, loc)
		}
		return nil, err
	}
	return &Element{el: el, page: b.page}, nil
}

// Eval runs a JavaScript function expression.
func (b *Browser) Eval(ctx context.Context, js string) error {
	_, err := b.page.Context(ctx).Eval(js)
	return err
}

// Close cleans up browser resources and removes the user data directory.
// Always call this (via defer) to prevent orphaned Chrome processes.
func (b *Browser) Close() error {
	err := b.browser.Close()
	if err != nil {
		b.launcher.Kill()
	}
	b.launcher.Cleanup()
	return err
}

var (
	_ session.Driver  = (*Driver)(nil)
	_ session.Browser = (*Browser)(nil)
	_ session.Element = (*Element)(nil)
)
