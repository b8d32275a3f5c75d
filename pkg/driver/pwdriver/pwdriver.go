// Package pwdriver launches Chromium through Playwright for end-to-end checks.
package pwdriver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/thesyncim/uicheck/pkg/session"
)

// Name is the driver name used in configuration.
const Name = "playwright"

// Config configures the Playwright driver.
type Config struct {
	Headless bool
	Bin      string // Chromium executable; empty uses the Playwright-managed build
	Install  bool   // Install the driver and Chromium before the first launch
}

// DefaultConfig returns headless defaults without installation.
func DefaultConfig() Config {
	return Config{Headless: true}
}

// Driver starts a Playwright server and one Chromium per session.
type Driver struct {
	cfg Config
}

// New returns a Playwright driver.
func New(cfg Config) *Driver {
	return &Driver{cfg: cfg}
}

// Name implements session.Driver.
func (d *Driver) Name() string { return Name }

// Launch starts Playwright and Chromium and opens a page. Nothing is shared
// with previously launched browsers.
func (d *Driver) Launch(ctx context.Context) (session.Browser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts := &playwright.RunOptions{
		Browsers: []string{"chromium"},
		Stdout:   io.Discard,
		Stderr:   io.Discard,
	}
	if d.cfg.Install {
		if err := playwright.Install(opts); err != nil {
			return nil, fmt.Errorf("failed to install playwright: %w", err)
		}
	}
	pw, err := playwright.Run(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(d.cfg.Headless),
	}
	if d.cfg.Bin != "" {
		launchOpts.ExecutablePath = playwright.String(d.cfg.Bin)
	}
	browser, err := pw.Chromium.Launch(launchOpts)
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch chromium: %w", err)
	}

	page, err := browser.NewPage()
	if err != nil {
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	return &Browser{pw: pw, browser: browser, page: page}, nil
}

// Browser is a Chromium instance with one page.
type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
}

// Navigate opens url and waits for the load event.
func (b *Browser) Navigate(ctx context.Context, url string) error {
	_, err := b.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   timeoutMS(ctx),
	})
	return err
}

func (b *Browser) Title(ctx context.Context) (string, error) {
	return b.page.Title()
}

func (b *Browser) URL(ctx context.Context) (string, error) {
	return b.page.URL(), nil
}

// Find waits until an element matching loc is attached.
func (b *Browser) Find(ctx context.Context, loc session.Locator) (session.Element, error) {
	locator := b.page.Locator(selector(loc)).First()
	err := locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: timeoutMS(ctx),
	})
	if err != nil {
		if errors.Is(err, playwright.ErrTimeout) {
			return nil, fmt.Errorf("%w: %s", session.ErrElementNotFound, loc)
		}
		return nil, err
	}
	return &Element{loc: locator}, nil
}

func (b *Browser) Eval(ctx context.Context, js string) error {
	_, err := b.page.Evaluate(js)
	return err
}

// Close shuts down Chromium and the Playwright server.
func (b *Browser) Close() error {
	return errors.Join(b.browser.Close(), b.pw.Stop())
}

// selector converts a locator to a Playwright selector string.
func selector(loc session.Locator) string {
	kind, expr := loc.Expr()
	if kind == session.XPathExpr {
		return "xpath=" + expr
	}
	return "css=" + expr
}

// defaultTimeout applies when ctx carries no deadline.
const defaultTimeout = 30 * time.Second

// timeoutMS converts the time left on ctx to Playwright's millisecond timeout.
func timeoutMS(ctx context.Context) *float64 {
	d := defaultTimeout
	if deadline, ok := ctx.Deadline(); ok {
		d = time.Until(deadline)
		if d < time.Millisecond {
			d = time.Millisecond
		}
	}
	return playwright.Float(float64(d.Milliseconds()))
}

var (
	_ session.Driver  = (*Driver)(nil)
	_ session.Browser = (*Browser)(nil)
	_ session.Element = (*Element)(nil)
)
