package scenario

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/thesyncim/uicheck/pkg/session"
)

// Func is the body of a scenario.
type Func func(ctx context.Context, s *session.Session, c Case) error

var registry = map[string]Func{
	"login":         login,
	"drag_and_drop": dragAndDrop,
	"checkboxes":    checkboxes,
	"dropdown":      dropdown,
	"scroll":        scroll,
	"hover":         hover,
	"redirect":      redirect,
	"upload":        upload,
}

// Case is a scenario bound to its resolved configuration.
type Case struct {
	Name    string
	Spec    Spec
	BaseURL string
	FS      afero.Fs
	WorkDir string
}

// URL is the page the scenario starts on.
func (c Case) URL() string {
	return c.BaseURL + c.Spec.Path
}

// Run executes the scenario in s.
func (c Case) Run(ctx context.Context, s *session.Session) error {
	f, ok := registry[c.Name]
	if !ok {
		return fmt.Errorf("no such check %q", c.Name)
	}
	return f(ctx, s, c)
}

// Locator returns the configured locator for key.
func (c Case) Locator(key string) (session.Locator, error) {
	sel, ok := c.Spec.Selectors[key]
	if !ok {
		return session.Locator{}, fmt.Errorf("scenario %s: selector %q not configured", c.Name, key)
	}
	return session.ParseLocator(sel)
}

// Param returns the configured parameter for key, or def when unset.
func (c Case) Param(key, def string) string {
	if v, ok := c.Spec.Params[key]; ok {
		return v
	}
	return def
}

// open navigates to the scenario URL and checks the page title.
func (c Case) open(ctx context.Context, s *session.Session) error {
	if err := s.Open(ctx, c.URL()); err != nil {
		return err
	}
	if c.Spec.Title == "" {
		return nil
	}
	title, err := s.Title(ctx)
	if err != nil {
		return err
	}
	switch c.Spec.TitleMatch {
	case MatchContains:
		if !strings.Contains(title, c.Spec.Title) {
			return &session.AssertionError{Check: "title contains", Expected: c.Spec.Title, Actual: title}
		}
	default:
		if title != c.Spec.Title {
			return &session.AssertionError{Check: "title", Expected: c.Spec.Title, Actual: title}
		}
	}
	return nil
}

// find resolves the selector configured under key.
func (c Case) find(ctx context.Context, s *session.Session, key string) (session.Element, error) {
	loc, err := c.Locator(key)
	if err != nil {
		return nil, err
	}
	return s.Find(ctx, loc)
}

// expectVisible asserts that the element under key is displayed.
func (c Case) expectVisible(ctx context.Context, s *session.Session, key string) error {
	el, err := c.find(ctx, s, key)
	if err != nil {
		return err
	}
	visible, err := el.Visible(ctx)
	if err != nil {
		return err
	}
	if !visible {
		return session.Assertf(key+" visible", "%s is not displayed", c.Spec.Selectors[key])
	}
	return nil
}
