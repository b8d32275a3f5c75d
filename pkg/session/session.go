package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Session is a browser session owned by exactly one test case.
type Session struct {
	id      string
	driver  string
	browser Browser
	cfg     Config
	logger  logrus.FieldLogger

	releaseOnce sync.Once
	releaseErr  error
	released    bool
	mu          sync.Mutex
}

// ID returns the unique identifier of the session.
func (s *Session) ID() string { return s.id }

// Driver returns the name of the driver that launched the session.
func (s *Session) Driver() string { return s.driver }

// Logger returns a logger annotated with the session ID.
func (s *Session) Logger() logrus.FieldLogger { return s.logger }

// Released reports whether Release has been called.
func (s *Session) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}

// Release closes the browser. The underlying Close runs exactly once;
// subsequent calls return the first call's error.
func (s *Session) Release() error {
	s.releaseOnce.Do(func() {
		s.mu.Lock()
		s.released = true
		s.mu.Unlock()
		if err := s.browser.Close(); err != nil {
			s.releaseErr = fmt.Errorf("failed to release session %s: %w", s.id, err)
		}
	})
	return s.releaseErr
}

// Open navigates to url, bounded by the navigation timeout.
func (s *Session) Open(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.NavigationTimeout)
	defer cancel()

	s.logger.WithField("url", url).Debug("Navigating")
	if err := s.browser.Navigate(ctx, url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// Title returns the current page title.
func (s *Session) Title(ctx context.Context) (string, error) {
	return s.browser.Title(ctx)
}

// URL returns the current page URL.
func (s *Session) URL(ctx context.Context) (string, error) {
	return s.browser.URL(ctx)
}

// Find locates an element, waiting up to the element timeout.
func (s *Session) Find(ctx context.Context, loc Locator) (Element, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ElementTimeout)
	defer cancel()

	el, err := s.browser.Find(ctx, loc)
	if err != nil {
		if errors.Is(err, ErrElementNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find %s: %w", loc, err)
	}
	return el, nil
}

// WaitVisible locates an element and waits until it is visible. Lookup and
// wait share one element timeout.
func (s *Session) WaitVisible(ctx context.Context, loc Locator) (Element, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ElementTimeout)
	defer cancel()

	el, err := s.browser.Find(ctx, loc)
	if err != nil {
		return nil, err
	}
	if err := el.WaitVisible(ctx); err != nil {
		return nil, fmt.Errorf("%s never became visible: %w", loc, err)
	}
	return el, nil
}

// Optional runs fn on the element at loc if it exists. An absent element is
// logged and treated as success; any other error is returned.
func (s *Session) Optional(ctx context.Context, loc Locator, fn func(Element) error) error {
	el, err := s.Find(ctx, loc)
	if errors.Is(err, ErrElementNotFound) {
		s.logger.WithField("locator", loc.String()).Info("Optional element absent, continuing")
		return nil
	}
	if err != nil {
		return err
	}
	return fn(el)
}

// Exec runs a JavaScript function expression in the page.
func (s *Session) Exec(ctx context.Context, js string) error {
	if err := s.browser.Eval(ctx, js); err != nil {
		return fmt.Errorf("script failed: %w", err)
	}
	return nil
}

// Drag locates both elements and drags from onto to.
func (s *Session) Drag(ctx context.Context, from, to Locator) error {
	src, err := s.Find(ctx, from)
	if err != nil {
		return err
	}
	dst, err := s.Find(ctx, to)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ElementTimeout)
	defer cancel()
	if err := src.DragTo(ctx, dst); err != nil {
		return fmt.Errorf("failed to drag %s onto %s: %w", from, to, err)
	}
	return nil
}

// WaitURL polls the page URL until cond accepts it or the element timeout
// elapses. It returns the last URL observed.
func (s *Session) WaitURL(ctx context.Context, cond func(string) bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ElementTimeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	var last string
	for {
		url, err := s.browser.URL(ctx)
		if err == nil {
			last = url
			if cond(url) {
				return url, nil
			}
		}
		select {
		case <-ctx.Done():
			return last, fmt.Errorf("timeout waiting for URL (last %q): %w", last, ctx.Err())
		case <-ticker.C:
		}
	}
}

// ElementTimeout returns the configured element timeout.
func (s *Session) ElementTimeout() time.Duration { return s.cfg.ElementTimeout }
