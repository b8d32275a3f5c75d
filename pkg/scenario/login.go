package scenario

import (
	"context"
	"fmt"

	"github.com/thesyncim/uicheck/pkg/session"
)

// login fills the demoqa login form and submits it. A fixed advert banner
// may cover the button; it is closed when present.
func login(ctx context.Context, s *session.Session, c Case) error {
	if err := c.open(ctx, s); err != nil {
		return err
	}

	for _, field := range []string{"username", "password"} {
		el, err := c.find(ctx, s, field)
		if err != nil {
			return err
		}
		if err := el.Input(ctx, c.Param(field, "")); err != nil {
			return fmt.Errorf("failed to type %s: %w", field, err)
		}
	}

	overlay, err := c.Locator("overlay")
	if err == nil {
		err = s.Optional(ctx, overlay, func(el session.Element) error {
			return el.Click(ctx)
		})
		if err != nil {
			return fmt.Errorf("failed to close overlay: %w", err)
		}
	}

	btn, err := c.find(ctx, s, "submit")
	if err != nil {
		return err
	}
	if err := btn.ScrollIntoView(ctx); err != nil {
		return fmt.Errorf("failed to scroll to login button: %w", err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, s.ElementTimeout())
	defer cancel()
	if err := btn.WaitClickable(waitCtx); err != nil {
		return session.Assertf("login clickable", "login button never became clickable: %v", err)
	}
	if err := btn.Click(ctx); err != nil {
		return fmt.Errorf("failed to click login: %w", err)
	}

	if _, ok := c.Spec.Selectors["welcome"]; !ok {
		return nil
	}
	welcome, err := c.Locator("welcome")
	if err != nil {
		return err
	}
	el, err := s.WaitVisible(ctx, welcome)
	if err != nil {
		return session.Assertf("logged in", "welcome element %s not shown: %v", welcome, err)
	}
	name, err := el.Text(ctx)
	if err != nil {
		return err
	}
	if want := c.Param("username", ""); name != want {
		return &session.AssertionError{Check: "logged in user", Expected: want, Actual: name}
	}
	return nil
}
