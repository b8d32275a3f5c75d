package scenario

import (
	"context"
	"fmt"
	"strings"

	"github.com/thesyncim/uicheck/pkg/session"
)

// dragAndDrop drags column A onto column B.
func dragAndDrop(ctx context.Context, s *session.Session, c Case) error {
	if err := c.open(ctx, s); err != nil {
		return err
	}
	src, err := c.Locator("source")
	if err != nil {
		return err
	}
	dst, err := c.Locator("target")
	if err != nil {
		return err
	}
	if err := s.Drag(ctx, src, dst); err != nil {
		return err
	}

	if c.Param("verify_swap", "false") != "true" {
		return nil
	}
	header, err := c.find(ctx, s, "source_header")
	if err != nil {
		return err
	}
	text, err := header.Text(ctx)
	if err != nil {
		return err
	}
	if got := strings.TrimSpace(text); got != "B" {
		return &session.AssertionError{Check: "columns swapped", Expected: "B", Actual: got}
	}
	return nil
}

// checkboxes ticks the first checkbox if it is not already ticked. The
// checkbox may be missing, in which case there is nothing to check.
func checkboxes(ctx context.Context, s *session.Session, c Case) error {
	if err := c.open(ctx, s); err != nil {
		return err
	}
	first, err := c.Locator("first")
	if err != nil {
		return err
	}
	return s.Optional(ctx, first, func(box session.Element) error {
		checked, err := box.Selected(ctx)
		if err != nil {
			return err
		}
		if !checked {
			if err := box.Click(ctx); err != nil {
				return fmt.Errorf("failed to tick checkbox: %w", err)
			}
		}
		checked, err = box.Selected(ctx)
		if err != nil {
			return err
		}
		if !checked {
			return session.Assertf("checkbox checked", "first checkbox is still unchecked")
		}
		return nil
	})
}

// dropdown opens the dropdown and picks an option.
func dropdown(ctx context.Context, s *session.Session, c Case) error {
	if err := c.open(ctx, s); err != nil {
		return err
	}
	menu, err := c.find(ctx, s, "dropdown")
	if err != nil {
		return err
	}
	if err := menu.Click(ctx); err != nil {
		return fmt.Errorf("failed to open dropdown: %w", err)
	}
	label := c.Param("option", "Option 1")
	if err := menu.SelectOption(ctx, label); err != nil {
		return fmt.Errorf("failed to select %q: %w", label, err)
	}

	option, err := c.find(ctx, s, "option")
	if err != nil {
		return err
	}
	selected, err := option.Selected(ctx)
	if err != nil {
		return err
	}
	if !selected {
		return session.Assertf("option selected", "%q is not selected", label)
	}
	return nil
}

// scroll checks the floating menu stays on screen after scrolling to the bottom.
func scroll(ctx context.Context, s *session.Session, c Case) error {
	if err := c.open(ctx, s); err != nil {
		return err
	}
	if err := c.expectVisible(ctx, s, "home"); err != nil {
		return err
	}
	if err := s.Exec(ctx, `() => window.scrollTo(0, document.body.scrollHeight)`); err != nil {
		return err
	}
	return c.expectVisible(ctx, s, "home")
}

// hover moves the pointer over the first figure and expects its caption.
func hover(ctx context.Context, s *session.Session, c Case) error {
	if err := c.open(ctx, s); err != nil {
		return err
	}
	figure, err := c.find(ctx, s, "figure")
	if err != nil {
		return err
	}
	if err := figure.Hover(ctx); err != nil {
		return fmt.Errorf("failed to hover figure: %w", err)
	}
	caption, err := c.Locator("caption")
	if err != nil {
		return err
	}
	if _, err := s.WaitVisible(ctx, caption); err != nil {
		return session.Assertf("caption visible", "caption %s not shown on hover: %v", caption, err)
	}
	return nil
}

// redirect follows the redirect link and waits for the browser to land elsewhere.
func redirect(ctx context.Context, s *session.Session, c Case) error {
	if err := c.open(ctx, s); err != nil {
		return err
	}
	start, err := s.URL(ctx)
	if err != nil {
		return err
	}
	link, err := c.find(ctx, s, "link")
	if err != nil {
		return err
	}
	if err := link.Click(ctx); err != nil {
		return fmt.Errorf("failed to click redirect link: %w", err)
	}

	url, err := s.WaitURL(ctx, func(u string) bool { return u != start })
	if err != nil {
		return session.Assertf("redirected", "still on %s: %v", url, err)
	}
	s.Logger().WithField("url", url).Info("Redirected")

	if want := c.Param("expect_url_contains", ""); want != "" && !strings.Contains(url, want) {
		return &session.AssertionError{Check: "redirect target", Expected: "URL containing " + want, Actual: url}
	}
	return nil
}
