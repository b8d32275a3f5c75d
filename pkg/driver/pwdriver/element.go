package pwdriver

import (
	"context"
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/thesyncim/uicheck/pkg/session"
)

// Element wraps a Playwright locator resolved to its first match.
type Element struct {
	loc playwright.Locator
}

func (e *Element) Click(ctx context.Context) error {
	return e.loc.Click(playwright.LocatorClickOptions{Timeout: timeoutMS(ctx)})
}

func (e *Element) Input(ctx context.Context, text string) error {
	return e.loc.Fill(text, playwright.LocatorFillOptions{Timeout: timeoutMS(ctx)})
}

func (e *Element) Hover(ctx context.Context) error {
	return e.loc.Hover(playwright.LocatorHoverOptions{Timeout: timeoutMS(ctx)})
}

func (e *Element) Text(ctx context.Context) (string, error) {
	return e.loc.InnerText(playwright.LocatorInnerTextOptions{Timeout: timeoutMS(ctx)})
}

func (e *Element) Visible(ctx context.Context) (bool, error) {
	return e.loc.IsVisible()
}

func (e *Element) Selected(ctx context.Context) (bool, error) {
	v, err := e.loc.Evaluate(`el => el.checked === true || el.selected === true`, nil,
		playwright.LocatorEvaluateOptions{Timeout: timeoutMS(ctx)})
	if err != nil {
		return false, err
	}
	selected, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("unexpected selected state %v", v)
	}
	return selected, nil
}

func (e *Element) ScrollIntoView(ctx context.Context) error {
	return e.loc.ScrollIntoViewIfNeeded(playwright.LocatorScrollIntoViewIfNeededOptions{Timeout: timeoutMS(ctx)})
}

func (e *Element) WaitVisible(ctx context.Context) error {
	return e.loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: timeoutMS(ctx),
	})
}

// WaitClickable waits for visibility and then requires the element to be
// enabled. Playwright's own actionability checks cover the rest at click time.
func (e *Element) WaitClickable(ctx context.Context) error {
	if err := e.WaitVisible(ctx); err != nil {
		return err
	}
	enabled, err := e.loc.IsEnabled()
	if err != nil {
		return err
	}
	if !enabled {
		return errors.New("element is disabled")
	}
	return nil
}

func (e *Element) SetFiles(ctx context.Context, paths ...string) error {
	return e.loc.SetInputFiles(paths, playwright.LocatorSetInputFilesOptions{Timeout: timeoutMS(ctx)})
}

func (e *Element) SelectOption(ctx context.Context, label string) error {
	_, err := e.loc.SelectOption(playwright.SelectOptionValues{Labels: &[]string{label}},
		playwright.LocatorSelectOptionOptions{Timeout: timeoutMS(ctx)})
	return err
}

func (e *Element) DragTo(ctx context.Context, target session.Element) error {
	dst, ok := target.(*Element)
	if !ok {
		return errors.New("drag target was not located by the playwright driver")
	}
	return e.loc.DragTo(dst.loc, playwright.LocatorDragToOptions{Timeout: timeoutMS(ctx)})
}
