package session

import "context"

// Driver launches browsers. Each Launch must return a new, isolated browser
// that shares no state with browsers returned earlier.
type Driver interface {
	Name() string
	Launch(ctx context.Context) (Browser, error)
}

// Browser is a running browser instance with a single active page.
type Browser interface {
	Navigate(ctx context.Context, url string) error
	Title(ctx context.Context) (string, error)
	URL(ctx context.Context) (string, error)

	// Find waits until an element matching loc is attached to the page.
	// When ctx expires first the returned error matches ErrElementNotFound.
	Find(ctx context.Context, loc Locator) (Element, error)

	// Eval runs a JavaScript function expression, e.g. `() => window.scrollTo(0, 0)`.
	Eval(ctx context.Context, js string) error

	// Close terminates the browser and releases its resources.
	Close() error
}

// Element is a located node within the loaded page.
type Element interface {
	Click(ctx context.Context) error
	Input(ctx context.Context, text string) error
	Hover(ctx context.Context) error
	Text(ctx context.Context) (string, error)
	Visible(ctx context.Context) (bool, error)
	// Selected reports the checked state of inputs and the selected state of options.
	Selected(ctx context.Context) (bool, error)
	ScrollIntoView(ctx context.Context) error
	WaitVisible(ctx context.Context) error
	WaitClickable(ctx context.Context) error
	SetFiles(ctx context.Context, paths ...string) error
	SelectOption(ctx context.Context, label string) error
	// DragTo drags this element onto target. target must come from the same Browser.
	DragTo(ctx context.Context, target Element) error
}
