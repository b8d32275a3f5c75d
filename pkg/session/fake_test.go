package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// fakeDriver launches in-memory browsers and remembers every one of them.
type fakeDriver struct {
	mu        sync.Mutex
	launchErr error
	closeErr  error
	elements  map[string]*fakeElement
	browsers  []*fakeBrowser
}

func (d *fakeDriver) Name() string { return "fake" }

func (d *fakeDriver) Launch(ctx context.Context) (Browser, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.launchErr != nil {
		return nil, d.launchErr
	}
	b := &fakeBrowser{closeErr: d.closeErr, elements: d.elements, title: "fake"}
	d.browsers = append(d.browsers, b)
	return b, nil
}

func (d *fakeDriver) launched() []*fakeBrowser {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*fakeBrowser(nil), d.browsers...)
}

type fakeBrowser struct {
	mu       sync.Mutex
	closed   int
	closeErr error
	url      string
	title    string
	elements map[string]*fakeElement
	scripts  []string
	// urls, when set, is returned one entry per URL call (last entry repeats).
	urls []string
}

func (b *fakeBrowser) Navigate(ctx context.Context, url string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.url = url
	return nil
}

func (b *fakeBrowser) Title(ctx context.Context) (string, error) { return b.title, nil }

func (b *fakeBrowser) URL(ctx context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.urls) > 0 {
		u := b.urls[0]
		if len(b.urls) > 1 {
			b.urls = b.urls[1:]
		}
		return u, nil
	}
	return b.url, nil
}

func (b *fakeBrowser) Find(ctx context.Context, loc Locator) (Element, error) {
	if el, ok := b.elements[loc.String()]; ok {
		return el, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrElementNotFound, loc)
}

func (b *fakeBrowser) Eval(ctx context.Context, js string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scripts = append(b.scripts, js)
	return nil
}

func (b *fakeBrowser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed++
	return b.closeErr
}

func (b *fakeBrowser) closeCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

type fakeElement struct {
	clicks   int
	visible  bool
	selected bool
	text     string
	clickErr error
	dragged  Element
}

func (e *fakeElement) Click(ctx context.Context) error {
	if e.clickErr != nil {
		return e.clickErr
	}
	e.clicks++
	e.selected = !e.selected
	return nil
}
func (e *fakeElement) Input(ctx context.Context, text string) error { e.text += text; return nil }
func (e *fakeElement) Hover(ctx context.Context) error { return nil }
func (e *fakeElement) Text(ctx context.Context) (string, error) { return e.text, nil }
func (e *fakeElement) Visible(ctx context.Context) (bool, error) { return e.visible, nil }
func (e *fakeElement) Selected(ctx context.Context) (bool, error) { return e.selected, nil }
func (e *fakeElement) ScrollIntoView(ctx context.Context) error { return nil }
func (e *fakeElement) WaitVisible(ctx context.Context) error {
	if !e.visible {
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}
func (e *fakeElement) WaitClickable(ctx context.Context) error { return e.WaitVisible(ctx) }
func (e *fakeElement) SetFiles(ctx context.Context, paths ...string) error { return nil }
func (e *fakeElement) SelectOption(ctx context.Context, label string) error { return nil }
func (e *fakeElement) DragTo(ctx context.Context, target Element) error {
	if _, ok := target.(*fakeElement); !ok {
		return errors.New("foreign element")
	}
	e.dragged = target
	return nil
}
