package scenario

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/thesyncim/uicheck/pkg/session"
)

const fakeBase = "http://demo.test"

// fakeSite is a session.Driver whose browsers serve scripted replicas of the
// demo pages. mutate, when set, edits the pages of every launched browser.
type fakeSite struct {
	mutate func(pages map[string]*fakePage)
	last   *fakeBrowser
}

func (f *fakeSite) Name() string { return "fake" }

func (f *fakeSite) Launch(ctx context.Context) (session.Browser, error) {
	b := &fakeBrowser{}
	b.pages = b.buildPages()
	if f.mutate != nil {
		f.mutate(b.pages)
	}
	f.last = b
	return b, nil
}

type fakePage struct {
	title string
	els   map[string]*fakeEl
}

type fakeBrowser struct {
	pages   map[string]*fakePage
	url     string
	current *fakePage
	scripts []string
}

func (b *fakeBrowser) Navigate(ctx context.Context, url string) error {
	b.url = url
	p, ok := b.pages[url]
	if !ok {
		p = &fakePage{title: "Not Found", els: map[string]*fakeEl{}}
	}
	b.current = p
	return nil
}

func (b *fakeBrowser) Title(ctx context.Context) (string, error) {
	if b.current == nil {
		return "", nil
	}
	return b.current.title, nil
}

func (b *fakeBrowser) URL(ctx context.Context) (string, error) { return b.url, nil }

func (b *fakeBrowser) Find(ctx context.Context, loc session.Locator) (session.Element, error) {
	if b.current != nil {
		if el, ok := b.current.els[loc.String()]; ok {
			return el, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", session.ErrElementNotFound, loc)
}

func (b *fakeBrowser) Eval(ctx context.Context, js string) error {
	b.scripts = append(b.scripts, js)
	return nil
}

func (b *fakeBrowser) Close() error { return nil }

type fakeEl struct {
	visible  bool
	selected bool
	disabled bool
	text     string
	files    []string

	onClick  func()
	onHover  func()
	onDrag   func(target *fakeEl)
	onSelect func(label string) error
}

func (e *fakeEl) Click(ctx context.Context) error {
	if e.onClick != nil {
		e.onClick()
	}
	return nil
}
func (e *fakeEl) Input(ctx context.Context, text string) error { e.text = text; return nil }
func (e *fakeEl) Hover(ctx context.Context) error {
	if e.onHover != nil {
		e.onHover()
	}
	return nil
}
func (e *fakeEl) Text(ctx context.Context) (string, error) { return e.text, nil }
func (e *fakeEl) Visible(ctx context.Context) (bool, error) { return e.visible, nil }
func (e *fakeEl) Selected(ctx context.Context) (bool, error) { return e.selected, nil }
func (e *fakeEl) ScrollIntoView(ctx context.Context) error { return nil }
func (e *fakeEl) WaitVisible(ctx context.Context) error {
	if e.visible {
		return nil
	}
	<-ctx.Done()
	return ctx.Err()
}
func (e *fakeEl) WaitClickable(ctx context.Context) error {
	if e.disabled {
		<-ctx.Done()
		return ctx.Err()
	}
	return e.WaitVisible(ctx)
}
func (e *fakeEl) SetFiles(ctx context.Context, paths ...string) error { e.files = paths; return nil }
func (e *fakeEl) SelectOption(ctx context.Context, label string) error {
	if e.onSelect == nil {
		return errors.New("not a select element")
	}
	return e.onSelect(label)
}
func (e *fakeEl) DragTo(ctx context.Context, target session.Element) error {
	t, ok := target.(*fakeEl)
	if !ok {
		return errors.New("foreign element")
	}
	if e.onDrag != nil {
		e.onDrag(t)
	}
	return nil
}

func (b *fakeBrowser) buildPages() map[string]*fakePage {
	const internet = "The Internet"
	pages := map[string]*fakePage{}

	// login
	loggedIn := &fakeEl{text: ""}
	username := &fakeEl{visible: true}
	pages[fakeBase+"/demoqa/login"] = &fakePage{title: "DEMOQA", els: map[string]*fakeEl{
		"id:userName":       username,
		"id:password":       {visible: true},
		"id:close-fixedban": {visible: true},
		"id:login": {visible: true, onClick: func() {
			loggedIn.visible = true
			loggedIn.text = username.text
		}},
		"id:userName-value": loggedIn,
	}}

	// drag and drop
	headerA := &fakeEl{visible: true, text: "A"}
	colA := &fakeEl{visible: true}
	colB := &fakeEl{visible: true}
	colA.onDrag = func(target *fakeEl) {
		if target == colB {
			headerA.text = "B"
		}
	}
	pages[fakeBase+"/drag_and_drop"] = &fakePage{title: internet, els: map[string]*fakeEl{
		"id:column-a":          colA,
		"id:column-b":          colB,
		"css:#column-a header": headerA,
	}}

	// checkboxes
	box := &fakeEl{visible: true}
	box.onClick = func() { box.selected = !box.selected }
	pages[fakeBase+"/checkboxes"] = &fakePage{title: internet, els: map[string]*fakeEl{
		`xpath://h3[text()="Checkboxes"]/following-sibling::form//input[@type="checkbox"][1]`: box,
	}}

	// dropdown
	option1 := &fakeEl{}
	menu := &fakeEl{visible: true, onSelect: func(label string) error {
		if label != "Option 1" {
			return fmt.Errorf("no option %q", label)
		}
		option1.selected = true
		return nil
	}}
	pages[fakeBase+"/dropdown"] = &fakePage{title: internet, els: map[string]*fakeEl{
		"id:dropdown":                       menu,
		`xpath://option[text()="Option 1"]`: option1,
	}}

	// floating menu
	pages[fakeBase+"/floating_menu"] = &fakePage{title: internet, els: map[string]*fakeEl{
		"xpath://a[text()='Home']": {visible: true},
	}}

	// hovers
	caption := &fakeEl{}
	pages[fakeBase+"/hovers"] = &fakePage{title: internet, els: map[string]*fakeEl{
		`xpath://div[@class="figure"][1]`: {visible: true, onHover: func() { caption.visible = true }},
		"xpath://img/following-sibling::div//h5[text()='name: user1']": caption,
	}}

	// redirector
	pages[fakeBase+"/redirector"] = &fakePage{title: internet, els: map[string]*fakeEl{
		"link:here": {visible: true, onClick: func() { _ = b.Navigate(context.Background(), fakeBase+"/status_codes") }},
	}}
	pages[fakeBase+"/status_codes"] = &fakePage{title: internet, els: map[string]*fakeEl{}}

	// upload
	input := &fakeEl{visible: true}
	result := &fakeEl{}
	pages[fakeBase+"/upload"] = &fakePage{title: internet, els: map[string]*fakeEl{
		"id:file-upload": input,
		"id:file-submit": {visible: true, onClick: func() {
			if len(input.files) > 0 {
				result.visible = true
				result.text = "\n" + filepath.Base(input.files[0]) + "\n"
			}
		}},
		"id:uploaded-files": result,
	}}

	return pages
}
