package roddriver

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/thesyncim/uicheck/pkg/session"
)

// dragSteps is the number of intermediate mouse moves in a drag.
const dragSteps = 10

// Element wraps a Rod element. Each call rebinds the element to the
// caller's context.
type Element struct {
	el   *rod.Element
	page *rod.Page
}

func (e *Element) Click(ctx context.Context) error {
	return e.el.Context(ctx).Click(proto.InputMouseButtonLeft, 1)
}

func (e *Element) Input(ctx context.Context, text string) error {
	return e.el.Context(ctx).Input(text)
}

func (e *Element) Hover(ctx context.Context) error {
	return e.el.Context(ctx).Hover()
}

func (e *Element) Text(ctx context.Context) (string, error) {
	return e.el.Context(ctx).Text()
}

func (e *Element) Visible(ctx context.Context) (bool, error) {
	return e.el.Context(ctx).Visible()
}

func (e *Element) Selected(ctx context.Context) (bool, error) {
	res, err := e.el.Context(ctx).Eval(`() => this.checked === true || this.selected === true`)
	if err != nil {
		return false, err
	}
	return res.Value.Bool(), nil
}

func (e *Element) ScrollIntoView(ctx context.Context) error {
	return e.el.Context(ctx).ScrollIntoView()
}

func (e *Element) WaitVisible(ctx context.Context) error {
	return e.el.Context(ctx).WaitVisible()
}

// WaitClickable waits until the element is visible, enabled and not covered
// by another element.
func (e *Element) WaitClickable(ctx context.Context) error {
	el := e.el.Context(ctx)
	if err := el.WaitEnabled(); err != nil {
		return err
	}
	_, err := el.WaitInteractable()
	return err
}

func (e *Element) SetFiles(ctx context.Context, paths ...string) error {
	return e.el.Context(ctx).SetFiles(paths)
}

func (e *Element) SelectOption(ctx context.Context, label string) error {
	return e.el.Context(ctx).Select([]string{label}, true, rod.SelectorTypeText)
}

// DragTo presses the mouse on the centre of e, moves to the centre of
// target and releases.
func (e *Element) DragTo(ctx context.Context, target session.Element) error {
	dst, ok := target.(*Element)
	if !ok {
		return errors.New("drag target was not located by the rod driver")
	}
	from, err := center(e.el.Context(ctx))
	if err != nil {
		return err
	}
	to, err := center(dst.el.Context(ctx))
	if err != nil {
		return err
	}

	mouse := e.page.Context(ctx).Mouse
	if err := mouse.MoveTo(from); err != nil {
		return err
	}
	if err := mouse.Down(proto.InputMouseButtonLeft, 1); err != nil {
		return err
	}
	if err := mouse.MoveLinear(to, dragSteps); err != nil {
		return err
	}
	return mouse.Up(proto.InputMouseButtonLeft, 1)
}

func center(el *rod.Element) (proto.Point, error) {
	if err := el.ScrollIntoView(); err != nil {
		return proto.Point{}, err
	}
	shape, err := el.Shape()
	if err != nil {
		return proto.Point{}, fmt.Errorf("failed to read element box: %w", err)
	}
	box := shape.Box()
	if box == nil {
		return proto.Point{}, errors.New("element has no box")
	}
	return proto.Point{X: box.X + box.Width/2, Y: box.Y + box.Height/2}, nil
}
