package session

import (
	"fmt"
	"strconv"
	"strings"
)

// By names a locator strategy.
type By string

// Locator strategies.
const (
	ByID    By = "id"
	ByCSS   By = "css"
	ByXPath By = "xpath"
	ByLink  By = "link"
	ByText  By = "text"
)

// ExprKind is the query language a locator resolves to.
type ExprKind int

// Expression kinds understood by every Driver.
const (
	CSSExpr ExprKind = iota
	XPathExpr
)

// Locator addresses an element by identifier, selector or visible text.
type Locator struct {
	By    By
	Value string
}

// ID returns a locator matching the element with the given id attribute.
func ID(id string) Locator { return Locator{By: ByID, Value: id} }

// CSS returns a locator for a CSS selector.
func CSS(selector string) Locator { return Locator{By: ByCSS, Value: selector} }

// XPath returns a locator for an XPath expression.
func XPath(expr string) Locator { return Locator{By: ByXPath, Value: expr} }

// LinkText returns a locator matching an anchor by its exact visible text.
func LinkText(text string) Locator { return Locator{By: ByLink, Value: text} }

// Text returns a locator matching any element whose own text equals text.
func Text(text string) Locator { return Locator{By: ByText, Value: text} }

// ParseLocator parses "by:value" strings such as "id:login" or
// "xpath://h3". A string without a known prefix is a CSS selector.
func ParseLocator(s string) (Locator, error) {
	if s == "" {
		return Locator{}, fmt.Errorf("empty locator")
	}
	by, value, ok := strings.Cut(s, ":")
	if !ok {
		return CSS(s), nil
	}
	switch By(by) {
	case ByID, ByCSS, ByXPath, ByLink, ByText:
		if value == "" {
			return Locator{}, fmt.Errorf("locator %q has an empty value", s)
		}
		return Locator{By: By(by), Value: value}, nil
	default:
		// pseudo-classes like "a:hover" are plain CSS
		return CSS(s), nil
	}
}

// Expr resolves the locator to a single CSS or XPath expression.
func (l Locator) Expr() (ExprKind, string) {
	switch l.By {
	case ByID:
		return CSSExpr, "[id=" + strconv.Quote(l.Value) + "]"
	case ByXPath:
		return XPathExpr, l.Value
	case ByLink:
		return XPathExpr, "//a[normalize-space(.)=" + xpathLiteral(l.Value) + "]"
	case ByText:
		return XPathExpr, "//*[normalize-space(text())=" + xpathLiteral(l.Value) + "]"
	default:
		return CSSExpr, l.Value
	}
}

func (l Locator) String() string {
	return string(l.By) + ":" + l.Value
}

// xpathLiteral quotes s for use inside an XPath 1.0 expression, which has
// no escape sequences.
func xpathLiteral(s string) string {
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	parts := strings.Split(s, `"`)
	quoted := make([]string, 0, 2*len(parts))
	for i, p := range parts {
		if i > 0 {
			quoted = append(quoted, `'"'`)
		}
		quoted = append(quoted, `"`+p+`"`)
	}
	return "concat(" + strings.Join(quoted, ",") + ")"
}
