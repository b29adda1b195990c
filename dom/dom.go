// Package dom is the slice of the page the cafe client touches: replacing an
// element's children, reading an input value and binding event listeners.
package dom

import (
	"errors"

	"github.com/vcrobe/cafelist/events"
	"github.com/vcrobe/cafelist/vdom"
)

// ErrElementNotFound is returned when no element has the requested id.
var ErrElementNotFound = errors.New("element not found")

// Parsed reports whether a document in the given readyState has been fully
// parsed, so every element in the markup can be looked up.
func Parsed(readyState string) bool {
	switch readyState {
	case "interactive", "complete":
		return true
	}
	return false
}

// Document looks elements up by id.
type Document interface {
	// SetContent replaces every child of the element with nodes.
	SetContent(id string, nodes ...*vdom.VNode) error

	// Value returns the current value of a form control.
	Value(id string) (string, error)

	// AddEventListener binds h to events of the given type on the element.
	AddEventListener(id, event string, h events.Handler) error
}
