// Package events defines the DOM event surface the client binds to.
// No build tags: handlers and synthetic events are usable in native tests.
package events

// Event is the part of a DOM event the handlers use.
type Event interface {
	PreventDefault()
}

// Handler receives a dispatched event.
type Handler func(Event)

// Synthetic is an Event for hosts without a browser.
type Synthetic struct {
	Type      string
	prevented bool
}

// NewSynthetic creates a synthetic event of the given type.
func NewSynthetic(eventType string) *Synthetic {
	return &Synthetic{Type: eventType}
}

func (e *Synthetic) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Synthetic) DefaultPrevented() bool { return e.prevented }
