package dom

import (
	"fmt"
	"sync"

	"github.com/vcrobe/cafelist/events"
	"github.com/vcrobe/cafelist/vdom"
)

var _ Document = (*Memory)(nil)

type element struct {
	value     string
	content   string
	listeners map[string][]events.Handler
}

// Memory is a Document for hosts without a browser. Content is kept as the
// serialized HTML the browser would hold in innerHTML.
type Memory struct {
	mu       sync.Mutex
	elements map[string]*element
	writes   int
}

// NewMemory creates a document containing the given element ids.
func NewMemory(ids ...string) *Memory {
	m := &Memory{elements: make(map[string]*element, len(ids))}
	for _, id := range ids {
		m.elements[id] = &element{listeners: make(map[string][]events.Handler)}
	}
	return m
}

func (m *Memory) lookup(id string) (*element, error) {
	el, ok := m.elements[id]
	if !ok {
		return nil, fmt.Errorf("#%s: %w", id, ErrElementNotFound)
	}
	return el, nil
}

func (m *Memory) SetContent(id string, nodes ...*vdom.VNode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, err := m.lookup(id)
	if err != nil {
		return err
	}
	el.content = vdom.HTML(nodes...)
	m.writes++
	return nil
}

func (m *Memory) Value(id string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, err := m.lookup(id)
	if err != nil {
		return "", err
	}
	return el.value, nil
}

func (m *Memory) AddEventListener(id, event string, h events.Handler) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, err := m.lookup(id)
	if err != nil {
		return err
	}
	el.listeners[event] = append(el.listeners[event], h)
	return nil
}

// SetValue sets the value of a form control, as if the user typed it.
func (m *Memory) SetValue(id, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, err := m.lookup(id)
	if err != nil {
		return err
	}
	el.value = value
	return nil
}

// Content returns the element's serialized children.
func (m *Memory) Content(id string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, err := m.lookup(id)
	if err != nil {
		return "", err
	}
	return el.content, nil
}

// Writes counts SetContent calls across all elements.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Dispatch runs the listeners bound to event on the element, in bind order.
// It returns the number of listeners run.
func (m *Memory) Dispatch(id, event string, ev events.Event) (int, error) {
	m.mu.Lock()
	el, err := m.lookup(id)
	if err != nil {
		m.mu.Unlock()
		return 0, err
	}
	handlers := make([]events.Handler, len(el.listeners[event]))
	copy(handlers, el.listeners[event])
	m.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
	return len(handlers), nil
}
