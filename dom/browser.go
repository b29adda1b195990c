//go:build js || wasm
// +build js wasm

package dom

import (
	"fmt"
	"syscall/js"

	"github.com/vcrobe/cafelist/events"
	"github.com/vcrobe/cafelist/vdom"
)

var _ Document = (*Browser)(nil)

// Browser is the live page document.
type Browser struct {
	doc       js.Value
	callbacks []js.Func
}

// NewBrowser wraps the global document.
func NewBrowser() *Browser {
	return &Browser{doc: js.Global().Get("document")}
}

// OnReady runs fn once the document has been parsed: right away if it
// already has, otherwise on DOMContentLoaded.
func (b *Browser) OnReady(fn func()) {
	if !b.doc.Truthy() || Parsed(b.doc.Get("readyState").String()) {
		fn()
		return
	}
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	b.doc.Call("addEventListener", "DOMContentLoaded", cb, map[string]any{"once": true})
}

func (b *Browser) element(id string) (js.Value, error) {
	if !b.doc.Truthy() {
		return js.Undefined(), fmt.Errorf("#%s: no document: %w", id, ErrElementNotFound)
	}
	el := b.doc.Call("getElementById", id)
	if !el.Truthy() {
		return js.Undefined(), fmt.Errorf("#%s: %w", id, ErrElementNotFound)
	}
	return el, nil
}

func (b *Browser) SetContent(id string, nodes ...*vdom.VNode) error {
	el, err := b.element(id)
	if err != nil {
		return err
	}
	vdom.Mount(el, nodes...)
	return nil
}

func (b *Browser) Value(id string) (string, error) {
	el, err := b.element(id)
	if err != nil {
		return "", err
	}
	return el.Get("value").String(), nil
}

func (b *Browser) AddEventListener(id, event string, h events.Handler) error {
	el, err := b.element(id)
	if err != nil {
		return err
	}
	cb := events.Adapt(h)
	el.Call("addEventListener", event, cb)
	b.callbacks = append(b.callbacks, cb)
	return nil
}

// Release frees every listener callback. The listeners stop working.
func (b *Browser) Release() {
	for _, cb := range b.callbacks {
		cb.Release()
	}
	b.callbacks = nil
}
