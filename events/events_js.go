//go:build js || wasm
// +build js wasm

package events

import "syscall/js"

// Browser wraps a DOM event object.
type Browser struct {
	Value js.Value
}

func (e Browser) PreventDefault() {
	if e.Value.Truthy() {
		e.Value.Call("preventDefault")
	}
}

// Adapt wraps handler in a js.Func. The caller owns the returned func and
// must Release it when the listener is removed.
func Adapt(handler Handler) js.Func {
	return js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := Browser{Value: js.Undefined()}
		if len(args) > 0 {
			ev.Value = args[0]
		}
		handler(ev)
		return nil
	})
}
