//go:build js || wasm

package dialogs

import (
	"syscall/js"
)

func Alert(msg string) {
	js.Global().Call("alert", msg)
}

// Browser shows notices as blocking window.alert dialogs.
type Browser struct{}

func (Browser) Alert(msg string) { Alert(msg) }
