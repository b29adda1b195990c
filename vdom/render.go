//go:build js || wasm
// +build js wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/cafelist/console"
)

// Mount replaces every child of mount with the rendered nodes.
func Mount(mount js.Value, nodes ...*VNode) {
	if !mount.Truthy() {
		return
	}

	// Set innerHTML to an empty string to clear all children.
	mount.Set("innerHTML", "")

	for _, n := range nodes {
		RenderTo(mount, n)
	}
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}

	el := createElement(n)

	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

// setAttributeValue sets an attribute on an element, handling boolean attributes correctly.
func setAttributeValue(el js.Value, key string, value any) {
	s, ok := AttributeString(value)
	if !ok {
		return
	}
	el.Call("setAttribute", key, s)
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == TextTag {
		if n.Content == "" {
			return js.Undefined()
		}
		return doc.Call("createTextNode", n.Content)
	}

	if n.Tag == "" {
		console.Error("Unsupported tag: ", n.Tag)
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)

	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}

	if n.Content != "" {
		el.Call("appendChild", doc.Call("createTextNode", n.Content))
	}

	for _, child := range n.Children {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}

	return el
}
