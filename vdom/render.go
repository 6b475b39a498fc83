//go:build js || wasm
// +build js wasm

package vdom

import (
	"fmt"
	"syscall/js"

	"github.com/vcrobe/sayhello/console"
)

// callbacks tracks the js.Func handlers attached under each mount selector.
var callbacks callbackRegistry[js.Func]

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}
	mount, ok := querySelector(selector)
	if !ok {
		return
	}
	callbacks.add(selector, RenderTo(mount, n)...)
}

// RenderTo appends the rendered node to a specific mount element and returns
// the event callbacks it attached. The caller owns them and must Release them
// once the element is removed.
func RenderTo(mount js.Value, n *VNode) []js.Func {
	if n == nil {
		return nil
	}
	var fns []js.Func
	el := createElement(n, &fns)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
	return fns
}

// Clear removes every child of the element matching selector and releases
// the callbacks attached under it.
func Clear(selector string) {
	callbacks.release(selector)
	mount, ok := querySelector(selector)
	if !ok {
		return
	}
	mount.Set("innerHTML", "")
}

// Patch brings the DOM under selector from prev to next. Unchanged trees are
// left alone; changed trees are rebuilt.
func Patch(selector string, prev, next *VNode) {
	if Equal(prev, next) {
		return
	}
	Clear(selector)
	RenderToSelector(selector, next)
}

func querySelector(selector string) (js.Value, bool) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined(), false
	}
	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return js.Undefined(), false
	}
	return mount, true
}

func createElement(n *VNode, fns *[]js.Func) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.IsText() {
		return doc.Call("createTextNode", n.Content)
	}

	el := doc.Call("createElement", n.Tag)
	for k, v := range n.Attributes {
		if _, isFunc := v.(func()); isFunc {
			continue
		}
		el.Call("setAttribute", k, fmt.Sprint(v))
	}

	if n.Tag == "input" {
		// For text input, set value if provided in Content
		if n.Content != "" {
			el.Set("value", n.Content)
		}
		return el
	}

	if n.Content != "" {
		el.Set("textContent", n.Content)
	}
	for _, child := range n.Children {
		childEl := createElement(child, fns)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}

	// Attach Go OnClick handler if present
	if n.OnClick != nil {
		onClick := n.OnClick
		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			onClick()
			return nil
		})
		el.Call("addEventListener", "click", cb)
		*fns = append(*fns, cb)
	}
	return el
}
