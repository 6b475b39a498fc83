//go:build js || wasm
// +build js wasm

package runtime

import (
	"github.com/vcrobe/sayhello/vdom"
)

const rootKey = "__root__"

// DOMRenderer mounts a single root component into the browser DOM.
// Initial renders clear the mount element; later renders patch it.
type DOMRenderer struct {
	host     *Host
	mountID  string
	prevVDOM *vdom.VNode
}

// NewRenderer creates a DOM renderer that draws into the element matching mountID.
func NewRenderer(mountID string) *DOMRenderer {
	r := &DOMRenderer{
		host:    NewHost(),
		mountID: mountID,
	}
	r.host.OnRender = func(_ string, tree *vdom.VNode) { r.paint(tree) }
	return r
}

// SetCurrentComponent replaces the root component with a fresh one from factory.
func (r *DOMRenderer) SetCurrentComponent(factory Factory) error {
	if len(r.host.Mounted()) > 0 {
		if err := r.host.Unmount(rootKey); err != nil {
			return err
		}
		r.prevVDOM = nil
	}
	_, err := r.host.Mount(rootKey, factory)
	return err
}

// RenderRoot renders the root component and writes it to the DOM.
func (r *DOMRenderer) RenderRoot() error {
	tree, err := r.host.Render(rootKey)
	if err != nil {
		return err
	}
	r.paint(tree)
	return nil
}

func (r *DOMRenderer) paint(tree *vdom.VNode) {
	if r.prevVDOM == nil {
		vdom.Clear(r.mountID)
		vdom.RenderToSelector(r.mountID, tree)
	} else {
		vdom.Patch(r.mountID, r.prevVDOM, tree)
	}
	r.prevVDOM = tree
}
