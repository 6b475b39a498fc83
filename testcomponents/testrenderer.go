package testcomponents

import (
	"github.com/vcrobe/sayhello/runtime"
	"github.com/vcrobe/sayhello/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	renders     int
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs a render of the component and returns the new VDOM.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.currentVDOM = r.component.Render(r)
	r.renders++
	return r.currentVDOM
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.RenderRoot()
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// Renders returns how many times the component has been rendered.
func (r *TestRenderer) Renders() int {
	return r.renders
}

// RenderChild renders child in place without tracking its instance.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	child.SetRenderer(r)
	return child.Render(r)
}
