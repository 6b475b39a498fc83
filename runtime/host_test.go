//go:build !wasm
// +build !wasm

package runtime

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/sayhello/vdom"
)

// probe records every lifecycle call it receives.
type probe struct {
	ComponentBase
	Label string

	inits, params, renders, destroys int
}

func (p *probe) OnInit()          { p.inits++ }
func (p *probe) OnParametersSet() { p.params++ }
func (p *probe) OnDestroy()       { p.destroys++ }

func (p *probe) Render(r Renderer) *vdom.VNode {
	p.renders++
	return vdom.Paragraph(fmt.Sprintf("%s %d", p.Label, p.renders), nil)
}

// parent renders one probe child per entry in Keys.
type parent struct {
	ComponentBase
	Keys []string
}

func (p *parent) Render(r Renderer) *vdom.VNode {
	children := make([]*vdom.VNode, 0, len(p.Keys))
	for _, key := range p.Keys {
		children = append(children, r.RenderChild(key, &probe{Label: key}))
	}
	return vdom.Div(nil, children...)
}

func TestHost_MountRunsOnInitOnce(t *testing.T) {
	h := NewHost()
	p := &probe{Label: "p"}

	comp, err := h.Mount("a", func() Component { return p })
	require.NoError(t, err)
	assert.Same(t, p, comp)
	assert.Equal(t, 1, p.inits)
	assert.Same(t, h, p.GetRenderer())

	for i := 0; i < 3; i++ {
		_, err := h.Render("a")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, p.inits)
	assert.Equal(t, 3, p.params)
	assert.Equal(t, 3, p.renders)
}

func TestHost_MountErrors(t *testing.T) {
	h := NewHost()
	_, err := h.Mount("a", func() Component { return &probe{} })
	require.NoError(t, err)

	_, err = h.Mount("a", func() Component { return &probe{} })
	assert.ErrorIs(t, err, ErrAlreadyMounted)

	_, err = h.Mount("b", func() Component { return nil })
	assert.ErrorIs(t, err, ErrNilComponent)
	assert.Equal(t, []string{"a"}, h.Mounted())
}

func TestHost_UnknownKey(t *testing.T) {
	h := NewHost()

	_, err := h.Render("missing")
	assert.ErrorIs(t, err, ErrNotMounted)
	assert.ErrorIs(t, h.Unmount("missing"), ErrNotMounted)
}

func TestHost_RemountGetsFreshInstance(t *testing.T) {
	h := NewHost()
	first := &probe{Label: "p"}
	_, err := h.Mount("a", func() Component { return first })
	require.NoError(t, err)
	_, err = h.Render("a")
	require.NoError(t, err)

	require.NoError(t, h.Unmount("a"))
	assert.Equal(t, 1, first.destroys)
	assert.Empty(t, h.Mounted())

	comp, err := h.Mount("a", func() Component { return &probe{Label: "p"} })
	require.NoError(t, err)
	assert.NotSame(t, first, comp)

	tree, err := h.Render("a")
	require.NoError(t, err)
	assert.Equal(t, "p 1", tree.TextContent())
}

func TestHost_ChildrenPreservedAcrossRenders(t *testing.T) {
	h := NewHost()
	root := &parent{Keys: []string{"x", "y"}}
	_, err := h.Mount("root", func() Component { return root })
	require.NoError(t, err)

	_, err = h.Render("root")
	require.NoError(t, err)
	tree, err := h.Render("root")
	require.NoError(t, err)

	// Kept instances render a second time instead of starting over.
	assert.Equal(t, "x 2y 2", tree.TextContent())

	x := h.children["root"]["x"].(*probe)
	assert.Equal(t, 1, x.inits)
	assert.Equal(t, 2, x.params)
}

func TestHost_ChildrenNotRenderedAreDestroyed(t *testing.T) {
	h := NewHost()
	root := &parent{Keys: []string{"x", "y"}}
	_, err := h.Mount("root", func() Component { return root })
	require.NoError(t, err)
	_, err = h.Render("root")
	require.NoError(t, err)

	y := h.children["root"]["y"].(*probe)
	root.Keys = []string{"x"}
	_, err = h.Render("root")
	require.NoError(t, err)

	assert.Equal(t, 1, y.destroys)
	assert.NotContains(t, h.children["root"], "y")
	assert.Contains(t, h.children["root"], "x")
}

func TestHost_ChildKeysScopedByRoot(t *testing.T) {
	h := NewHost()
	for _, key := range []string{"one", "two"} {
		_, err := h.Mount(key, func() Component { return &parent{Keys: []string{"x"}} })
		require.NoError(t, err)
		_, err = h.Render(key)
		require.NoError(t, err)
	}
	require.Len(t, h.children, 2)
	assert.NotSame(t, h.children["one"]["x"], h.children["two"]["x"])

	require.NoError(t, h.Unmount("one"))
	assert.Equal(t, 1, h.children["two"]["x"].(*probe).inits)
	assert.NotContains(t, h.children, "one")
	assert.Len(t, h.children, 1)
}

func TestHost_StateHasChangedReRendersRoots(t *testing.T) {
	h := NewHost()
	p := &probe{Label: "p"}
	_, err := h.Mount("a", func() Component { return p })
	require.NoError(t, err)

	var got []string
	h.OnRender = func(key string, tree *vdom.VNode) {
		got = append(got, key+": "+tree.TextContent())
	}

	p.StateHasChanged()
	p.StateHasChanged()

	assert.Equal(t, []string{"a: p 1", "a: p 2"}, got)
}

func TestComponentBase_StateHasChangedWithoutRenderer(t *testing.T) {
	var b ComponentBase
	assert.NotPanics(t, b.StateHasChanged)
	assert.Nil(t, b.GetRenderer())
}

func TestHost_NestedRootKeysOwnSeparateChildren(t *testing.T) {
	h := NewHost()
	for _, key := range []string{"a", "a/b"} {
		_, err := h.Mount(key, func() Component { return &parent{Keys: []string{"x"}} })
		require.NoError(t, err)
	}

	_, err := h.Render("a/b")
	require.NoError(t, err)
	nested := h.children["a/b"]["x"].(*probe)

	_, err = h.Render("a")
	require.NoError(t, err)
	assert.Zero(t, nested.destroys, "rendering root a must not touch children of root a/b")

	require.NoError(t, h.Unmount("a"))
	assert.Zero(t, nested.destroys, "unmounting root a must not touch children of root a/b")
	assert.Same(t, nested, h.children["a/b"]["x"])
}

func TestHost_ReRenderSkipsRootsUnmountedMidCycle(t *testing.T) {
	h := NewHost()
	for _, key := range []string{"a", "b"} {
		_, err := h.Mount(key, func() Component { return &probe{Label: key} })
		require.NoError(t, err)
	}

	var rendered []string
	h.OnRender = func(key string, tree *vdom.VNode) {
		rendered = append(rendered, key)
		if key == "a" {
			require.NoError(t, h.Unmount("b"))
		}
	}

	assert.NotPanics(t, h.ReRender)
	assert.Equal(t, []string{"a"}, rendered)
	assert.Equal(t, []string{"a"}, h.Mounted())
}

func TestHost_RenderChildOutsideCycleIsNotTracked(t *testing.T) {
	h := NewHost()
	child := &probe{Label: "loose"}

	tree := h.RenderChild("x", child)

	assert.Equal(t, "loose 1", tree.TextContent())
	assert.Same(t, h, child.GetRenderer())
	assert.Zero(t, child.inits, "untracked children get no lifecycle")
	assert.Empty(t, h.children)
}
