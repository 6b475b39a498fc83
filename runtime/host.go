package runtime

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/vcrobe/sayhello/console"
	"github.com/vcrobe/sayhello/internal/log"
	"github.com/vcrobe/sayhello/vdom"
)

// Compile-time assertion to ensure Host implements the Renderer interface.
var _ Renderer = (*Host)(nil)

// childKeySep joins a root key and a child key in hook log output.
const childKeySep = "/"

// Host manages mounted component instances and runs their lifecycle.
// Every root is mounted under a key; each mount owns a fresh instance, so
// state never leaks between mounts. A Host is not safe for concurrent use.
type Host struct {
	roots      map[string]Component
	children   map[string]map[string]Component // root key -> child key -> instance
	activeKeys map[string]bool                 // children rendered in the current cycle
	rendering  string                          // root key being rendered
	inCycle    bool

	// OnRender, when set, receives every root tree produced by ReRender.
	OnRender func(key string, tree *vdom.VNode)

	logger zerolog.Logger
}

// NewHost creates an empty host.
func NewHost() *Host {
	return &Host{
		roots:      make(map[string]Component),
		children:   make(map[string]map[string]Component),
		activeKeys: make(map[string]bool),
		logger:     log.WithComponent("runtime"),
	}
}

// Mount creates a component from factory and registers it under key.
// OnInit runs once here, before the first render.
func (h *Host) Mount(key string, factory Factory) (Component, error) {
	if _, exists := h.roots[key]; exists {
		return nil, fmt.Errorf("mount %q: %w", key, ErrAlreadyMounted)
	}
	comp := factory()
	if comp == nil {
		return nil, fmt.Errorf("mount %q: %w", key, ErrNilComponent)
	}

	h.roots[key] = comp
	comp.SetRenderer(h)
	if initializer, ok := comp.(Initializer); ok {
		h.callOnInit(initializer, key)
	}

	h.logger.Debug().Str("key", key).Msg("component mounted")
	return comp, nil
}

// Render produces the tree of the component mounted under key.
// OnParametersSet runs before every render, including the first.
func (h *Host) Render(key string) (*vdom.VNode, error) {
	comp, ok := h.roots[key]
	if !ok {
		return nil, fmt.Errorf("render %q: %w", key, ErrNotMounted)
	}
	return h.renderRoot(key, comp), nil
}

// Unmount destroys the component mounted under key and every child it owns.
// A later Mount under the same key starts from a fresh instance.
func (h *Host) Unmount(key string) error {
	comp, ok := h.roots[key]
	if !ok {
		return fmt.Errorf("unmount %q: %w", key, ErrNotMounted)
	}

	for childKey, child := range h.children[key] {
		h.destroy(key, childKey, child)
	}
	delete(h.children, key)

	if cleaner, ok := comp.(Cleaner); ok {
		h.callOnDestroy(cleaner, key)
	}
	delete(h.roots, key)

	h.logger.Debug().Str("key", key).Msg("component unmounted")
	return nil
}

// Mounted returns the keys of all mounted roots in sorted order.
func (h *Host) Mounted() []string {
	keys := make([]string, 0, len(h.roots))
	for key := range h.roots {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ReRender renders every mounted root and hands each tree to OnRender.
func (h *Host) ReRender() {
	if h.inCycle {
		h.logger.Warn().Str("key", h.rendering).Msg("re-render requested during render, ignored")
		return
	}
	for _, key := range h.Mounted() {
		// OnRender or a hook may have unmounted a later root.
		comp, ok := h.roots[key]
		if !ok {
			continue
		}
		tree := h.renderRoot(key, comp)
		if h.OnRender != nil {
			h.OnRender(key, tree)
		}
	}
}

// RenderChild handles the core logic of child instance creation and reuse.
// The first instance seen for a key is kept; later calls render the kept
// instance so its state survives re-renders. Outside a render cycle there is
// no owning root, so the child is rendered without being tracked.
func (h *Host) RenderChild(key string, childWithProps Component) *vdom.VNode {
	childWithProps.SetRenderer(h)
	if !h.inCycle {
		console.Warn("RenderChild called outside a render cycle, child not tracked:", key)
		return childWithProps.Render(h)
	}

	root := h.rendering
	h.activeKeys[key] = true
	hookKey := root + childKeySep + key

	owned := h.children[root]
	if owned == nil {
		owned = make(map[string]Component)
		h.children[root] = owned
	}

	instance, exists := owned[key]
	if !exists {
		instance = childWithProps
		owned[key] = instance
	}
	instance.SetRenderer(h)

	if !exists {
		if initializer, ok := instance.(Initializer); ok {
			h.callOnInit(initializer, hookKey)
		}
	}
	if paramReceiver, ok := instance.(ParameterReceiver); ok {
		h.callOnParametersSet(paramReceiver, hookKey)
	}

	return instance.Render(h)
}

func (h *Host) renderRoot(key string, comp Component) *vdom.VNode {
	h.rendering = key
	h.inCycle = true
	h.activeKeys = make(map[string]bool)
	defer func() {
		h.rendering = ""
		h.inCycle = false
	}()

	if paramReceiver, ok := comp.(ParameterReceiver); ok {
		h.callOnParametersSet(paramReceiver, key)
	}
	tree := comp.Render(h)

	h.cleanupUnmountedChildren(key)
	return tree
}

// cleanupUnmountedChildren removes children of root that were not rendered
// in this cycle and calls OnDestroy on them.
func (h *Host) cleanupUnmountedChildren(root string) {
	owned := h.children[root]
	for key, instance := range owned {
		if !h.activeKeys[key] {
			h.destroy(root, key, instance)
		}
	}
	if len(owned) == 0 {
		delete(h.children, root)
	}
}

func (h *Host) destroy(root, key string, instance Component) {
	if cleaner, ok := instance.(Cleaner); ok {
		h.callOnDestroy(cleaner, root+childKeySep+key)
	}
	delete(h.children[root], key)
}
