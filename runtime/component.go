package runtime

import "github.com/vcrobe/sayhello/vdom"

// Component interface defines the structure for all components in the framework.
// This interface has NO build tags, making it available to both WASM and native test builds.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// The renderer parameter provides access to framework services like RenderChild.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders.
	SetRenderer(r Renderer)
}

// Factory creates a fresh component instance for a mount.
type Factory func() Component

// Initializer is implemented by components that need setup before their first render.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that want a hook before every render.
type ParameterReceiver interface {
	OnParametersSet()
}

// Cleaner is implemented by components that release resources when unmounted.
type Cleaner interface {
	OnDestroy()
}
