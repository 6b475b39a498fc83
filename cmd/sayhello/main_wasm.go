//go:build js || wasm
// +build js wasm

package main

import (
	"github.com/vcrobe/sayhello/components/sayhello"
	"github.com/vcrobe/sayhello/console"
	"github.com/vcrobe/sayhello/runtime"
)

func main() {
	renderer := runtime.NewRenderer("#app")

	if err := renderer.SetCurrentComponent(func() runtime.Component { return sayhello.New() }); err != nil {
		panic("Error mounting component: " + err.Error())
	}
	if err := renderer.RenderRoot(); err != nil {
		console.Error("Initial render failed:", err.Error())
	} else {
		console.Log("SayHello mounted into", "#app")
	}

	// Keep the Go program running
	select {}
}
