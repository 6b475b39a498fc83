// Package sayhello provides the SayHello greeting component.
package sayhello

import (
	"strconv"

	"github.com/vcrobe/sayhello/runtime"
	"github.com/vcrobe/sayhello/vdom"
)

// Greeting is the fixed label rendered before the counter.
const Greeting = "Hello World"

// SayHello renders Greeting followed by its counter. The counter starts at
// zero and has no mutator, so every render of an instance is identical.
// The zero value is ready to mount.
type SayHello struct {
	runtime.ComponentBase

	count int
}

// New returns a fresh SayHello with its own counter.
func New() *SayHello {
	return &SayHello{}
}

// Count returns the current counter value.
func (s *SayHello) Count() int {
	return s.count
}

// Render returns a single div holding "Hello World <count>".
func (s *SayHello) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.NewVNode("div", nil, nil, Greeting+" "+strconv.Itoa(s.count))
}
