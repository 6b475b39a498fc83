//go:build !wasm
// +build !wasm

package console

import (
	"fmt"
	"strings"

	"github.com/vcrobe/sayhello/internal/log"
)

// Native builds have no browser console, so messages go to the structured
// logger instead. The js/wasm implementation is in console.go.

// Log writes args at debug level.
func Log(args ...any) {
	l := log.WithComponent("console")
	l.Debug().Msg(join(args))
}

// Warn writes args at warn level.
func Warn(args ...any) {
	l := log.WithComponent("console")
	l.Warn().Msg(join(args))
}

// Error writes args at error level.
func Error(args ...any) {
	l := log.WithComponent("console")
	l.Error().Msg(join(args))
}

// join mirrors console.log, which separates arguments with a space.
func join(args []any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
