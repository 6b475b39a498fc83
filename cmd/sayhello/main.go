//go:build !wasm
// +build !wasm

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vcrobe/sayhello/components/sayhello"
	"github.com/vcrobe/sayhello/console"
	"github.com/vcrobe/sayhello/internal/log"
	"github.com/vcrobe/sayhello/runtime"
	"github.com/vcrobe/sayhello/vdom"
)

const mountKey = "sayhello"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "sayhello: %v\n", err)
		os.Exit(1)
	}
}

// run mounts SayHello in a host, renders it once and writes the view to stdout.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sayhello", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "html", "Output format: html or text.")
	logLevel := fs.String("log-level", "", "Log level (defaults to $LOG_LEVEL, then info).")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log.Configure(log.Config{Level: *logLevel, Output: stderr})
	logger := log.WithComponent("cmd")

	host := runtime.NewHost()
	if _, err := host.Mount(mountKey, func() runtime.Component { return sayhello.New() }); err != nil {
		return err
	}
	defer func() {
		if err := host.Unmount(mountKey); err != nil {
			logger.Error().Err(err).Msg("unmount failed")
		}
	}()

	tree, err := host.Render(mountKey)
	if err != nil {
		return err
	}
	console.Log("rendered", mountKey, "as", *format)

	switch *format {
	case "html":
		if err := vdom.RenderHTML(stdout, tree); err != nil {
			return fmt.Errorf("write html: %w", err)
		}
		_, err = fmt.Fprintln(stdout)
		return err
	case "text":
		_, err = fmt.Fprintln(stdout, tree.TextContent())
		return err
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}
