//go:build js && wasm

package main

import (
	"log/slog"
	"os"

	"github.com/hexops/vecty"
)

func main() {
	// stdout is the browser console under wasm.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel()}))
	slog.SetDefault(logger)

	vecty.SetTitle("Sign in")
	vecty.RenderBody(NewApp(logger))
	// Block so the wasm instance keeps serving event callbacks.
	select {}
}
