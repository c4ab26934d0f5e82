//go:build js && wasm

package main

import (
	"log/slog"
	"syscall/js"

	"auth-modal-front/auth"
)

// apiBaseURLMeta names the <meta> tag that points the client at an auth
// API on another origin. Without it requests stay same-origin.
const apiBaseURLMeta = `meta[name="api-base-url"]`

func metaContent(selector string) string {
	el := js.Global().Get("document").Call("querySelector", selector)
	if el.IsUndefined() || el.IsNull() {
		return ""
	}
	return el.Call("getAttribute", "content").String()
}

func apiBaseURL() string {
	return metaContent(apiBaseURLMeta)
}

// newTransport returns the HTTP transport the auth modal posts through.
func newTransport() auth.Transport {
	return auth.NewHTTPTransport(apiBaseURL(), nil)
}

func logLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(metaContent(`meta[name="log-level"]`))); err != nil {
		return slog.LevelInfo
	}
	return level
}
