//go:build js && wasm

package main

import (
	"log/slog"
	"syscall/js"

	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
)

const (
	routeHome  = "#/"
	routeLogin = "#/login"
)

// App is the main application component, acting as a router.
type App struct {
	vecty.Core
	currentRoute string
	logger       *slog.Logger
}

// NewApp creates a new App component.
func NewApp(logger *slog.Logger) *App {
	return &App{logger: logger}
}

// Mount handles component mounting and sets up routing.
func (a *App) Mount() {
	a.handleRouteChange(js.Undefined(), nil)

	js.Global().Set("onhashchange", js.FuncOf(a.handleRouteChange))
}

func (a *App) handleRouteChange(this js.Value, args []js.Value) interface{} {
	newRoute := js.Global().Get("location").Get("hash").String()
	if newRoute == "" {
		newRoute = routeHome
	}
	a.currentRoute = newRoute
	vecty.Rerender(a)
	return nil
}

func navigate(route string) {
	js.Global().Get("location").Set("hash", route)
}

// Render renders the component based on the current route.
func (a *App) Render() vecty.ComponentOrHTML {
	return elem.Body(
		&LoginPage{
			ModalOpen: a.currentRoute == routeLogin,
			OnOpen:    func() { navigate(routeLogin) },
			OnClose:   func() { navigate(routeHome) },
			Logger:    a.logger,
		},
	)
}
