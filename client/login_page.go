//go:build js && wasm

package main

import (
	"log/slog"

	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"

	"auth-modal-front/components"
)

// LoginPage is the landing page. It hosts the auth modal while ModalOpen.
type LoginPage struct {
	vecty.Core
	ModalOpen bool         `vecty:"prop"`
	OnOpen    func()       `vecty:"prop"`
	OnClose   func()       `vecty:"prop"`
	Logger    *slog.Logger `vecty:"prop"`
}

// Render renders the component.
func (p *LoginPage) Render() vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(
			vecty.Class("login-container", "min-h-screen", "flex", "flex-col", "items-center", "justify-center"),
		),
		elem.Heading1(
			vecty.Markup(vecty.Class("text-3xl", "font-bold", "mb-6")),
			vecty.Text("Welcome"),
		),
		elem.Button(
			vecty.Markup(
				vecty.Class("bg-blue-600", "text-white", "py-2", "px-4", "rounded-lg"),
				event.Click(func(e *vecty.Event) {
					if p.OnOpen != nil {
						p.OnOpen()
					}
				}),
			),
			vecty.Text("Login / Sign Up"),
		),
		p.renderModal(),
	)
}

func (p *LoginPage) renderModal() vecty.ComponentOrHTML {
	if !p.ModalOpen {
		return nil
	}
	return &components.AuthModal{
		OnClose:   p.OnClose,
		Transport: newTransport(),
		Tokens:    localStorage{},
		Logger:    p.Logger,
	}
}
