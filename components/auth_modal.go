package components

import (
	"context"
	"log/slog"

	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"

	"auth-modal-front/auth"
)

// AuthModal is a login / sign-up dialog. The parent removes it from the
// tree when OnClose fires.
type AuthModal struct {
	vecty.Core

	OnClose   func()          `vecty:"prop"`
	Transport auth.Transport  `vecty:"prop"`
	Tokens    auth.TokenStore `vecty:"prop"`
	Logger    *slog.Logger    `vecty:"prop"`

	form *auth.Form
}

func (m *AuthModal) state() *auth.Form {
	if m.form == nil {
		m.form = auth.NewForm()
	}
	return m.form
}

func (m *AuthModal) close() {
	if m.OnClose != nil {
		m.OnClose()
	}
}

func (m *AuthModal) coordinator() *auth.Coordinator {
	return &auth.Coordinator{
		Transport: m.Transport,
		Tokens:    m.Tokens,
		OnClose:   m.close,
		OnChange:  func() { vecty.Rerender(m) },
		Logger:    m.Logger,
	}
}

// onSubmit runs the request off the event handler; net/http blocks on
// fetch under wasm.
func (m *AuthModal) onSubmit(e *vecty.Event) {
	form := m.state()
	if form.Loading {
		return
	}
	c := m.coordinator()
	go c.Submit(context.Background(), form)
}

func (m *AuthModal) onInput(field auth.Field) func(*vecty.Event) {
	return func(e *vecty.Event) {
		if m.state().Change(field, e.Target.Get("value").String()) {
			vecty.Rerender(m)
		}
	}
}

func (m *AuthModal) selectMode(mode auth.Mode) func(*vecty.Event) {
	return func(e *vecty.Event) {
		if m.state().SetMode(mode) {
			vecty.Rerender(m)
		}
	}
}

// Render renders the component.
func (m *AuthModal) Render() vecty.ComponentOrHTML {
	v := auth.Render(m.state())

	return elem.Div(
		vecty.Markup(
			vecty.Class("fixed", "inset-0", "bg-black", "bg-opacity-50", "flex", "items-center", "justify-center", "z-50", "backdrop-blur"),
		),
		elem.Div(
			vecty.Markup(
				vecty.Class("w-[320px]", "bg-white", "p-6", "rounded-2xl", "shadow-lg", "relative"),
			),
			elem.Button(
				vecty.Markup(
					vecty.Class("absolute", "top-4", "right-4", "text-gray-500", "hover:text-gray-700"),
					vecty.Property("type", "button"),
					vecty.Property("disabled", v.Close.Disabled),
					event.Click(func(e *vecty.Event) { m.close() }),
				),
				vecty.Text(v.Close.Label),
			),
			elem.Div(
				vecty.Markup(vecty.Class("flex", "justify-center", "mb-4")),
				elem.Heading2(
					vecty.Markup(vecty.Class("text-2xl", "font-bold", "text-center", "text-gray-800")),
					vecty.Text(v.Title),
				),
			),
			renderError(v.Error),
			m.renderTabs(v),
			elem.Form(
				vecty.Markup(
					vecty.Class("space-y-1"),
					event.Submit(m.onSubmit).PreventDefault(),
				),
				m.renderInputs(v.Inputs),
				vecty.If(v.ShowForgotPassword, renderForgotPassword()),
				renderSubmit(v),
			),
			m.renderSwitch(v),
		),
	)
}

func renderError(msg string) vecty.ComponentOrHTML {
	if msg == "" {
		return nil
	}
	return elem.Div(
		vecty.Markup(vecty.Class("mb-4", "p-2", "bg-red-100", "text-red-700", "rounded", "text-sm")),
		vecty.Text(msg),
	)
}

func (m *AuthModal) renderTabs(v auth.View) vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(vecty.Class("relative", "flex", "h-8", "mb-3", "border", "border-gray-300", "rounded-full", "overflow-hidden")),
		m.renderTab(v.LoginTab),
		m.renderTab(v.SignUpTab),
		elem.Div(
			vecty.Markup(
				vecty.Class("absolute", "top-0", "h-full", "bg-blue-600", "rounded-full", "transition-all", "duration-300", "w-1/2"),
				vecty.MarkupIf(v.LoginTab.Active, vecty.Class("left-0")),
				vecty.MarkupIf(!v.LoginTab.Active, vecty.Class("left-1/2")),
			),
		),
	)
}

func (m *AuthModal) renderTab(b auth.Button) vecty.ComponentOrHTML {
	return elem.Button(
		vecty.Markup(
			vecty.Class("w-1/2", "text-xs", "font-medium", "transition-all", "z-10"),
			vecty.MarkupIf(b.Active, vecty.Class("text-white")),
			vecty.MarkupIf(!b.Active, vecty.Class("text-gray-500")),
			vecty.Property("type", "button"),
			vecty.Property("disabled", b.Disabled),
			event.Click(m.selectMode(b.Target)),
		),
		vecty.Text(b.Label),
	)
}

func renderForgotPassword() vecty.ComponentOrHTML {
	// No handler: password recovery is not part of this dialog.
	return elem.Div(
		vecty.Markup(vecty.Class("text-right")),
		elem.Anchor(
			vecty.Markup(
				vecty.Class("text-xs", "text-blue-600", "hover:underline"),
				vecty.Property("href", "#"),
			),
			vecty.Text("Forgot password?"),
		),
	)
}

func renderSubmit(v auth.View) vecty.ComponentOrHTML {
	return elem.Button(
		vecty.Markup(
			vecty.Class("w-full", "bg-blue-600", "text-white", "py-2", "px-3", "rounded-lg", "hover:bg-blue-700", "transition-colors", "font-medium"),
			vecty.MarkupIf(v.Busy, vecty.Class("opacity-70", "cursor-not-allowed")),
			vecty.Property("type", "submit"),
			vecty.Property("disabled", v.Submit.Disabled),
		),
		vecty.If(v.Busy, elem.Span(
			vecty.Markup(vecty.Class("flex", "items-center", "justify-center")),
			renderSpinner(),
			vecty.Text(v.Submit.Label),
		)),
		vecty.If(!v.Busy, vecty.Text(v.Submit.Label)),
	)
}

func renderSpinner() vecty.ComponentOrHTML {
	return elem.Span(
		vecty.Markup(vecty.Class("animate-spin", "-ml-1", "mr-2", "h-4", "w-4", "rounded-full", "border-2", "border-white", "border-t-transparent")),
	)
}

func (m *AuthModal) renderSwitch(v auth.View) vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(vecty.Class("text-center", "mt-4", "text-sm", "text-gray-600")),
		vecty.Text(v.SwitchPrompt+" "),
		elem.Button(
			vecty.Markup(
				vecty.Class("text-blue-600", "hover:underline", "font-medium"),
				vecty.Property("type", "button"),
				vecty.Property("disabled", v.Switch.Disabled),
				event.Click(m.selectMode(v.Switch.Target)),
			),
			vecty.Text(v.Switch.Label),
		),
	)
}
