package components

import (
	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"

	"auth-modal-front/auth"
)

func (m *AuthModal) renderInputs(inputs []auth.Input) vecty.List {
	list := make(vecty.List, 0, len(inputs))
	for _, in := range inputs {
		list = append(list, m.renderInput(in))
	}
	return list
}

func (m *AuthModal) renderInput(in auth.Input) vecty.ComponentOrHTML {
	markup := []vecty.Applyer{
		vecty.Class("w-full", "px-3", "py-1", "border", "border-gray-300", "rounded-lg", "focus:ring-2", "focus:ring-blue-500", "focus:border-transparent", "text-xs"),
		vecty.Property("type", in.Type),
		vecty.Property("name", string(in.Field)),
		vecty.Property("value", in.Value),
		vecty.Property("placeholder", in.Placeholder),
		vecty.Property("required", in.Required),
		vecty.Property("disabled", in.Disabled),
		event.Input(m.onInput(in.Field)),
	}
	if in.MinLength > 0 {
		markup = append(markup, vecty.Attribute("minlength", in.MinLength))
	}

	return elem.Div(
		elem.Label(
			vecty.Markup(vecty.Class("block", "text-xs", "font-medium", "text-gray-700", "mb-1")),
			vecty.Text(in.Label),
		),
		elem.Input(vecty.Markup(markup...)),
	)
}
