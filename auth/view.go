package auth

// MinPasswordLength is enforced by the password inputs only.
const MinPasswordLength = 6

// Input describes one rendered text input.
type Input struct {
	Field       Field
	Label       string
	Type        string
	Placeholder string
	Value       string
	Required    bool
	MinLength   int
	Disabled    bool
}

// Button describes a clickable control. Target is the mode a tab or
// switch button selects.
type Button struct {
	Label    string
	Active   bool
	Disabled bool
	Target   Mode
}

// View is everything the modal shows for one form state.
type View struct {
	Title string
	// Error is the banner text, "" hides the banner.
	Error string

	Close     Button
	LoginTab  Button
	SignUpTab Button

	Inputs             []Input
	ShowForgotPassword bool

	Submit Button
	// Busy shows the spinner on the submit button.
	Busy bool

	SwitchPrompt string
	Switch       Button
}

// Buttons lists every button of the view.
func (v View) Buttons() []Button {
	return []Button{v.Close, v.LoginTab, v.SignUpTab, v.Submit, v.Switch}
}

// Render derives the view of f. It does not modify f.
func Render(f *Form) View {
	login := f.Mode == ModeLogin
	busy := f.Loading

	v := View{
		Title:              "Create Account",
		Error:              f.Err,
		Close:              Button{Label: "✕", Disabled: busy},
		LoginTab:           Button{Label: "Login", Active: login, Disabled: busy, Target: ModeLogin},
		SignUpTab:          Button{Label: "Sign Up", Active: !login, Disabled: busy, Target: ModeSignUp},
		ShowForgotPassword: login,
		Busy:               busy,
	}
	if login {
		v.Title = "Login"
	}

	if !login {
		v.Inputs = append(v.Inputs, input(f, FieldName, "Full Name", "text", "John Doe", 0))
	}
	v.Inputs = append(v.Inputs,
		input(f, FieldEmail, "Email", "email", "your@email.com", 0),
		input(f, FieldPassword, "Password", "password", "••••••••", MinPasswordLength),
	)
	if !login {
		v.Inputs = append(v.Inputs, input(f, FieldConfirmPassword, "Confirm Password", "password", "••••••••", MinPasswordLength))
	}

	switch {
	case login && busy:
		v.Submit = Button{Label: "Logging in...", Disabled: true}
	case busy:
		v.Submit = Button{Label: "Creating account...", Disabled: true}
	case login:
		v.Submit = Button{Label: "Login"}
	default:
		v.Submit = Button{Label: "Sign Up"}
	}

	if login {
		v.SwitchPrompt = "Don't have an account?"
		v.Switch = Button{Label: "Sign Up", Disabled: busy, Target: ModeSignUp}
	} else {
		v.SwitchPrompt = "Already have an account?"
		v.Switch = Button{Label: "Login", Disabled: busy, Target: ModeLogin}
	}
	return v
}

func input(f *Form, field Field, label, typ, placeholder string, minLength int) Input {
	return Input{
		Field:       field,
		Label:       label,
		Type:        typ,
		Placeholder: placeholder,
		Value:       f.Fields.Get(field),
		Required:    true,
		MinLength:   minLength,
		Disabled:    f.Loading,
	}
}
