package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fieldsOf(v View) []Field {
	out := make([]Field, 0, len(v.Inputs))
	for _, in := range v.Inputs {
		out = append(out, in.Field)
	}
	return out
}

func TestRenderLoginMode(t *testing.T) {
	f := filledForm()
	v := Render(f)

	assert.Equal(t, "Login", v.Title)
	assert.Equal(t, []Field{FieldEmail, FieldPassword}, fieldsOf(v))
	assert.True(t, v.ShowForgotPassword)
	assert.True(t, v.LoginTab.Active)
	assert.False(t, v.SignUpTab.Active)
	assert.Equal(t, "Login", v.Submit.Label)
	assert.Equal(t, "Don't have an account?", v.SwitchPrompt)
	assert.Equal(t, ModeSignUp, v.Switch.Target)
	assert.Empty(t, v.Error)
}

func TestRenderSignUpMode(t *testing.T) {
	f := filledForm()
	f.Mode = ModeSignUp
	v := Render(f)

	assert.Equal(t, "Create Account", v.Title)
	assert.Equal(t, []Field{FieldName, FieldEmail, FieldPassword, FieldConfirmPassword}, fieldsOf(v))
	assert.False(t, v.ShowForgotPassword)
	assert.True(t, v.SignUpTab.Active)
	assert.Equal(t, "Sign Up", v.Submit.Label)
	assert.Equal(t, "Already have an account?", v.SwitchPrompt)
	assert.Equal(t, ModeLogin, v.Switch.Target)
}

func TestRenderInputAttributes(t *testing.T) {
	f := filledForm()
	f.Mode = ModeSignUp
	for _, in := range Render(f).Inputs {
		assert.True(t, in.Required, "input %s", in.Field)
		assert.False(t, in.Disabled, "input %s", in.Field)
		assert.Equal(t, f.Fields.Get(in.Field), in.Value)
		switch in.Field {
		case FieldPassword, FieldConfirmPassword:
			assert.Equal(t, MinPasswordLength, in.MinLength)
			assert.Equal(t, "password", in.Type)
		default:
			assert.Zero(t, in.MinLength)
		}
	}
}

func TestRenderBusyLabels(t *testing.T) {
	f := filledForm()
	f.Loading = true
	assert.Equal(t, "Logging in...", Render(f).Submit.Label)
	assert.True(t, Render(f).Busy)

	f.Mode = ModeSignUp
	assert.Equal(t, "Creating account...", Render(f).Submit.Label)
}

func TestRenderErrorBanner(t *testing.T) {
	f := filledForm()
	f.Err = "Email taken"
	assert.Equal(t, "Email taken", Render(f).Error)
}
