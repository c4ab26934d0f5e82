package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledForm() *Form {
	f := NewForm()
	f.Fields = Fields{Name: "Ada", Email: "ada@example.com", Password: "abc123", ConfirmPassword: "abc123"}
	return f
}

func TestNewFormStartsInLoginMode(t *testing.T) {
	f := NewForm()
	assert.Equal(t, ModeLogin, f.Mode)
	assert.False(t, f.Loading)
	assert.Empty(t, f.Err)
	assert.Equal(t, Fields{}, f.Fields)
}

func TestChangeUpdatesOnlyThatField(t *testing.T) {
	fields := []Field{FieldName, FieldEmail, FieldPassword, FieldConfirmPassword}
	for _, field := range fields {
		t.Run(string(field), func(t *testing.T) {
			f := filledForm()
			f.Err = "Email taken"
			before := f.Fields

			require.True(t, f.Change(field, "changed"))

			assert.Equal(t, "changed", f.Fields.Get(field))
			assert.Empty(t, f.Err)
			for _, other := range fields {
				if other != field {
					assert.Equal(t, before.Get(other), f.Fields.Get(other), "field %s", other)
				}
			}
		})
	}
}

func TestChangeUnknownFieldIsIgnored(t *testing.T) {
	f := filledForm()
	f.Err = "boom"
	before := f.Fields

	assert.False(t, f.Change("nickname", "x"))
	assert.Equal(t, before, f.Fields)
	assert.Equal(t, "boom", f.Err)
}

func TestSetModeKeepsFieldValues(t *testing.T) {
	f := filledForm()
	before := f.Fields

	require.True(t, f.SetMode(ModeSignUp))
	assert.Equal(t, ModeSignUp, f.Mode)
	assert.Equal(t, before, f.Fields)

	require.True(t, f.SetMode(ModeLogin))
	assert.Equal(t, ModeLogin, f.Mode)
	assert.Equal(t, before, f.Fields)
}

func TestLoadingFormRefusesInput(t *testing.T) {
	f := filledForm()
	f.Loading = true
	before := f.Fields

	assert.False(t, f.Change(FieldEmail, "other@example.com"))
	assert.False(t, f.SetMode(ModeSignUp))
	assert.Equal(t, before, f.Fields)
	assert.Equal(t, ModeLogin, f.Mode)
}

func TestPayload(t *testing.T) {
	fs := Fields{Name: "Ada", Email: "ada@example.com", Password: "abc123", ConfirmPassword: "zzz"}

	assert.Equal(t, LoginRequest{Email: "ada@example.com", Password: "abc123"}, fs.Payload(ModeLogin))
	assert.Equal(t, RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "abc123"}, fs.Payload(ModeSignUp))
}

func TestModeEndpoint(t *testing.T) {
	assert.Equal(t, "/api/auth/login", ModeLogin.Endpoint())
	assert.Equal(t, "/api/auth/register", ModeSignUp.Endpoint())
}
