package auth

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorConstructors(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	tests := []struct {
		name    string
		err     *Error
		kind    ErrorKind
		message string
	}{
		{"validation", ValidationError("Passwords don't match!"), KindValidation, "Passwords don't match!"},
		{"server with message", ServerError(409, "Email taken"), KindServer, "Email taken"},
		{"server without message", ServerError(500, ""), KindServer, "Authentication failed"},
		{"network", NetworkError(cause), KindNetwork, "Network error. Please try again."},
		{"unexpected", UnexpectedError(errors.New("quota exceeded")), KindUnexpected, "quota exceeded"},
		{"unexpected without text", UnexpectedError(nil), KindUnexpected, "Authentication failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.message, tt.err.Message)
		})
	}
}

func TestAsError(t *testing.T) {
	wrapped := fmt.Errorf("post: %w", ServerError(401, "Invalid credentials"))
	e := AsError(wrapped)
	assert.Equal(t, KindServer, e.Kind)
	assert.Equal(t, 401, e.Status)

	plain := AsError(errors.New("something odd"))
	assert.Equal(t, KindUnexpected, plain.Kind)
	assert.Equal(t, "something odd", plain.Message)
}

func TestNetworkErrorUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	assert.ErrorIs(t, NetworkError(cause), cause)
}
