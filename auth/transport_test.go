package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransportPost(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		token   string
		kind    ErrorKind
		message string
		wantErr bool
	}{
		{name: "token", status: http.StatusOK, body: `{"token":"abc"}`, token: "abc"},
		{name: "no token", status: http.StatusOK, body: `{"ok":true}`},
		{name: "non-json success", status: http.StatusOK, body: `welcome`},
		{name: "empty created", status: http.StatusCreated},
		{name: "server message", status: http.StatusUnauthorized, body: `{"message":"Invalid credentials"}`, wantErr: true, kind: KindServer, message: "Invalid credentials"},
		{name: "server without message", status: http.StatusInternalServerError, body: `{"error":"db down"}`, wantErr: true, kind: KindServer, message: "Authentication failed"},
		{name: "server html", status: http.StatusBadGateway, body: `<html>bad gateway</html>`, wantErr: true, kind: KindServer, message: "Authentication failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			res, err := NewHTTPTransport(srv.URL+"/", srv.Client()).Post(context.Background(), "/api/auth/login", LoginRequest{Email: "a@b.c", Password: "secret1"})
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.token, res.Token)
				return
			}
			var e *Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, tt.kind, e.Kind)
			assert.Equal(t, tt.status, e.Status)
			assert.Equal(t, tt.message, e.Message)
		})
	}
}

func TestHTTPTransportClosedServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPTransport(url, nil).Post(context.Background(), "/api/auth/login", LoginRequest{})
	assert.Equal(t, KindNetwork, AsError(err).Kind)
}

func TestHTTPTransportUnencodablePayload(t *testing.T) {
	_, err := NewHTTPTransport("", nil).Post(context.Background(), "/api/auth/login", make(chan int))
	assert.Equal(t, KindUnexpected, AsError(err).Kind)
}
