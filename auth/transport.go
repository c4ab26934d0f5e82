package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Result is the part of a successful response the form cares about.
type Result struct {
	Token string `json:"token"`
}

// Transport sends one authentication request. Failures come back as *Error.
type Transport interface {
	Post(ctx context.Context, endpoint string, payload interface{}) (Result, error)
}

// HTTPTransport posts JSON to an auth API. Under GOOS=js the default
// client goes through the browser's fetch.
type HTTPTransport struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPTransport returns a transport for baseURL. An empty baseURL keeps
// the endpoints relative to the page origin.
func NewHTTPTransport(baseURL string, client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{BaseURL: strings.TrimRight(baseURL, "/"), Client: client}
}

type errorBody struct {
	Message string `json:"message"`
}

// Post sends payload to endpoint.
func (t *HTTPTransport) Post(ctx context.Context, endpoint string, payload interface{}) (Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, UnexpectedError(fmt.Errorf("encode request body: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.BaseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, UnexpectedError(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return Result{}, NetworkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, NetworkError(fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		// A body that is not JSON leaves Message empty.
		_ = json.Unmarshal(raw, &eb)
		return Result{}, ServerError(resp.StatusCode, eb.Message)
	}

	var res Result
	// Non-JSON success bodies carry no token.
	_ = json.Unmarshal(raw, &res)
	return res, nil
}
