package auth

import (
	"errors"
	"fmt"
)

const (
	msgPasswordMismatch = "Passwords don't match!"
	msgNetwork          = "Network error. Please try again."
	msgGeneric          = "Authentication failed"
)

// ErrorKind tells apart the ways a submission can fail.
type ErrorKind int

const (
	// KindValidation is a client-side check that failed before any request.
	KindValidation ErrorKind = iota
	// KindServer means the server answered with a non-success status.
	KindServer
	// KindNetwork means the request was sent but no response came back.
	KindNetwork
	// KindUnexpected is anything else raised while handling the submit.
	KindUnexpected
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	default:
		return "unexpected"
	}
}

// Error is a classified submission failure. Message is what the user sees.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// ValidationError reports a failed local check.
func ValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// ServerError reports a non-success response. An empty msg falls back to
// the generic message.
func ServerError(status int, msg string) *Error {
	if msg == "" {
		msg = msgGeneric
	}
	return &Error{Kind: KindServer, Status: status, Message: msg}
}

// NetworkError reports a request that never got a response.
func NetworkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: msgNetwork, Err: err}
}

// UnexpectedError wraps any other failure, using its text as the message.
func UnexpectedError(err error) *Error {
	msg := msgGeneric
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &Error{Kind: KindUnexpected, Message: msg, Err: err}
}

// AsError classifies err. Errors that are not an *Error anywhere in their
// chain are unexpected.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return UnexpectedError(err)
}
