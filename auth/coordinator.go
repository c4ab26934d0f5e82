package auth

import (
	"context"
	"fmt"
	"log/slog"
)

// TokenKey is the durable storage key the login token is written under.
const TokenKey = "authToken"

// TokenStore is the write side of a durable key-value store such as
// window.localStorage.
type TokenStore interface {
	SetItem(key, value string) error
}

// Coordinator validates a form, sends it and applies the outcome.
type Coordinator struct {
	Transport Transport
	Tokens    TokenStore
	// OnClose is invoked after every successful attempt.
	OnClose func()
	// OnChange is invoked whenever Submit changes the form, so a view can
	// redraw while the request is outstanding.
	OnChange func()
	Logger   *slog.Logger
}

func (c *Coordinator) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c *Coordinator) changed() {
	if c.OnChange != nil {
		c.OnChange()
	}
}

// Submit runs one authentication attempt against form. It blocks until the
// request completes. Every failure ends up in form.Err; Submit never panics.
func (c *Coordinator) Submit(ctx context.Context, form *Form) {
	if form.Loading {
		return
	}
	form.Loading = true
	form.Err = ""
	c.changed()

	mode := form.Mode
	log := c.logger().With(slog.String("mode", mode.String()))
	log.Debug("auth submit started", slog.String("endpoint", mode.Endpoint()))

	defer func() {
		if r := recover(); r != nil {
			c.fail(log, form, UnexpectedError(fmt.Errorf("%v", r)))
		}
		form.Loading = false
		c.changed()
	}()

	if err := c.attempt(ctx, form); err != nil {
		c.fail(log, form, AsError(err))
		return
	}
	log.Info("auth submit succeeded")
	if c.OnClose != nil {
		c.OnClose()
	}
}

func (c *Coordinator) attempt(ctx context.Context, form *Form) error {
	if form.Mode == ModeSignUp && form.Fields.Password != form.Fields.ConfirmPassword {
		return ValidationError(msgPasswordMismatch)
	}
	if c.Transport == nil {
		return UnexpectedError(fmt.Errorf("no auth transport configured"))
	}

	res, err := c.Transport.Post(ctx, form.Mode.Endpoint(), form.Fields.Payload(form.Mode))
	if err != nil {
		return err
	}

	if form.Mode == ModeLogin && res.Token != "" {
		if c.Tokens == nil {
			return UnexpectedError(fmt.Errorf("no token store configured"))
		}
		if err := c.Tokens.SetItem(TokenKey, res.Token); err != nil {
			return UnexpectedError(err)
		}
	}
	return nil
}

func (c *Coordinator) fail(log *slog.Logger, form *Form, e *Error) {
	form.Err = e.Message
	log.Warn("auth submit failed",
		slog.String("kind", e.Kind.String()),
		slog.Int("status", e.Status),
		slog.Any("cause", e.Err),
	)
}
