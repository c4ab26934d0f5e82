package main

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the dev server configuration, read from the environment.
type Config struct {
	Addr      string `env:"DEVSERVER_ADDR" env-default:":8080" env-description:"listen address"`
	StaticDir string `env:"DEVSERVER_STATIC_DIR" env-default:"./public" env-description:"directory holding index.html, main.wasm and wasm_exec.js"`
	// APIUpstream receives every /api request when set.
	APIUpstream string `env:"DEVSERVER_API_UPSTREAM" env-default:"" env-description:"auth API base URL to proxy /api to"`
	StubAuth    bool   `env:"DEVSERVER_STUB_AUTH" env-default:"false" env-description:"answer /api/auth with an in-memory stub"`
	LogLevel    string `env:"DEVSERVER_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
}

// LoadConfig reads the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}

// Validate checks the combination of settings.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("listen address is empty")
	}
	if c.APIUpstream != "" && c.StubAuth {
		return fmt.Errorf("api upstream and stub auth are mutually exclusive")
	}
	if c.APIUpstream != "" {
		u, err := url.Parse(c.APIUpstream)
		if err != nil {
			return fmt.Errorf("parse api upstream: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("api upstream must be http or https, got %q", c.APIUpstream)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
