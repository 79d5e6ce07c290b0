// Package config defines process configuration for the donatugee client tools.
//
// Conventions:
// - New builds a Config with defaults; Load layers file and env on top.
// - All functions accept context.Context as the first parameter.
// - Load errors wrap ErrLoadConfig or ErrInvalidConfig.
package config

import (
	"context"
	"time"

	"github.com/okian/donatugee/pkg/donatugee"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"omitempty,oneof=debug info warn warning error"`

	// LogFormat selects text or json output.
	LogFormat string `koanf:"log_format" validate:"omitempty,oneof=text json"`

	// BaseURL is the root all operations except RandomText target.
	BaseURL string `koanf:"base_url" validate:"required,url"`

	// FillerTextURL is the prefix RandomText appends the length to.
	FillerTextURL string `koanf:"filler_text_url" validate:"required,url"`

	// Timeout bounds each request. Zero leaves requests unbounded.
	Timeout time.Duration `koanf:"timeout" validate:"gte=0"`

	// UserAgent is sent with every request when set.
	UserAgent string `koanf:"user_agent"`

	// RequestIDs adds an X-Request-Id header to every request.
	RequestIDs bool `koanf:"request_ids"`

	// StubAddr is the listen address of the stub backend, e.g. ":8081".
	StubAddr string `koanf:"stub_addr" validate:"required"`

	// StubMetrics exposes /metrics on the stub backend.
	StubMetrics bool `koanf:"stub_metrics"`
}

// New creates a Config populated with defaults. Context is accepted first to
// follow the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:      "info",
		LogFormat:     "text",
		BaseURL:       donatugee.DefaultBaseURL,
		FillerTextURL: donatugee.DefaultFillerTextURL,
		Timeout:       0,
		UserAgent:     "donatugee-go",
		RequestIDs:    false,
		StubAddr:      ":8081",
		StubMetrics:   true,
	}
}
