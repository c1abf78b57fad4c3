package config

import (
	"context"
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
	"github.com/nathadriele/creditlens/internal/core"
	"github.com/nathadriele/creditlens/pkg/log"
)

type BackendConfig struct {
	BaseURL        string `env:"API_BASE_URL" envDefault:"http://localhost:3001"`
	TimeoutSeconds int    `env:"API_TIMEOUT" envDefault:"30"`
	MaxRetries     int    `env:"API_MAX_RETRIES" envDefault:"1"`

	// Token is attached as a bearer header when present. Permissions are
	// operator-declared; the platform's auth service owns the real set.
	Token       string   `env:"API_TOKEN"`
	Permissions []string `env:"API_PERMISSIONS" envDefault:"ai:monitor"`
}

// NewBackendConfig parses and validates the backend configuration. A
// missing or unparseable base URL is fatal at startup, not per request.
func NewBackendConfig(ctx context.Context) *BackendConfig {
	c := &BackendConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Backend config")
	}
	if err := c.Validate(); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("invalid Backend config")
	}
	return c
}

func (c *BackendConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return &core.ConfigurationError{Field: "API_BASE_URL", Reason: fmt.Sprintf("unparseable %q: %v", c.BaseURL, err)}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &core.ConfigurationError{Field: "API_BASE_URL", Reason: fmt.Sprintf("%q: scheme must be http or https", c.BaseURL)}
	}
	if u.Host == "" {
		return &core.ConfigurationError{Field: "API_BASE_URL", Reason: fmt.Sprintf("%q: missing host", c.BaseURL)}
	}
	if c.TimeoutSeconds <= 0 {
		return &core.ConfigurationError{Field: "API_TIMEOUT", Reason: fmt.Sprintf("%d: must be positive", c.TimeoutSeconds)}
	}
	return nil
}
