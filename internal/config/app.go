package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/nathadriele/creditlens/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"CREDITLENS_RUNTIME_PATH" envDefault:".creditlens"`

	// DemoMode permits synthesized answers when the backend is
	// unreachable. It is never inferred from failures.
	DemoMode bool `env:"DEMO_MODE" envDefault:"false"`

	DefaultCollection string `env:"DEFAULT_COLLECTION" envDefault:"credit_policies"`
	TopK              int    `env:"RAG_TOP_K" envDefault:"5"`

	// HistoryLimit bounds how many turns the history views show.
	HistoryLimit int `env:"HISTORY_LIMIT" envDefault:"5"`

	// Query result cache
	CacheEnabled    bool `env:"ENABLE_QUERY_CACHE" envDefault:"true"`
	CacheCapacity   int  `env:"QUERY_CACHE_SIZE" envDefault:"512"`
	CacheTTLMinutes int  `env:"QUERY_CACHE_TTL_MINUTES" envDefault:"60"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	// Relative runtime paths resolve under the home directory, same as
	// GetRuntimePath, so the history file and .env share one location.
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c
}

func (c AppConfig) GetInputHistoryPath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}
