package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/nathadriele/creditlens/internal/auth"
	"github.com/nathadriele/creditlens/internal/config"
	"github.com/nathadriele/creditlens/internal/providers/backend"
	"github.com/nathadriele/creditlens/internal/providers/mock"
	"github.com/nathadriele/creditlens/internal/service/explorer"
	"github.com/nathadriele/creditlens/internal/storage/cache"
	"github.com/nathadriele/creditlens/internal/storage/memory"
	"github.com/nathadriele/creditlens/pkg/log"
)

type app struct {
	cfg      *config.AppConfig
	explorer *explorer.Explorer
	session  *auth.Session
}

func newApp(ctx context.Context) *app {
	logger := log.FromCtx(ctx)

	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	backendCfg := config.NewBackendConfig(ctx)

	// 2. Session
	session := newSession(appCfg, backendCfg)

	// 3. Backend client
	client := backend.NewClient(backendCfg, session.BearerToken)

	// 4. Storage
	store := memory.NewStore()
	var responses *cache.Responses
	if appCfg.CacheEnabled {
		responses = cache.NewResponses(appCfg.CacheCapacity, time.Duration(appCfg.CacheTTLMinutes)*time.Minute)
	}

	// 5. Explorer service
	exp := explorer.New(appCfg, client, mock.New(), store, responses)

	return &app{
		cfg:      appCfg,
		explorer: exp,
		session:  session,
	}
}

// newSession builds the caller identity. The demo identity needs both
// demo mode on and no real token configured; a strict-mode session
// without a token stays unauthenticated so the guard refuses it rather
// than sending demo credentials to a real backend.
func newSession(appCfg *config.AppConfig, backendCfg *config.BackendConfig) *auth.Session {
	if appCfg.DemoMode && backendCfg.Token == "" {
		return auth.DemoSession()
	}
	return &auth.Session{
		Token:       backendCfg.Token,
		Permissions: backendCfg.Permissions,
	}
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
