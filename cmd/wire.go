package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	apiadapter "github.com/Noel007-cse/plot-twist-cli/internal/adapters/api"
	sessionstore "github.com/Noel007-cse/plot-twist-cli/internal/adapters/session/toml"
	"github.com/Noel007-cse/plot-twist-cli/internal/application"
	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
	"github.com/Noel007-cse/plot-twist-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	backendURLKey     = "backend.url"
	defaultBackendURL = "http://localhost:3001"
)

type app struct {
	store   ports.SessionStore
	backend application.Collaborators
	clock   ports.Clock
}

func wireApp() (*app, error) {
	cfg := viper.New()

	store, err := sessionstore.NewStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	cfg.SetDefault(backendURLKey, defaultBackendURL)
	client := apiadapter.New(envOrDefault("PT_BACKEND_URL", cfg.GetString(backendURLKey)))
	client.RequestTimeout = 30 * time.Second

	return &app{
		store: store,
		backend: application.Collaborators{
			Auth:        client,
			Interests:   client,
			Suggestions: client,
			History:     client,
			Chat:        client,
		},
		clock: ports.SystemClock{},
	}, nil
}

func (a *app) orchestrator() *application.Orchestrator {
	return application.NewOrchestrator(a.store, a.backend, a.clock)
}

func requireSession(ctx context.Context, a *app) (domain.Session, error) {
	session, err := a.store.Restore(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return domain.Session{}, errors.New("not logged in: run 'pt login' first")
		}
		return domain.Session{}, fmt.Errorf("restore session: %w", err)
	}

	return session, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
