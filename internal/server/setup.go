package server

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/portfolio-builder/internal/config"
	"github.com/jonathan/portfolio-builder/internal/db"
	"github.com/jonathan/portfolio-builder/internal/engine"
	"github.com/jonathan/portfolio-builder/internal/llm"
	"github.com/jonathan/portfolio-builder/internal/logging"
	"github.com/jonathan/portfolio-builder/internal/server/ratelimit"
	"github.com/jonathan/portfolio-builder/internal/session"
	"github.com/jonathan/portfolio-builder/internal/storage"
	"github.com/jonathan/portfolio-builder/internal/templates"
)

// FromConfig wires a server from configuration. Without DATABASE_URL users,
// sessions and exports live in memory; without GEMINI_API_KEY bio requests
// fail with 503. The returned cleanup releases the database and model client.
func FromConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Server, func(), error) {
	logger = logging.OrNop(logger)
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	registry, err := templates.NewBuiltinRegistry()
	if err != nil {
		return nil, nil, err
	}
	if err := registry.SetDefault(cfg.Templates.Default); err != nil {
		return nil, nil, fmt.Errorf("default template: %w", err)
	}
	eng, err := engine.New(registry, engine.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	jwtConfig, err := cfg.JWT()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	passwordConfig, err := cfg.Password()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create password config: %w", err)
	}

	store, err := storage.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create object storage: %w", err)
	}

	deps := Deps{
		Engine:         eng,
		JWT:            NewJWTService(jwtConfig),
		Passwords:      passwordConfig,
		Storage:        store,
		Limiter:        ratelimit.NewLimiter(ratelimit.FromConfig(cfg.RateLimit)),
		Logger:         logger,
		AllowedOrigins: cfg.Server.AllowedOrigins(),
		PresignTTL:     cfg.Storage.PresignTTL,
		SecureCookies:  cfg.Server.SecureCookies,
	}
	sessionOpts := session.Options{Logger: logger, BioTimeout: cfg.Server.BioTimeout}

	if cfg.Database.URL != "" {
		database, err := db.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, database.Close)
		if err := database.EnsureSchema(ctx); err != nil {
			cleanup()
			return nil, nil, err
		}
		deps.Users = database
		deps.Exports = database
		sessionOpts.Repository = database
		logger.Info("using PostgreSQL persistence")
	} else {
		logger.Warn("DATABASE_URL not set, sessions and accounts are kept in memory")
	}

	if cfg.Gemini.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig().WithModel(llm.TierStandard, cfg.Gemini.Model), cfg.Gemini.APIKey)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, func() { _ = client.Close() })
		sessionOpts.Bio = llm.NewBioGenerator(client)
	} else {
		logger.Warn("GEMINI_API_KEY not set, bio generation is disabled")
	}

	deps.Sessions = session.NewManager(sessionOpts)
	srv, err := New(deps)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return srv, cleanup, nil
}
