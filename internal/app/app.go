// Package app wires configuration, storage, services, and the HTTP
// transport together and runs the server until the context is cancelled.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/maayplatform/afmaay-backend/internal/adapter/postgres"
	"github.com/maayplatform/afmaay-backend/internal/adapter/postgres/entry"
	"github.com/maayplatform/afmaay-backend/internal/adapter/postgres/gap"
	"github.com/maayplatform/afmaay-backend/internal/adapter/postgres/grammar"
	"github.com/maayplatform/afmaay-backend/internal/adapter/postgres/suggestion"
	"github.com/maayplatform/afmaay-backend/internal/adapter/postgres/token"
	"github.com/maayplatform/afmaay-backend/internal/adapter/postgres/user"
	"github.com/maayplatform/afmaay-backend/internal/adapter/provider/openai"
	"github.com/maayplatform/afmaay-backend/internal/auth"
	"github.com/maayplatform/afmaay-backend/internal/config"
	authsvc "github.com/maayplatform/afmaay-backend/internal/service/auth"
	"github.com/maayplatform/afmaay-backend/internal/service/dictionary"
	gapsvc "github.com/maayplatform/afmaay-backend/internal/service/gap"
	grammarsvc "github.com/maayplatform/afmaay-backend/internal/service/grammar"
	"github.com/maayplatform/afmaay-backend/internal/service/stats"
	"github.com/maayplatform/afmaay-backend/internal/service/translation"
	"github.com/maayplatform/afmaay-backend/internal/transport/middleware"
	"github.com/maayplatform/afmaay-backend/internal/transport/rest"
)

// tokenCleanupInterval controls how often expired refresh tokens are purged.
const tokenCleanupInterval = time.Hour

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and the HTTP transport, and serves until ctx
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("database migrations applied")
	}

	// Storage.
	entryRepo := entry.New(pool)
	gapRepo := gap.New(pool)
	grammarRepo := grammar.New(pool)
	suggestionRepo := suggestion.New(pool)
	tokenRepo := token.New(pool)
	userRepo := user.New(pool)
	txm := postgres.NewTxManager(pool)

	// External AI collaborators. Without an API key the stub keeps the rest
	// of the API functional while translation degrades.
	var provider interface {
		Complete(ctx context.Context, system, prompt string) (string, error)
		Transcribe(ctx context.Context, filename string, audio []byte) (string, error)
		Synthesize(ctx context.Context, text, voice string) ([]byte, error)
	}
	if cfg.Providers.TranslationEnabled() {
		provider = openai.NewClient(cfg.Providers, logger)
	} else {
		logger.Warn("no provider API key configured, using stub translation")
		provider = openai.NewStub()
	}

	// Services.
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, userRepo, tokenRepo, jwtManager, cfg.Auth)
	dictService := dictionary.NewService(logger, entryRepo, suggestionRepo, txm, cfg.Dict)
	gapService := gapsvc.NewService(logger, gapRepo, entryRepo, txm)
	grammarService := grammarsvc.NewService(logger, grammarRepo)
	translationService := translation.NewService(logger, entryRepo, provider, provider, gapService, cfg.Dict)
	statsService := stats.NewService(logger, entryRepo, userRepo, gapRepo, grammarRepo)

	// Transport.
	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handlers := rest.Handlers{
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		Auth:       rest.NewAuthHandler(authService, logger),
		Dictionary: rest.NewDictionaryHandler(dictService, logger),
		Gaps:       rest.NewGapHandler(gapService, logger),
		Grammar:    rest.NewGrammarHandler(grammarService, logger),
		Translate:  rest.NewTranslateHandler(translationService, logger),
		Voice:      rest.NewVoiceHandler(translationService, logger),
		Admin:      rest.NewAdminHandler(statsService, dictService, logger),
	}

	router := rest.NewRouter(handlers, rateLimiter.Limit(cfg.Server.SearchRateLimit))

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go cleanupLoop(ctx, logger, authService)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// cleanupLoop periodically deletes expired refresh tokens until ctx is done.
func cleanupLoop(ctx context.Context, logger *slog.Logger, svc *authsvc.Service) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := svc.CleanupExpiredTokens(ctx)
			if err != nil {
				logger.Error("cleanup expired tokens", slog.String("error", err.Error()))
				continue
			}
			if count > 0 {
				logger.Info("expired tokens removed", slog.Int("count", count))
			}
		}
	}
}
