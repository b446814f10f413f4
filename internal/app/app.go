package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/voicejournal/backend/internal/adapter/postgres"
	analyticsrepo "github.com/voicejournal/backend/internal/adapter/postgres/analytics"
	"github.com/voicejournal/backend/internal/adapter/postgres/entry"
	"github.com/voicejournal/backend/internal/adapter/postgres/tag"
	"github.com/voicejournal/backend/internal/adapter/postgres/token"
	"github.com/voicejournal/backend/internal/adapter/postgres/user"
	jwtauth "github.com/voicejournal/backend/internal/auth"
	"github.com/voicejournal/backend/internal/config"
	"github.com/voicejournal/backend/internal/service/analytics"
	"github.com/voicejournal/backend/internal/service/auth"
	"github.com/voicejournal/backend/internal/service/journal"
	"github.com/voicejournal/backend/internal/transport/middleware"
	"github.com/voicejournal/backend/internal/transport/rest"
)

// Run wires the application together and blocks until shutdown.
// It loads configuration, connects to PostgreSQL, builds services and
// handlers, and serves HTTP until SIGINT/SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := NewLogger(cfg.Log)
	log.Info("starting server", "version", BuildVersion(), "addr", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	userRepo := user.New(pool)
	tokenRepo := token.New(pool)
	entryRepo := entry.New(pool)
	tagRepo := tag.New(pool)
	analyticsRepo := analyticsrepo.New(pool)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authSvc := auth.NewService(log, userRepo, tokenRepo, jwtManager, cfg.Auth)
	journalSvc := journal.NewService(log, entryRepo, tagRepo, txManager, cfg.Journal)
	analyticsSvc := analytics.NewService(log, analyticsRepo, cfg.Analytics)

	handler := rest.NewRouter(rest.Handlers{
		Auth:      rest.NewAuthHandler(authSvc, log),
		Journal:   rest.NewJournalHandler(journalSvc, log),
		Tags:      rest.NewTagHandler(journalSvc, log),
		Analytics: rest.NewAnalyticsHandler(analyticsSvc, log),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	})

	rl := middleware.NewRateLimiter(time.Minute)
	defer rl.Stop()

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.CORS(cfg.CORS),
		rl.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(authSvc),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      chain(handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
