package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/laneline/swimreg-backend/internal/adapter/postgres"
	athleterepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/athlete"
	auditrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/audit"
	coachrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/coach"
	entryrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/entry"
	meetrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/meet"
	meetteamrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/meetteam"
	teamrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/team"
	tokenrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/token"
	userrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/user"
	"github.com/laneline/swimreg-backend/internal/auth"
	"github.com/laneline/swimreg-backend/internal/config"
	authsvc "github.com/laneline/swimreg-backend/internal/service/auth"
	"github.com/laneline/swimreg-backend/internal/service/entries"
	"github.com/laneline/swimreg-backend/internal/service/league"
	"github.com/laneline/swimreg-backend/internal/service/roster"
	"github.com/laneline/swimreg-backend/internal/transport/middleware"
	"github.com/laneline/swimreg-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to the
// database, wires repositories, services, and HTTP handlers, and serves until
// ctx is cancelled.
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

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	teams := teamrepo.New(pool)
	meets := meetrepo.New(pool)
	meetTeams := meetteamrepo.New(pool)
	coaches := coachrepo.New(pool)
	athletes := athleterepo.New(pool)
	entryStore := entryrepo.New(pool)
	audit := auditrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, jwtManager, cfg.Auth)
	leagueService := league.NewService(logger, teams, meets, meetTeams, coaches, users, audit, txManager)
	rosterService := roster.NewService(logger, athletes, teams, coaches, users, audit, txManager)
	entriesService := entries.NewService(logger, entryStore, athletes, meets, teams, meetTeams, coaches, users, audit, txManager, cfg.Registration)

	router := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Entries: rest.NewEntriesHandler(entriesService, logger),
		League:  rest.NewLeagueHandler(leagueService, logger),
		Roster:  rest.NewRosterHandler(rosterService, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(authService),
	)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
