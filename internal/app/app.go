package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sweetdevil144/feedback-platform/internal/adapter/postgres"
	formrepo "github.com/Sweetdevil144/feedback-platform/internal/adapter/postgres/form"
	userrepo "github.com/Sweetdevil144/feedback-platform/internal/adapter/postgres/user"
	"github.com/Sweetdevil144/feedback-platform/internal/auth"
	"github.com/Sweetdevil144/feedback-platform/internal/config"
	authsvc "github.com/Sweetdevil144/feedback-platform/internal/service/auth"
	formsvc "github.com/Sweetdevil144/feedback-platform/internal/service/form"
	usersvc "github.com/Sweetdevil144/feedback-platform/internal/service/user"
	"github.com/Sweetdevil144/feedback-platform/internal/transport/middleware"
	"github.com/Sweetdevil144/feedback-platform/internal/transport/rest"
	"github.com/Sweetdevil144/feedback-platform/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, serves HTTP until ctx is cancelled and then shuts down
// gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("env", cfg.App.Env),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      a.Handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// App holds the wired HTTP handler and the resources it owns.
type App struct {
	Handler http.Handler

	pool    *pgxpool.Pool
	schema  *postgres.SchemaInspector
	limiter *middleware.RateLimiter
}

// New connects to the database, applies migrations when configured and
// builds the full handler stack.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("database: %w", err)
		}
	}

	a := &App{pool: pool}
	if err := a.wire(cfg, logger, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return a, nil
}

// NewWithPool builds the handler stack on an existing pool. The caller
// keeps ownership of the pool.
func NewWithPool(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (*App, error) {
	a := &App{}
	if err := a.wire(cfg, logger, pool); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) wire(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) error {
	schema, err := postgres.NewSchemaInspector(pool, migrations.FS)
	if err != nil {
		return fmt.Errorf("schema inspector: %w", err)
	}
	a.schema = schema

	// Repositories
	users := userrepo.New(pool)
	forms := formrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	// Services
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	authService := authsvc.NewService(logger, users, tokens, cfg.Auth)
	userService := usersvc.NewService(logger, users, cfg.Auth)
	formService := formsvc.NewService(logger, forms, txm)

	// Rate limits
	var limits rest.Limits
	if cfg.RateLimit.Enabled {
		a.limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval, cfg.RateLimit.TrustForwardedIP)
		limits.Auth = a.limiter.Limit(cfg.RateLimit.AuthPerMinute)
		limits.Submit = a.limiter.Limit(cfg.RateLimit.SubmitPerMinute)
	}

	production := cfg.App.IsProduction()
	router := rest.NewRouter(rest.Handlers{
		Auth:   rest.NewAuthHandler(authService, logger, production),
		User:   rest.NewUserHandler(userService, logger, production),
		Form:   rest.NewFormHandler(formService, logger, production),
		Health: rest.NewHealthHandler(pool, schema, BuildVersion(), logger),
	}, limits)

	a.Handler = middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
		middleware.Auth(authService, logger),
		middleware.Logger(logger),
	)(router)
	return nil
}

// Close stops background workers and releases the database handles.
func (a *App) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	if a.schema != nil {
		_ = a.schema.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
