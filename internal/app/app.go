package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tagger-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tagger-backend/internal/config"
	"github.com/heartmarshall/tagger-backend/internal/metrics"
	"github.com/heartmarshall/tagger-backend/internal/transport/middleware"
	"github.com/heartmarshall/tagger-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to
// PostgreSQL, optionally applies migrations and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
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

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	m, err := metrics.New()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	svcs := NewServices(logger, cfg, NewRepos(pool), m)

	handler, stop := NewHTTPHandler(logger, cfg, pool, svcs, m)
	defer stop()

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewHTTPHandler assembles the router and middleware chain. The returned
// stop func releases the login rate limiter.
func NewHTTPHandler(logger *slog.Logger, cfg *config.Config, db rest.Pinger, svcs *Services, m *metrics.Metrics) (http.Handler, func()) {
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(Version, map[string]rest.Pinger{"database": db}),
		Auth:     rest.NewAuthHandler(svcs.Auth, logger),
		Dataset:  rest.NewDatasetHandler(svcs.Datasets, logger),
		Tag:      rest.NewTagHandler(svcs.Tags, logger),
		Sentence: rest.NewSentenceHandler(svcs.Sentences, cfg.Import.MaxUploadBytes, logger),
		Labeling: rest.NewLabelingHandler(svcs.Labeling, svcs.Search, logger),
		Admin:    rest.NewAdminHandler(svcs.Permission, svcs.Users, logger),
		Metrics:  m.Handler(),
	}, limiter.Limit(cfg.RateLimit.LoginPerMinute))

	// Metrics sits innermost so it sees the request the mux annotates.
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(svcs.JWT, logger),
		middleware.Metrics(m),
	)(router)

	return handler, limiter.Stop
}

// serve runs srv until ctx is done or the listener fails, whichever comes
// first, then drains in-flight requests for at most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
