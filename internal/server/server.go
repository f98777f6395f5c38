package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/sven-0414/nhl-data-service/internal/config"
	"github.com/sven-0414/nhl-data-service/internal/httpapi"
	"github.com/sven-0414/nhl-data-service/internal/logging"
	"github.com/sven-0414/nhl-data-service/internal/metrics"
	"github.com/sven-0414/nhl-data-service/internal/nhle"
	"github.com/sven-0414/nhl-data-service/internal/poller"
	"github.com/sven-0414/nhl-data-service/internal/schedule"
	"github.com/sven-0414/nhl-data-service/internal/store"
	"github.com/sven-0414/nhl-data-service/internal/store/postgres"
)

var metricsSetup = metrics.Setup

// backfiller is the poller surface the server drives.
type backfiller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         store.Store
	cache         *schedule.Cache
	httpServer    httpServer
	metricsServer httpServer
	poller        backfiller
	metricsStop   func(context.Context) error
}

// New constructs a server with the store selected by configuration: Postgres
// when DATABASE_URL is set, in-memory otherwise.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	st, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return newServerWithStore(cfg, logger, st), nil
}

func newServerWithStore(cfg config.Config, logger *slog.Logger, st store.Store) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	client := nhle.NewClient(nhle.Config{
		BaseURL:    cfg.NHL.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.NHL.HTTPTimeout},
		Logger:     logger,
	})
	cache := schedule.New(st, client, nhle.ProviderName, logger, recorder)
	plr := poller.New(cache, logger, recorder, cfg.PollInterval, cfg.BackfillDays)
	httpSrv := buildHTTPServer(cfg, cache, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         st,
		cache:         cache,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr backfiller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	if cfg.DatabaseURL == "" {
		return store.NewMemoryStore(), nil
	}
	return postgres.Open(ctx, cfg.DatabaseURL)
}

func buildHTTPServer(cfg config.Config, cache *schedule.Cache, logger *slog.Logger, recorder *metrics.Recorder, plr backfiller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := httpapi.NewHandler(cache, logger, statusFn)
	router := httpapi.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := httpapi.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "error", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// Run starts the poller and HTTP server, then waits for context cancellation
// to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if s.poller != nil {
		if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Error("failed to stop backfill", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if closer, ok := s.store.(io.Closer); ok {
		if err := closer.Close(); err != nil && s.logger != nil {
			s.logger.Warn("store close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
