package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	apppokemon "github.com/preston-bernstein/pokedex-service/internal/app/pokemon"
	"github.com/preston-bernstein/pokedex-service/internal/config"
	httpserver "github.com/preston-bernstein/pokedex-service/internal/http"
	"github.com/preston-bernstein/pokedex-service/internal/http/handlers"
	"github.com/preston-bernstein/pokedex-service/internal/http/middleware"
	"github.com/preston-bernstein/pokedex-service/internal/logging"
	"github.com/preston-bernstein/pokedex-service/internal/metrics"
)

var metricsSetup = metrics.Setup

// Server owns the API listener, the optional metrics listener and the
// telemetry pipeline for one process.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	service       *apppokemon.Service
	timeouts      timeouts
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with the providers selected by configuration.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProviders(cfg config.Config, logger *slog.Logger, set *providerSet) *Server {
	return newServerWithMetrics(cfg, logger, set, nil)
}

// newServerWithMetrics wires everything. A nil set selects providers from cfg;
// a nil recorder runs the telemetry setup.
func newServerWithMetrics(cfg config.Config, logger *slog.Logger, set *providerSet, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsStop := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	var wired providerSet
	if set == nil {
		wired = factory.build(context.Background(), cfg)
	} else {
		wired = factory.wrap(*set)
	}

	t := resolveTimeouts(cfg.Server)
	svc := apppokemon.NewService(wired.data, wired.cards, wired.recs, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		service:       svc,
		timeouts:      t,
		httpServer:    buildHTTPServer(cfg, t, svc, logger, recorder),
		metricsServer: metricsSrv,
		metricsStop:   metricsStop,
	}
}

// newServerWithDeps injects the listener directly; used by lifecycle tests.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, svc *apppokemon.Service, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		service:    svc,
		timeouts:   resolveTimeouts(cfg.Server),
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, t timeouts, svc *apppokemon.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	router := httpserver.NewRouter(handlers.NewHandler(svc, logger))
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	return newNetHTTPServer(":"+cfg.Port, middleware.LoggingMiddleware(logger, recorder, router), t)
}

// Run starts the listeners and blocks until ctx is cancelled, then shuts down.
// A listener that fails to start calls stop so the process exits.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")
	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(error) {
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

// gracefulShutdown drains the API listener first, then the metrics listener,
// then flushes the telemetry pipeline. All steps share one deadline.
func (s *Server) gracefulShutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeouts.shutdown)
	defer cancel()

	type step struct {
		name string
		stop func(context.Context) error
	}
	steps := []step{{"http server", s.httpServer.Shutdown}}
	if s.metricsServer != nil {
		steps = append(steps, step{"metrics server", s.metricsServer.Shutdown})
	}
	if s.metricsStop != nil {
		steps = append(steps, step{"metrics", s.metricsStop})
	}

	for _, st := range steps {
		if err := st.stop(ctx); err != nil {
			logging.Warn(s.logger, st.name+" shutdown failed", "error", err)
		}
	}
	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	telemetry := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, scrape, stop, err := metricsSetup(context.Background(), telemetry)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}
	if scrape == nil || !telemetry.Enabled {
		return rec, nil, stop
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", scrape)
	return rec, newNetHTTPServer(":"+telemetry.Port, mux, resolveTimeouts(config.ServerConfig{})), stop
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, name+" server starting", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the wrapped router.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
