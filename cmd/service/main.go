package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "expresso/internal/app"
	"expresso/internal/handlers/rest/contact_post"
	"expresso/internal/handlers/rest/dashboard_get"
	"expresso/internal/handlers/rest/healthcheck_head"
	"expresso/internal/handlers/rest/login_post"
	"expresso/internal/handlers/rest/logout_get"
	"expresso/internal/handlers/rest/page_get"
	"expresso/internal/handlers/rest/ping_get"
	"expresso/internal/handlers/rest/report_get"
	"expresso/internal/handlers/rest/shipment_create_post"
	"expresso/internal/handlers/rest/shipment_status_post"
	"expresso/internal/handlers/rest/shipments_get"
	"expresso/internal/handlers/rest/track_get"
	"expresso/internal/pkg/config"
	"expresso/internal/pkg/dotenv"
	metrics_system "expresso/internal/pkg/metrics"
	"expresso/internal/pkg/middlewares/graceful_shutdown"
	"expresso/internal/pkg/middlewares/metrics"
	"expresso/internal/pkg/middlewares/rate_limiter"
	"expresso/internal/pkg/middlewares/session_auth"
	"expresso/internal/pkg/middlewares/timeout"
	"expresso/internal/pkg/postgres"
	"expresso/pkg/logger"
	"expresso/pkg/logger/zap_adapter"
	"expresso/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting expresso-itaporanga application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	err = businessApp.ServiceAuth.EnsureAdminAccount(ctx, cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("admin bootstrap: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx backs BaseContext and must survive SIGTERM; it is cancelled
	// only after server.Shutdown() so in-flight requests can finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled, the case never fires
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must not inherit from ctx, which is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	renderer := app.WebRenderer
	store := app.WebStore

	router.Handle("/", page_get.New(log, renderer, store, "index", "Início")).Methods("GET")
	router.Handle("/sobre", page_get.New(log, renderer, store, "sobre", "Sobre Nós")).Methods("GET")
	router.Handle("/servicos", page_get.New(log, renderer, store, "servicos", "Serviços")).Methods("GET")
	router.Handle("/contato", page_get.New(log, renderer, store, "contato", "Contato")).Methods("GET")
	router.Handle("/contato", contact_post.New(log, app.ServiceContact)).Methods("POST")
	router.Handle("/rastreamento", page_get.New(log, renderer, store, "rastreamento", "Rastreamento")).Methods("GET")

	router.Handle("/api/rastrear/{codigo}", track_get.New(log, app.ServiceShipment)).Methods("GET")

	router.Handle("/gestao", page_get.New(log, renderer, store, "gestao/login", "Área Restrita")).Methods("GET")
	router.Handle("/gestao/login", login_post.New(log, app.ServiceAuth, store)).Methods("POST")
	router.Handle("/gestao/logout", logout_get.New(log, app.ServiceAuth, store)).Methods("GET")

	staff := router.PathPrefix("/gestao").Subrouter()
	staff.Use(session_auth.Middleware(log, store, app.ServiceAuth))
	staff.Handle("/dashboard", dashboard_get.New(log, app.ServiceShipment, renderer, store)).Methods("GET")
	staff.Handle("/entregas", shipments_get.New(log, app.ServiceShipment, renderer, store)).Methods("GET")
	staff.Handle("/entregas/{codigo}/status", shipment_status_post.New(log, app.ServiceShipment, store)).Methods("POST")
	staff.Handle("/nova-entrega", page_get.New(log, renderer, store, "gestao/nova-entrega", "Nova Entrega")).Methods("GET")
	staff.Handle("/criar-entrega", shipment_create_post.New(log, app.ServiceShipment, store)).Methods("POST")
	staff.Handle("/relatorios", report_get.New(log, app.ServiceShipment, renderer, store)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
