package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/ShwetaPawar0705/IRIS/internal/config"
	apierrors "github.com/ShwetaPawar0705/IRIS/internal/errors"
	"github.com/ShwetaPawar0705/IRIS/internal/infrastructure"
	customMiddleware "github.com/ShwetaPawar0705/IRIS/internal/middleware"
	"github.com/ShwetaPawar0705/IRIS/internal/services"
	"github.com/ShwetaPawar0705/IRIS/internal/tables"
	handlers "github.com/ShwetaPawar0705/IRIS/internal/transport/http"
)

// Application owns the loaded registry, the router and the telemetry
// providers of one server process
type Application struct {
	Config        *config.Config
	Router        *chi.Mux
	Server        *http.Server
	Registry      *tables.Registry // nil when the workbook could not be loaded
	TableService  *services.TableService
	HealthService *services.HealthService
	ErrorHandler  *apierrors.ErrorHandler
	Logger        *slog.Logger
	OTelProviders *infrastructure.OTelProviders
	Metrics       *infrastructure.BusinessMetrics
	SystemMetrics *infrastructure.SystemMetrics
}

// NewApplication loads configuration, initialises logging and builds the
// application
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return New(infrastructure.EnsureTraceID(context.Background()), cfg, logger)
}

// New builds the application from an explicit configuration. The workbook
// is loaded once here; a load failure is logged and the application keeps
// serving without a registry.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Application, error) {
	if cfg == nil {
		return nil, errors.New("nil configuration")
	}
	if logger == nil {
		logger = infrastructure.GetLogger()
	}

	logger.InfoContext(ctx, "Application starting",
		slog.String("name", config.AppName),
		slog.String("version", config.AppVersion),
		slog.String("workbook", cfg.Workbook.Path))

	otelProviders, err := infrastructure.InitializeOTel(infrastructure.OTelConfigFrom(cfg.Telemetry), logger)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	metrics, err := infrastructure.CreateBusinessMetrics(otelProviders.Meter)
	if err != nil {
		return nil, fmt.Errorf("register business metrics: %w", err)
	}

	systemMetrics, err := infrastructure.RegisterSystemMetrics(otelProviders.Meter, time.Now())
	if err != nil {
		return nil, fmt.Errorf("register system metrics: %w", err)
	}

	a := &Application{
		Config:        cfg,
		Logger:        logger,
		OTelProviders: otelProviders,
		Metrics:       metrics,
		SystemMetrics: systemMetrics,
		ErrorHandler:  apierrors.NewErrorHandler(logger, false),
	}

	a.Registry = a.loadRegistry(ctx)
	a.initializeServices()
	if err := a.setupRouter(); err != nil {
		return nil, err
	}
	a.createServer()

	return a, nil
}

// loadRegistry reads the configured workbook. It returns nil on failure.
func (a *Application) loadRegistry(ctx context.Context) *tables.Registry {
	path := a.Config.Workbook.Path

	start := time.Now()
	reg, err := tables.Load(ctx, path,
		tables.OnlySheets(a.Config.Workbook.Sheets...),
		tables.LoadLogger(a.Logger))

	count := 0
	if reg != nil {
		count = reg.Len()
	}
	infrastructure.RecordWorkbookLoad(ctx, a.Metrics, path, time.Since(start), count, err)

	if err != nil {
		a.Logger.ErrorContext(ctx, "Could not initialize Excel processor, table endpoints will return 503",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil
	}
	return reg
}

func (a *Application) initializeServices() {
	a.TableService = services.NewTableService(a.Registry, a.Metrics, a.Logger)
	a.HealthService = services.NewHealthService(a.TableService, a.Logger)
}

// setupRouter mounts the middleware chain and every endpoint
func (a *Application) setupRouter() error {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(chimw.RealIP)

	r.NotFound(a.ErrorHandler.NotFound)
	r.MethodNotAllowed(a.ErrorHandler.MethodNotAllowed)

	otelMiddleware, err := customMiddleware.NewOTelMiddleware(a.OTelProviders, a.Metrics)
	if err != nil {
		return fmt.Errorf("failed to create OpenTelemetry middleware: %w", err)
	}

	// Ordering: RequestID → RealIP → OTel → Logger → Recoverer → Timeout
	r.Group(func(r chi.Router) {
		r.Use(otelMiddleware.Handler)
		r.Use(customMiddleware.StructuredLogger(a.Logger))
		r.Use(apierrors.RecoveryMiddleware(a.ErrorHandler))
		r.Use(customMiddleware.Timeout(a.Config.Server.RequestTimeout, a.ErrorHandler))
		r.Use(customMiddleware.SecurityHeaders)

		if a.Config.Security.EnableCORS {
			r.Use(customMiddleware.CORS(customMiddleware.CORSConfig{
				AllowedOrigins: a.Config.Security.AllowedOrigins,
				Logger:         a.Logger,
			}))
		}

		if a.Config.Security.RateLimit.Enabled {
			r.Use(customMiddleware.NewRateLimiter(
				a.Config.Security.RateLimit.RPS,
				a.Config.Security.RateLimit.Burst,
				a.Logger,
				a.ErrorHandler,
			).Handler)
		}

		a.setupAPIRoutes(r)
	})

	if a.OTelProviders.PrometheusHTTP != nil {
		r.Handle(config.MetricsEndpoint, a.OTelProviders.PrometheusHTTP)
	}

	a.Router = r
	return nil
}

// setupAPIRoutes configures the query and health endpoints
func (a *Application) setupAPIRoutes(r chi.Router) {
	healthHandler := handlers.NewHealthHandler(a.HealthService, a.Logger)
	r.Get(config.RootEndpoint, healthHandler.Info)
	r.Get(config.HealthEndpoint, healthHandler.HealthCheck)

	tableHandler := handlers.NewTableHandler(
		a.TableService,
		customMiddleware.NewQueryValidator(a.Logger),
		a.Logger,
		a.ErrorHandler,
	)
	tableHandler.Register(r)
}

func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:           a.Config.Server.Address(),
		Handler:        a.Router,
		ReadTimeout:    a.Config.Server.ReadTimeout,
		WriteTimeout:   a.Config.Server.WriteTimeout,
		IdleTimeout:    a.Config.Server.IdleTimeout,
		MaxHeaderBytes: a.Config.Server.MaxHeaderBytes,
	}
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully
func (a *Application) Serve(ctx context.Context, ln net.Listener) error {
	a.Logger.InfoContext(ctx, "Application started",
		slog.String("address", ln.Addr().String()),
		slog.Bool("processor_initialized", a.TableService.Initialized()))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := a.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return a.Stop(context.WithoutCancel(ctx))
	})

	return g.Wait()
}

// Run listens on the configured address until SIGINT or SIGTERM
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", a.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.Server.Addr, err)
	}

	return a.Serve(ctx, ln)
}

// Stop drains in-flight requests, then releases the metric callbacks and
// flushes the telemetry providers
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "draining connections")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	if err := a.SystemMetrics.Unregister(); err != nil {
		a.Logger.WarnContext(ctx, "system metrics still registered", slog.Any("error", err))
	}

	if a.OTelProviders != nil {
		if err := a.OTelProviders.Shutdown(shutdownCtx); err != nil {
			a.Logger.WarnContext(ctx, "telemetry flush failed", slog.Any("error", err))
		}
	}

	a.Logger.InfoContext(ctx, "stopped")
	return nil
}
