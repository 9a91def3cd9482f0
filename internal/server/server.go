package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"bank-dashboard/internal/config"
	"bank-dashboard/internal/database"
	"bank-dashboard/internal/handlers"
	"bank-dashboard/internal/middleware"
	"bank-dashboard/internal/repositories"
	"bank-dashboard/internal/services"
	"bank-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server owns the Echo instance and the services behind it
type Server struct {
	cfg       *config.Config
	echo      *echo.Echo
	limiter   *middleware.RateLimiter
	directory services.UserDirectoryInterface
	seeder    services.SeederInterface
}

// New wires repositories, services and handlers over db. Metrics are
// registered on registry and served from /metrics.
func New(cfg *config.Config, db *database.DB, registry *prometheus.Registry) *Server {
	logger := slog.Default()
	metrics := services.NewPrometheusMetrics(registry)
	analyticsLogger := services.NewAnalyticsLogger(logger)

	chartRepo := repositories.NewChartRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	loanRepo := repositories.NewLoanRepository(db.DB)
	customerRepo := repositories.NewCustomerRepository(db.DB)
	userRepo := repositories.NewUserRepository(db.DB)
	auditRepo := repositories.NewAuditLogRepository(db.DB)

	charts := services.NewChartResolver(chartRepo, analyticsLogger, metrics)
	directory := services.NewUserDirectory(
		userRepo,
		services.NewAuditService(auditRepo),
		services.NewPasswordService(cfg.Security.BCryptCost, cfg.Security.PasswordMinLength),
		cfg.Security.AllowedEmailDomains,
		analyticsLogger,
		metrics,
		logger,
	)

	seeder := services.NewSeeder(
		chartRepo, customerRepo, transactionRepo, loanRepo,
		services.NewDataGenerator(1), logger,
	)

	s := &Server{
		cfg:       cfg,
		echo:      echo.New(),
		limiter:   middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, 0),
		directory: directory,
		seeder:    seeder,
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.HTTPErrorHandler = middleware.NewHTTPErrorHandler(metrics)
	s.echo.Validator = handlers.NewValidator(validation.NewValidator(cfg.Security.AllowedEmailDomains))

	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.PanicRecovery(metrics))
	s.echo.Use(requestLogger())
	s.echo.Use(middleware.SecurityHeaders())
	s.echo.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, echo.HeaderAccept, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	s.echo.Use(echomw.BodyLimit(cfg.Server.BodyLimit))

	analytics := handlers.NewAnalyticsHandler(
		charts,
		services.NewTransactionAnalyticsService(transactionRepo, analyticsLogger, metrics),
		services.NewLoanAnalyticsService(loanRepo, analyticsLogger, metrics),
		services.NewCohortAnalyticsService(customerRepo, analyticsLogger, metrics),
		services.NewCustomerInsightsService(customerRepo, analyticsLogger, metrics),
	)
	users := handlers.NewUserHandler(directory, charts)
	health := handlers.NewHealthCheckHandler(db)

	s.echo.GET("/health", health.HealthCheck)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := s.echo.Group("/api", s.limiter.Middleware(), requestTimeout(cfg))

	api.GET("/charts", analytics.GetCharts)
	api.GET("/transactions", analytics.GetTransactions)
	api.GET("/loans", analytics.GetLoans)
	api.GET("/customer-cohorts", analytics.GetCustomerCohorts)
	api.GET("/countries", analytics.GetCountries)
	api.GET("/customer-segments", analytics.GetCustomerSegments)

	api.POST("/signup", users.Signup)
	api.POST("/login", users.Login)
	api.GET("/users", users.ListUsers)
	api.PUT("/users/:email/role", users.UpdateRole)
	api.PUT("/users/:email/name", users.UpdateName)
	api.DELETE("/users/:email", users.DeleteUser)
	api.GET("/users/:email/charts", users.GetUserCharts)
	api.GET("/users/:email/activity", users.GetUserActivity)

	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Bootstrap seeds the chart catalogue and, when a bootstrap password is
// configured, the admin account
func (s *Server) Bootstrap(ctx context.Context) error {
	if _, err := s.seeder.SeedCharts(ctx); err != nil {
		return fmt.Errorf("failed to seed charts: %w", err)
	}

	admin := s.cfg.Bootstrap
	if admin.AdminPassword == "" {
		slog.Info("ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}
	if err := s.directory.EnsureAdmin(ctx, admin.AdminEmail, admin.AdminPassword, admin.AdminName); err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}
	return nil
}

// Run serves until ctx is canceled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	s.echo.Server.ReadTimeout = s.cfg.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.cfg.Server.WriteTimeout

	go s.limiter.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server",
			"address", s.cfg.Address(),
			"environment", s.cfg.Server.Environment,
		)
		if err := s.echo.Start(s.cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return <-errCh
}

// requestTimeout bounds each API request. An expired deadline is reported
// as an internal error.
func requestTimeout(cfg *config.Config) echo.MiddlewareFunc {
	return echomw.ContextTimeoutWithConfig(echomw.ContextTimeoutConfig{
		Timeout: cfg.Server.RequestTimeout,
		ErrorHandler: func(err error, c echo.Context) error {
			if errors.Is(err, context.DeadlineExceeded) {
				return handlers.SendSystemError(c, err)
			}
			return err
		},
	})
}

func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			slog.Log(c.Request().Context(), level, "HTTP request",
				"trace_id", middleware.GetTraceID(c),
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"remote_ip", v.RemoteIP,
			)
			return nil
		},
	})
}
