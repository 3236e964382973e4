// Package server assembles the echo application: middleware chain, route
// table and process lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"group-ledger/internal/config"
	"group-ledger/internal/handlers"
	"group-ledger/internal/middleware"
	"group-ledger/internal/services"
	"group-ledger/internal/validation"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	bodyLimit             = "1M"
	rateLimiterEvictEvery = time.Minute
)

// Server is the HTTP front of the ledger.
type Server struct {
	echo    *echo.Echo
	cfg     *config.Config
	limiter *middleware.RateLimiter
	logger  *slog.Logger
}

// New builds the echo application. breaker may be nil when no broker is
// configured; reg receives the HTTP metrics and is served on /metrics.
func New(
	cfg *config.Config,
	db *gorm.DB,
	svc *Services,
	breaker handlers.BreakerState,
	reg *prometheus.Registry,
	logger *slog.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.Default()
	e.HTTPErrorHandler = middleware.NewErrorHandler(logger, reg).Handle

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger, reg))
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(bodyLimit))
	e.Use(limiter.Middleware())

	s := &Server{echo: e, cfg: cfg, limiter: limiter, logger: logger}
	s.routes(db, svc, breaker, reg)
	return s
}

func (s *Server) routes(db *gorm.DB, svc *Services, breaker handlers.BreakerState, reg *prometheus.Registry) {
	e := s.echo

	healthHandler := handlers.NewHealthCheckHandler(db, breaker)
	authHandler := handlers.NewAuthHandler(svc.Auth)
	meHandler := handlers.NewMeHandler(svc.Auth, svc.Group, svc.Audit)
	groupHandler := handlers.NewGroupHandler(svc.Group, svc.Audit)
	transactionHandler := handlers.NewTransactionHandler(svc.Transaction)
	recurringHandler := handlers.NewRecurringHandler(svc.Recurring)
	clientHandler := handlers.NewClientHandler(svc.Client)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.POST("/logout", authHandler.Logout)

	requireAuth := middleware.RequireAuth(svc.Token, svc.BlacklistedTokens)
	anyRole := middleware.RequireGroupRole(svc.Access, services.AnyRole...)
	writer := middleware.RequireGroupRole(svc.Access, services.WriterRoles...)
	owner := middleware.RequireGroupRole(svc.Access, services.OwnerOnly...)

	me := api.Group("/me", requireAuth)
	me.GET("", meHandler.GetMe, middleware.AttachGroupContext(svc.Access))
	me.GET("/activity", meHandler.GetMyActivity)

	groups := api.Group("/groups", requireAuth)
	groups.GET("", groupHandler.ListGroups)
	groups.POST("", groupHandler.CreateGroup)
	groups.POST("/join", groupHandler.JoinGroup)

	group := groups.Group("/:groupId")
	group.GET("", groupHandler.GetGroup, anyRole)
	group.PUT("", groupHandler.UpdateGroup, owner)
	group.DELETE("", groupHandler.DeleteGroup, owner)
	group.GET("/activity", groupHandler.GetActivity, anyRole)
	group.POST("/invite-key", groupHandler.RegenerateInviteKey, owner)
	group.POST("/transfer-ownership", groupHandler.TransferOwnership, owner)
	group.POST("/leave", groupHandler.LeaveGroup, anyRole)
	group.POST("/members", groupHandler.AddMember, owner)
	group.PUT("/members/:userId", groupHandler.ChangeMemberRole, owner)
	group.DELETE("/members/:userId", groupHandler.RemoveMember, owner)

	group.GET("/transactions", transactionHandler.ListTransactions, anyRole)
	group.POST("/transactions", transactionHandler.CreateTransaction, writer)
	group.GET("/transactions/:id", transactionHandler.GetTransaction, anyRole)
	group.DELETE("/transactions/:id", transactionHandler.DeleteTransaction, writer)
	group.GET("/summary", transactionHandler.GetSummary, anyRole)

	group.GET("/recurring", recurringHandler.ListRecurring, anyRole)
	group.POST("/recurring", recurringHandler.CreateRecurring, writer)
	group.GET("/recurring/due", recurringHandler.ListDue, anyRole)
	group.GET("/recurring/:id", recurringHandler.GetRecurring, anyRole)
	group.PUT("/recurring/:id", recurringHandler.UpdateRecurring, writer)
	group.DELETE("/recurring/:id", recurringHandler.DeleteRecurring, writer)
	group.POST("/recurring/:id/execute", recurringHandler.ExecuteRecurring, writer)

	group.GET("/clients", clientHandler.ListClients, anyRole)
	group.POST("/clients", clientHandler.CreateClient, writer)
	group.GET("/clients/:id", clientHandler.GetClient, anyRole)
	group.PUT("/clients/:id", clientHandler.UpdateClient, writer)
	group.DELETE("/clients/:id", clientHandler.DeleteClient, writer)

	admin := api.Group("/admin", requireAuth, middleware.RequireAdmin())
	admin.POST("/recurring/process", handlers.NewAdminHandler(svc.Recurring).ProcessRecurring)

	if s.cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(svc.Group, svc.Transaction, svc.DemoData)
		api.POST("/dev/groups/:groupId/seed", devHandler.SeedGroup, requireAuth, writer)
		s.logger.Warn("development endpoints enabled", "path", "/api/v1/dev")
	}
}

// Handler exposes the echo application for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then drains in-flight requests within
// shutdownTimeout. The rate limiter's eviction loop runs alongside.
func (s *Server) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.echo.Server.ReadTimeout = s.cfg.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.cfg.Server.WriteTimeout

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.limiter.Run(ctx, rateLimiterEvictEvery)
	})

	g.Go(func() error {
		s.logger.Info("server starting", "address", addr, "environment", s.cfg.Server.Environment)
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
