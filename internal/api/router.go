package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dailydone/marketplace-api/internal/api/handler"
	"github.com/dailydone/marketplace-api/internal/api/middleware"
	"github.com/dailydone/marketplace-api/internal/core/domain"
	"github.com/dailydone/marketplace-api/internal/core/ports"
	"github.com/dailydone/marketplace-api/internal/core/service"
	"github.com/dailydone/marketplace-api/internal/pkg/config"
)

// Deps carries everything the router needs. MongoDB, Redis, Revocations,
// and Audit are optional; nil disables the corresponding behavior.
type Deps struct {
	Config      *config.Config
	Users       ports.UserRepository
	Codec       ports.TokenCodec
	Revocations service.RevocationList
	Audit       ports.AuditSink
	MongoDB     *mongo.Database
	Redis       *redis.Client
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Config.Env, deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.Config.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("dailydone"))

	// --- Dependencies ---
	authService := service.NewAuthService(deps.Users, deps.Codec, deps.Revocations, deps.Audit, deps.Log)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	pingHandler := handler.NewPingHandler(deps.Config.PingMessage)
	authMiddleware := middleware.Auth(deps.Codec)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/register", authHandler.Register)
	e.GET("/api/auth/verify", authHandler.Verify)
	e.POST("/api/auth/logout", authHandler.Logout)

	// --- User routes ---
	e.PUT("/api/users/me", userHandler.UpdateMe, authMiddleware)
	e.GET("/api/admin/users", userHandler.List, authMiddleware, middleware.RBAC(domain.RoleAdmin))

	// --- Utility routes ---
	e.GET("/api/ping", pingHandler.Ping)
	e.GET("/api/demo", pingHandler.Demo)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.MongoDB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// Structured 404 for unmatched API paths.
	e.Any("/api/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]any{
			"success": false,
			"message": "API endpoint not found",
		})
	})

	return e
}
