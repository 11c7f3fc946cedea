package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stayhub/listings-api/internal/api/handler"
	"github.com/stayhub/listings-api/internal/api/middleware"
	"github.com/stayhub/listings-api/internal/core/domain"
	"github.com/stayhub/listings-api/internal/core/service"
	"github.com/stayhub/listings-api/internal/infrastructure/config"
	mongodb "github.com/stayhub/listings-api/internal/infrastructure/db/mongo"
	redisdb "github.com/stayhub/listings-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("listings"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)

	listingRepo := mongodb.NewListingRepository(db)
	listingService := service.NewListingService(listingRepo, log)

	limiter := redisdb.NewLoginLimiter(rdb, cfg.LoginMaxAttempts, cfg.LoginWindow)

	authHandler := handler.NewAuthHandler(authService, limiter, cfg.AuthCookieName, cfg.TokenTTL)
	listingHandler := handler.NewListingHandler(listingService)

	authMiddleware := middleware.Auth(authService, cfg.AuthCookieName)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Listing routes ---
	// Reads are open to any authenticated role; writes require admin.
	v1 := e.Group("/v1/listings", authMiddleware)
	v1.GET("", listingHandler.List, middleware.RBAC(domain.RoleAdmin, domain.RoleUser))
	v1.GET("/:id", listingHandler.Get, middleware.RBAC(domain.RoleAdmin, domain.RoleUser))
	v1.GET("/:id/reviews", listingHandler.Reviews, middleware.RBAC(domain.RoleAdmin, domain.RoleUser))
	v1.POST("", listingHandler.Create, middleware.RBAC(domain.RoleAdmin))
	v1.PUT("/:id", listingHandler.Update, middleware.RBAC(domain.RoleAdmin))
	v1.DELETE("/:id", listingHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
