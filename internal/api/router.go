package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/housebroker/listing-api/internal/api/handler"
	"github.com/housebroker/listing-api/internal/api/middleware"
	"github.com/housebroker/listing-api/internal/core/domain"
	"github.com/housebroker/listing-api/internal/core/ports"
	"github.com/housebroker/listing-api/internal/core/service"
	"github.com/housebroker/listing-api/internal/infrastructure/config"
	mongodb "github.com/housebroker/listing-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, audit ports.AuditSink) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("housebroker"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	commissionRepo := mongodb.NewCommissionRepository(db)
	propertyRepo := mongodb.NewPropertyRepository(db)

	authService := service.NewAuthService(userRepo, roleRepo, audit, cfg.JWTSecret, cfg.TokenTTL, log)
	tierCache := service.NewTierCache(commissionRepo, cfg.TierRefresh)
	commissionService := service.NewCommissionService(tierCache, log)
	propertyService := service.NewPropertyService(propertyRepo, commissionService, log)

	authHandler := handler.NewAuthHandler(authService)
	commissionHandler := handler.NewCommissionHandler(commissionService)
	propertyHandler := handler.NewPropertyHandler(propertyService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	brokerOnly := middleware.RequireRole(domain.RoleBroker)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login, middleware.LoginThrottle(rdb, cfg.LoginRateLimit))

	// --- Commission routes (Broker only) ---
	e.GET("/commission/quote", commissionHandler.Quote, authRequired, brokerOnly)

	// --- Property routes ---
	props := e.Group("/properties", authRequired)
	props.POST("", propertyHandler.Create, brokerOnly)
	props.GET("", propertyHandler.List)
	props.GET("/:id", propertyHandler.Get)
	props.GET("/:id/commission", propertyHandler.Commission, brokerOnly)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
