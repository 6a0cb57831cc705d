package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/authcore/account-service/internal/api/handler"
	"github.com/authcore/account-service/internal/api/middleware"
	"github.com/authcore/account-service/internal/core/ports"
	"github.com/authcore/account-service/internal/core/service"
	mongodb "github.com/authcore/account-service/internal/infrastructure/db/mongo"
	redisdb "github.com/authcore/account-service/internal/infrastructure/db/redis"
)

// Options carries everything the router needs to assemble the service graph.
type Options struct {
	Mongo      *mongo.Database
	Redis      *redis.Client
	Mail       ports.MailEnqueuer
	Emails     service.ResetEmailBuilder
	JWTSecret  string
	SessionTTL time.Duration
	BaseURL    string
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(opts.Mongo)
	tokenRepo := mongodb.NewResetTokenRepository(opts.Mongo)
	sessionStore := redisdb.NewSessionStore(opts.Redis)

	sessions := service.NewSessionManager(sessionStore, opts.JWTSecret, opts.SessionTTL, opts.Logger)
	registerService := service.NewRegistrationService(userRepo, opts.Logger)
	authService := service.NewAuthService(userRepo, sessions, opts.Logger)
	resetService := service.NewResetService(userRepo, tokenRepo, opts.Mail, opts.Emails, opts.BaseURL, opts.Logger)

	authHandler := handler.NewAuthHandler(registerService, authService)
	resetHandler := handler.NewResetHandler(resetService)
	authMiddleware := middleware.Auth(sessions)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Password reset routes ---
	e.POST("/auth/forgot-password", resetHandler.ForgotPassword)
	e.GET("/auth/password-reset-sent/:resetID", resetHandler.ResetSent)
	e.POST("/auth/reset-password/:resetID", resetHandler.ResetPassword)

	// --- Authenticated routes ---
	e.GET("/v1/me", authHandler.Me, authMiddleware)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(opts.Mongo, opts.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
