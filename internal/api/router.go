package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/liquidglass/portfolio-api/docs"
	"github.com/liquidglass/portfolio-api/internal/api/handler"
	"github.com/liquidglass/portfolio-api/internal/api/middleware"
	"github.com/liquidglass/portfolio-api/internal/core/ports"
)

// Deps carries the constructed services the router wires into handlers.
// Mongo and Redis are nil when those backends are not deployed; Limiter is
// nil when the active limiter backend offers no inspection.
type Deps struct {
	Contact   ports.ContactService
	Themes    ports.ThemeService
	Portfolio ports.PortfolioService
	Auth      ports.AuthService
	Limiter   ports.LimiterInspector
	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portfolio"))

	// --- Contact pipeline ---
	contactHandler := handler.NewContactHandler(d.Contact)
	e.POST("/api/contact", contactHandler.Submit)
	e.GET("/api/contact", contactHandler.MethodNotAllowed)

	// --- Themes ---
	themeHandler := handler.NewThemeHandler(d.Themes)
	e.GET("/api/themes", themeHandler.Catalog)
	e.GET("/api/themes/:id", themeHandler.Get)
	e.GET("/api/theme", themeHandler.Active)
	e.PUT("/api/theme", themeHandler.Set)

	// --- Portfolio content ---
	portfolioHandler := handler.NewPortfolioHandler(d.Portfolio)
	e.GET("/api/projects", portfolioHandler.ListProjects)
	e.GET("/api/projects/:slug", portfolioHandler.GetProject)
	e.GET("/api/skills", portfolioHandler.ListSkills)
	e.GET("/api/experience", portfolioHandler.ListExperience)

	// --- Session flag ---
	sessionHandler := handler.NewSessionHandler()
	e.GET("/api/session/visited", sessionHandler.GetVisited)
	e.POST("/api/session/visited", sessionHandler.MarkVisited)

	// --- Admin surface ---
	authHandler := handler.NewAuthHandler(d.Auth)
	e.POST("/auth/login", authHandler.Login)

	if d.Limiter != nil {
		adminHandler := handler.NewAdminHandler(d.Limiter)
		admin := e.Group("/admin", middleware.Auth(d.JWTSecret), middleware.RequireRole("admin"))
		admin.GET("/ratelimit", adminHandler.ListRateLimits)
		admin.DELETE("/ratelimit/:id", adminHandler.DropRateLimit)
	}

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
