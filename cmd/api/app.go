package main

import (
	"net/http"
	"os"

	"rentmap-backend/internal/handlers"
	"rentmap-backend/internal/middleware"
	"rentmap-backend/internal/repositories"
	"rentmap-backend/internal/services"
	"rentmap-backend/internal/translator"
	"rentmap-backend/internal/validators"
	"rentmap-backend/pkg/cache"
	"rentmap-backend/pkg/config"
	"rentmap-backend/pkg/database"
	"rentmap-backend/pkg/lbc"
	"rentmap-backend/pkg/logger"
	"rentmap-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config          *config.Config
	Router          *gin.Engine
	SearchHandler   *handlers.SearchHandler
	DecisionHandler *handlers.DecisionHandler
	ExportHandler   *handlers.ExportHandler
	UserHandler     *handlers.UserHandler
	RateLimiter     *middleware.RateLimiter
	Server          *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the database connection
func (a *App) initializeDatabase() {
	if err := database.InitDB(a.Config.Database.DSN); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
}

// initialize the Redis cache
func (a *App) initializeCache() {
	if err := cache.InitRedis(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// upstream client
	client := lbc.NewClient(a.Config.Upstream.BaseURL)

	// repositories
	decisionRepo := repositories.NewDecisionRepository()
	decisionCache := repositories.NewDecisionCache()
	userRepo := repositories.NewUserRepository()

	// translators
	queryTrans := translator.NewQueryTranslator()
	normalizer := translator.NewListingNormalizer()

	// validators
	decisionValidator := validators.NewDecisionValidator()
	userValidator := validators.NewUserValidator()

	// services
	searchService := services.NewSearchService(client, queryTrans, normalizer)
	decisionService := services.NewDecisionService(decisionRepo, decisionCache, decisionValidator)
	exportService := services.NewExportService(decisionService)
	userService := services.NewUserService(userRepo, userValidator, a.Config.JWT.Secret)

	// handlers
	a.SearchHandler = handlers.NewSearchHandler(searchService)
	a.DecisionHandler = handlers.NewDecisionHandler(decisionService)
	a.ExportHandler = handlers.NewExportHandler(exportService)
	a.UserHandler = handlers.NewUserHandler(userService)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	database.CloseDB()
	cache.CloseRedis()
}
