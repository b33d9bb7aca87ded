package main

import (
	"context"
	"net/http"
	"time"

	"rentmap-backend/internal/middleware"
	"rentmap-backend/pkg/cache"
	"rentmap-backend/pkg/database"
	"rentmap-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupHealthCheck()
	a.setupMetricsRoute()
	a.setupAPIRoutes()
}

// setupMetricsRoute exposes the Prometheus metrics endpoint
func (a *App) setupMetricsRoute() {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupHealthCheck configures health check endpoint
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := database.DB.PingContext(ctx); err != nil {
			logger.GlobalLogger.Errorf("MySQL ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "MySQL unavailable"})
			return
		}

		if _, err := cache.RedisClient.Ping(ctx).Result(); err != nil {
			logger.GlobalLogger.Errorf("Redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	{
		// Public routes
		api.POST("/register", a.UserHandler.Register)
		api.POST("/login", a.UserHandler.Login)
		api.POST("/search", a.SearchHandler.Search)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.Config.JWT.Secret))
		{
			protected.GET("/decisions", a.DecisionHandler.ListDecisions)
			protected.GET("/decisions/decision", a.DecisionHandler.GetDecision)
			protected.PUT("/decisions", a.DecisionHandler.UpsertDecision)
			protected.POST("/export", a.ExportHandler.Export)
		}
	}
}
