package main

import (
	"time"

	"property-lookup/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// configure all middleware for the router
func (a *App) setupMiddleware() {
	a.Router.Use(middleware.RequestID())
	a.Router.Use(middleware.LoggingMiddleware())
	a.Router.Use(middleware.MetricsMiddleware())
	a.Router.Use(middleware.SecureHeaders(a.Config.IsProduction()))
	a.Router.Use(a.setupCORS())
	a.Router.Use(middleware.ErrorHandler())
	a.Router.Use(middleware.Recovery())
}

// configure CORS middleware
func (a *App) setupCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	if origins := a.Config.CORS.AllowedOrigins; len(origins) > 0 {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Requested-With", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	corsConfig.MaxAge = 12 * time.Hour

	return cors.New(corsConfig)
}
