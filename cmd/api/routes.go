package main

import (
	"property-lookup/internal/middleware"

	_ "property-lookup/docs"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupStaticRoutes()
	a.setupHealthCheck()
	a.setupAPIRoutes()
	a.Router.NoRoute(middleware.NotFound())
}

// setupStaticRoutes configures documentation and metrics
func (a *App) setupStaticRoutes() {
	// Serve Swagger UI outside production
	if !a.Config.IsProduction() {
		a.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Expose Prometheus metrics endpoint
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupHealthCheck configures health check endpoint
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", a.HealthHandler.Health)
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	{
		api.POST("/property", a.PropertyHandler.LookupProperty)
	}
}
