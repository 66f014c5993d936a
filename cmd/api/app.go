package main

import (
	"net/http"

	"property-lookup/internal/handlers"
	"property-lookup/internal/services"
	"property-lookup/internal/transformers"
	"property-lookup/internal/validators"
	"property-lookup/pkg/config"
	"property-lookup/pkg/logger"
	"property-lookup/pkg/metrics"
	"property-lookup/pkg/redfin"

	"github.com/gin-gonic/gin"
)

// App represents the application structure
type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Redfin          services.ListingProvider
	PropertyHandler *handlers.PropertyHandler
	HealthHandler   *handlers.HealthHandler
	Server          *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	return newApp(cfg, nil)
}

// newApp builds the App; a nil provider means a real Redfin client.
func newApp(cfg *config.Config, provider services.ListingProvider) *App {
	app := &App{Config: cfg, Redfin: provider}

	// Initialize infrastructure
	app.initializeMetrics()
	app.initializeRedfinClient()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// build the shared Redfin client; it is immutable after this point
func (a *App) initializeRedfinClient() {
	if a.Redfin != nil {
		return
	}
	if dir := a.Config.Redfin.FixturesDir; dir != "" {
		logger.GlobalLogger.Printf("Serving Redfin responses from fixtures: dir=%s", dir)
		a.Redfin = redfin.NewFixtureClient(dir)
		return
	}
	a.Redfin = redfin.NewClient(
		a.Config.Redfin.BaseURL,
		redfin.WithUserAgent(a.Config.Redfin.UserAgent),
		redfin.WithTimeout(a.Config.Redfin.Timeout),
	)
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// transformers
	addrTrans := transformers.NewAddressTransformer()
	propTrans := transformers.NewPropertyTransformer(addrTrans)
	urlTrans := transformers.NewListingURLTransformer()

	// validators
	propertyValidator := validators.NewPropertyValidator()

	// services
	propertyService := services.NewPropertyService(a.Redfin, propTrans, urlTrans, propertyValidator)

	// handlers
	a.PropertyHandler = handlers.NewPropertyHandler(propertyService)
	a.HealthHandler = handlers.NewHealthHandler()
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	if a.Config.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}
