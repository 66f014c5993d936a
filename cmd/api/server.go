package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"property-lookup/pkg/logger"
)

// create the HTTP server
func (a *App) InitializeServer() {
	a.Server = &http.Server{
		Addr:    a.Config.Addr(),
		Handler: a.Router,
	}
}

// start the HTTP server with graceful shutdown
func (a *App) StartServer() {
	go func() {
		addr := a.Config.Addr()
		logger.GlobalLogger.Printf("Starting server on %s (debug=%t)", addr, a.Config.Server.Debug)
		if !a.Config.IsProduction() {
			logger.GlobalLogger.Printf("Swagger UI available at: http://%s/swagger/index.html", addr)
		}

		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.GlobalLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	a.shutdownServer()
}

// shutdown of the server
func (a *App) shutdownServer() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.GlobalLogger.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(ctx); err != nil {
		logger.GlobalLogger.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.GlobalLogger.Println("Server exited")
}
