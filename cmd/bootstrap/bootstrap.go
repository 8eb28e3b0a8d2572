package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-clinic-directory/config"
	deliveryHttp "go-clinic-directory/internal/delivery/http"
	"go-clinic-directory/internal/delivery/http/handler"
	"go-clinic-directory/internal/delivery/http/middleware"
	domainRepo "go-clinic-directory/internal/domain/repository"
	"go-clinic-directory/internal/repository"
	"go-clinic-directory/internal/service"
	"go-clinic-directory/internal/usecase"
	"go-clinic-directory/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config         *config.Config
	AdviceProvider *service.GeminiAdviceProvider
	Server         *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Load and validate the catalog seed
	seed, err := repository.LoadCatalogSeed(cfg.Catalog.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	catalogRepo, err := repository.NewCatalogRepository(seed)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog seed: %w", err)
	}
	logrus.Infof("Catalog loaded: %d doctors, %d hospitals", len(catalogRepo.Doctors()), len(catalogRepo.Hospitals()))

	// Initialize the advice provider. A missing API key is not fatal: the
	// assistant runs in degraded mode and answers with a fixed message.
	provider, err := service.NewGeminiAdviceProvider(context.Background(), cfg.Gemini)
	if err != nil {
		if !errors.Is(err, service.ErrAPIKeyMissing) {
			return nil, fmt.Errorf("failed to initialize advice provider: %w", err)
		}
		logrus.Warn("GEMINI_API_KEY not set, health assistant running in degraded mode")
	} else {
		app.AdviceProvider = provider
		logrus.Infof("Advice provider initialized: model=%s", cfg.Gemini.Model)
	}

	// Initialize all layers
	server := initializeServer(cfg, catalogRepo, app.AdviceProvider)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, catalogRepo domainRepo.CatalogRepository, provider *service.GeminiAdviceProvider) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// The provider is passed through an interface so the assistant can
	// distinguish "unconfigured" (nil) from a failing provider.
	var adviceProvider service.AdviceProvider
	if provider != nil {
		adviceProvider = provider
	}

	// Initialize usecases
	catalogUsecase := usecase.NewCatalogUsecase(catalogRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, catalogRepo)
	assistantUsecase := usecase.NewAssistantUsecase(log, adviceProvider, cfg.Assistant)

	// Initialize handlers
	catalogHandler := handler.NewCatalogHandler(catalogUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	assistantHandler := handler.NewAssistantHandler(assistantUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(catalogHandler, appointmentHandler, assistantHandler, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all external connections
func (app *App) Close() {
	if app.AdviceProvider != nil {
		if err := app.AdviceProvider.Close(); err != nil {
			logrus.Warnf("Failed to close advice provider: %v", err)
		}
	}
}
