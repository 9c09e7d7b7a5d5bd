package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"health-tracker/config"
	deliveryHttp "health-tracker/internal/delivery/http"
	"health-tracker/internal/delivery/http/handler"
	"health-tracker/internal/delivery/http/middleware"
	"health-tracker/internal/infrastructure/localstore"
	"health-tracker/internal/service"
	"health-tracker/internal/store"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/jwt"
	"health-tracker/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config  *config.Config
	Storage localstore.KV
	Store   *store.Store
	Server  *http.Server
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

	// Initialize durable storage
	kv, err := newStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	app.Storage = kv
	logrus.Infof("Storage ready (driver: %s)", cfg.Storage.Driver)

	// Initialize the entity store; collections load once at startup
	st := store.New(kv, logrus.StandardLogger())
	st.Load()
	app.Store = st

	// Initialize all layers
	server := initializeServer(cfg, st)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// newStorage opens the configured key-value backend
func newStorage(cfg *config.Config) (localstore.KV, error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		return localstore.NewSQLiteStore(cfg.Storage.Path)
	case "redis":
		return localstore.NewRedisStore(cfg.Redis)
	default:
		return localstore.NewFileStore(cfg.Storage.Path)
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, st *store.Store) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize session registry
	sessions := service.NewSessionService()

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(st, log, jwtService, sessions)
	recordUsecase := usecase.NewHealthRecordUsecase(st, log)
	medicationUsecase := usecase.NewMedicationUsecase(st, log)
	appointmentUsecase := usecase.NewAppointmentUsecase(st, log)
	dashboardUsecase := usecase.NewDashboardUsecase(st, log)
	exportUsecase := usecase.NewExportUsecase(st, log)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	recordHandler := handler.NewRecordHandler(recordUsecase, customValidator)
	medicationHandler := handler.NewMedicationHandler(medicationUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)
	exportHandler := handler.NewExportHandler(exportUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessions)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, recordHandler, medicationHandler, appointmentHandler, dashboardHandler, exportHandler, authMiddleware, corsMiddleware)
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

// Close closes the storage backend when it holds a connection
func (app *App) Close() {
	if closer, ok := app.Storage.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			logrus.Errorf("Failed to close storage: %v", err)
		}
	}
}
