package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/archanap13u/track-back/clients"
	slackclient "github.com/archanap13u/track-back/clients/slack"
	"github.com/archanap13u/track-back/config"
	"github.com/archanap13u/track-back/core/log"
	"github.com/archanap13u/track-back/db"
	"github.com/archanap13u/track-back/handlers"
	"github.com/archanap13u/track-back/middleware"
	"github.com/archanap13u/track-back/services/agents"
	"github.com/archanap13u/track-back/services/analytics"
	"github.com/archanap13u/track-back/services/auth"
	"github.com/archanap13u/track-back/services/employees"
	"github.com/archanap13u/track-back/services/txmanager"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := log.New(cfg.Environment)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	var alertClient clients.AlertClient
	if cfg.AlertConfig.IsConfigured() {
		alertClient = slackclient.NewSlackWebhookClient(cfg.AlertConfig.WebhookURL)
	} else {
		logger.Info("📋 Error alerts disabled, no webhook configured")
	}
	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.AlertConfig{
		Environment: cfg.Environment,
		AppName:     "track-back",
		LogsURL:     cfg.AlertConfig.ServerLogsURL,
	}, alertClient)

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	employeesRepo := db.NewPostgresEmployeesRepository(dbConn, cfg.DatabaseSchema)
	sessionsRepo := db.NewPostgresWorkSessionsRepository(dbConn, cfg.DatabaseSchema)
	activityRepo := db.NewPostgresActivityLogsRepository(dbConn, cfg.DatabaseSchema)
	adminsRepo := db.NewPostgresAdminsRepository(dbConn, cfg.DatabaseSchema)

	txManager := txmanager.NewTransactionManager(dbConn)

	authService := auth.NewAuthService(adminsRepo, cfg.JWTSecret)
	agentsService := agents.NewAgentsService(employeesRepo, sessionsRepo, activityRepo, txManager, cfg.Location)
	employeesService := employees.NewEmployeesService(employeesRepo, sessionsRepo, activityRepo, cfg.Location)
	analyticsService := analytics.NewAnalyticsService(employeesRepo, sessionsRepo, activityRepo, cfg.Location)

	authMiddleware := middleware.NewAdminAuthMiddleware(authService)
	authHTTPHandler := handlers.NewAuthHTTPHandler(authService)
	agentHTTPHandler := handlers.NewAgentHTTPHandler(agentsService)
	dashboardHandler := handlers.NewDashboardAPIHandler(employeesService, analyticsService)
	dashboardHTTPHandler := handlers.NewDashboardHTTPHandler(dashboardHandler)

	router := mux.NewRouter()

	authHTTPHandler.SetupEndpoints(router)
	agentHTTPHandler.SetupEndpoints(router)
	dashboardHTTPHandler.SetupEndpoints(router, authMiddleware)
	router.HandleFunc("/health", handlers.HandleHealth).Methods("GET")

	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		// credentials cannot be combined with a wildcard origin
		AllowCredentials: !containsWildcard(allowedOrigins),
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           middleware.RequestLogger(logger)(alertMiddleware.HTTPMiddleware(c.Handler(router))),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(logger, server)
}

func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func handleGracefulShutdown(logger *zap.Logger, server *http.Server) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("✅ Listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
		logger.Info("🛑 Shutdown signal received, cleaning up...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("❌ Server shutdown error", zap.Error(err))
		return err
	}

	logger.Info("✅ Server stopped gracefully")
	return nil
}
