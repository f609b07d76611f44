package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/greenbites/greenbites-backend/api/routes"
	"github.com/greenbites/greenbites-backend/internal/auth"
	"github.com/greenbites/greenbites-backend/internal/donations"
	"github.com/greenbites/greenbites-backend/internal/messages"
	"github.com/greenbites/greenbites-backend/internal/notifications"
	"github.com/greenbites/greenbites-backend/internal/requests"
	"github.com/greenbites/greenbites-backend/internal/seed"
	"github.com/greenbites/greenbites-backend/internal/users"
	"github.com/greenbites/greenbites-backend/pkg/auth/session"
	"github.com/greenbites/greenbites-backend/pkg/config"
	"github.com/greenbites/greenbites-backend/pkg/db"
	"github.com/greenbites/greenbites-backend/pkg/logger"
	"github.com/greenbites/greenbites-backend/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := db.MaybeAutoMigrate(context.Background(), cfg.DB, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to migrate schema", err)
		os.Exit(1)
	}

	userRepo := users.NewRepository(dbClient.DB())

	if err := auth.EnsureDemoAccounts(context.Background(), userRepo, cfg.Demo, cfg.Password); err != nil {
		logg.Error(context.Background(), "failed to bootstrap demo accounts", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		LoginConfig:    cfg.Login,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	seeder := seed.NewSeeder(dbClient.DB())

	donationsService, err := donations.NewService(donations.ServiceParams{
		Repo:   donations.NewRepository(dbClient.DB()),
		Seeder: seeder,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create donations service", err)
		os.Exit(1)
	}

	requestsService, err := requests.NewService(requests.ServiceParams{
		Repo:   requests.NewRepository(dbClient.DB()),
		Seeder: seeder,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create requests service", err)
		os.Exit(1)
	}

	notificationsService, err := notifications.NewService(notifications.ServiceParams{
		Repo:   notifications.NewRepository(dbClient.DB()),
		Seeder: seeder,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create notifications service", err)
		os.Exit(1)
	}

	messagesService, err := messages.NewService(messages.ServiceParams{
		Repo:   messages.NewRepository(dbClient.DB()),
		Seeder: seeder,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create messages service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:               cfg,
			Logger:               logg,
			DB:                   dbClient,
			SessionManager:       sessionManager,
			HTTPMetrics:          httpMetrics,
			Registry:             registry,
			AuthService:          authService,
			DonationsService:     donationsService,
			RequestsService:      requestsService,
			NotificationsService: notificationsService,
			MessagesService:      messagesService,
		}),
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(timeoutCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
