package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/ficmart-checkout/internal/application/services"
	"github.com/DanielPopoola/ficmart-checkout/internal/config"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/DanielPopoola/ficmart-checkout/internal/infrastructure/gateway"
	"github.com/DanielPopoola/ficmart-checkout/internal/infrastructure/mailer"
	"github.com/DanielPopoola/ficmart-checkout/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest/openapi"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest/router"
	"github.com/DanielPopoola/ficmart-checkout/internal/observability"
	"github.com/DanielPopoola/ficmart-checkout/internal/templates"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("starting checkout service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(registry)

	renderer, err := templates.NewRenderer()
	if err != nil {
		logger.Error("failed to load email templates", "error", err)
		os.Exit(1)
	}

	apiDoc, err := openapi.Load(ctx)
	if err != nil {
		logger.Error("failed to load api description", "error", err)
		os.Exit(1)
	}
	apiDocHandler, err := openapi.Handler(apiDoc)
	if err != nil {
		logger.Error("failed to encode api description", "error", err)
		os.Exit(1)
	}

	settingsRepo := postgres.NewSettingsRepository(db, cfg.Settings.Table)
	gatewayClient := gateway.NewGatewayClient(cfg.Gateway)
	mailClient := mailer.NewBrevoClient(cfg.Email, logger)

	credentialKeys := domain.CredentialKeys{
		KeyID:     cfg.Settings.KeyIDKey,
		KeySecret: cfg.Settings.KeySecretKey,
	}

	orderService := services.NewPaymentOrderService(settingsRepo, gatewayClient, credentialKeys, metrics, logger)
	emailService := services.NewOrderEmailService(renderer, mailClient, metrics, logger)

	h := handlers.NewHandlers(orderService, emailService, cfg.Gateway.DefaultCurrency, logger)

	handler := router.New(router.Config{
		Handlers:       h,
		Metrics:        metrics,
		Document:       apiDoc,
		OpenAPI:        apiDocHandler,
		Health:         db,
		RequestTimeout: cfg.Server.RequestTimeout,
		Logger:         logger,
	})

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
