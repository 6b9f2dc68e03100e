package main

import (
	"context"
	"fmt"
	"time"

	"personal-agenda/config"
	_ "personal-agenda/docs" // Swagger docs
	extractionUC "personal-agenda/internal/extraction/usecase"
	"personal-agenda/internal/httpserver"
	taskRepo "personal-agenda/internal/task/repository/postgre"
	taskUC "personal-agenda/internal/task/usecase"
	userRepo "personal-agenda/internal/user/repository/postgre"
	userUC "personal-agenda/internal/user/usecase"
	"personal-agenda/internal/webhook"
	"personal-agenda/migrations"
	"personal-agenda/pkg/llmprovider"
	"personal-agenda/pkg/log"
	"personal-agenda/pkg/postgre"
	"personal-agenda/pkg/scope"
	"personal-agenda/pkg/whatsapp"
)

// @title       Personal Agenda API
// @description Task scheduling backend with natural-language intake over WhatsApp.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	logger.Info(ctx, "Starting Personal Agenda...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := postgre.Connect(ctx, postgre.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		Database:        cfg.Postgres.Database,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		return
	}
	defer db.Close()

	if err := postgre.Migrate(db, migrations.FS); err != nil {
		logger.Error(ctx, "Failed to run migrations: ", err)
		return
	}
	logger.Info(ctx, "Database migrations applied")

	// 4. JWT manager
	jwtManager, err := scope.New(scope.Config{
		Secret:   cfg.Auth.JWTSecret,
		Issuer:   cfg.Auth.Issuer,
		TokenTTL: cfg.Auth.TokenTTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// 5. WhatsApp intake (optional, requires LLM + WhatsApp credentials)
	var webhookHandler *webhook.Handler

	if cfg.Webhook.Enabled && cfg.WhatsApp.Token != "" {
		logger.Info(ctx, "Initializing WhatsApp intake...")

		providers, pErr := llmprovider.InitializeProviders(&cfg.LLM)
		if pErr != nil {
			logger.Error(ctx, "Failed to initialize LLM providers: ", pErr)
			return
		}
		llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      mustDuration(cfg.LLM.RetryDelay, time.Second),
			MaxTotalTimeout: mustDuration(cfg.LLM.MaxTotalTimeout, time.Minute),
		}, logger)

		waClient := whatsapp.NewClient(cfg.WhatsApp.Token, cfg.WhatsApp.PhoneNumberID)

		loc, tzErr := time.LoadLocation(cfg.Timezone)
		if tzErr != nil {
			logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, tzErr)
			loc = time.UTC
		}

		usrUC := userUC.New(userRepo.New(db, logger), logger)
		tskUC := taskUC.New(taskRepo.New(db, logger), logger)
		extUC := extractionUC.New(llmManager, logger)

		webhookHandler = webhook.NewHandler(usrUC, tskUC, extUC, waClient, webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			VerifyToken:     cfg.WhatsApp.VerifyToken,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}, loc, logger)

		logger.Info(ctx, "WhatsApp intake initialized")
	} else {
		logger.Warn(ctx, "WhatsApp intake skipped: webhook disabled or WHATSAPP_TOKEN missing")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		PostgresDB:     db,
		JWTManager:     jwtManager,
		WebhookHandler: webhookHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run, blocks until SIGINT/SIGTERM
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// mustDuration parses a duration string, falling back when empty or invalid.
// Config validation already rejects malformed values at load time.
func mustDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
