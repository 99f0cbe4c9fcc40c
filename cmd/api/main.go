package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github-slack-bridge/config"
	_ "github-slack-bridge/docs" // Swagger docs
	"github-slack-bridge/internal/httpserver"
	"github-slack-bridge/internal/notify"
	"github-slack-bridge/internal/tracker"
	"github-slack-bridge/internal/webhook"
	"github-slack-bridge/pkg/log"
	"github-slack-bridge/pkg/slack"
)

// @title       GitHub Slack Bridge API
// @description Relays GitHub push, pull_request and workflow_run webhooks to Slack and tracks failing builds.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration (.env is optional, real env vars win)
	_ = godotenv.Load()

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting GitHub Slack Bridge...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// Fail closed: without a secret no inbound payload can be authenticated,
	// and without a Slack URL nothing can be delivered.
	if cfg.Webhook.Secret == "" {
		logger.Error(ctx, "GITHUB_WEBHOOK_SECRET is not set, refusing to start")
		return
	}
	if cfg.Slack.WebhookURL == "" {
		logger.Error(ctx, "SLACK_WEBHOOK_URL is not set, refusing to start")
		return
	}

	// 3. Core: tracker, Slack client, webhook use case
	buildTracker := tracker.New(time.Duration(cfg.Tracker.RetentionDays) * 24 * time.Hour)
	slackClient := slack.NewClient(cfg.Slack.WebhookURL)

	uc := notify.New(logger, notify.Config{
		Secret:   cfg.Webhook.Secret,
		Branches: cfg.Webhook.Branches,
	}, buildTracker, slackClient)

	webhookHandler := webhook.NewHandler(logger, uc,
		time.Duration(cfg.Webhook.DedupTTLMinutes)*time.Minute)

	// 4. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		WebhookHandler: webhookHandler,
		StatusProvider: uc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
