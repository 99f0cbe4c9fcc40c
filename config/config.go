package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig
	Slack       SlackConfig
	Webhook     WebhookConfig
	Tracker     TrackerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SlackConfig points at the incoming webhook that receives every message.
type SlackConfig struct {
	WebhookURL string
}

// WebhookConfig controls inbound GitHub deliveries.
type WebhookConfig struct {
	// Secret signs every inbound payload. The service refuses to start
	// without it.
	Secret string
	// Branches worth notifying about. Pushes and runs on other branches are
	// ignored.
	Branches []string
	// DedupTTLMinutes is how long delivery GUIDs are remembered to drop
	// GitHub redeliveries.
	DedupTTLMinutes int
}

// TrackerConfig controls the failing-build window.
type TrackerConfig struct {
	RetentionDays int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Slack.WebhookURL = viper.GetString("slack.webhook_url")
	if slackURL := viper.GetString("slack_webhook_url"); slackURL != "" {
		cfg.Slack.WebhookURL = slackURL
	}

	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if webhookSecret := viper.GetString("github_webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.DedupTTLMinutes = viper.GetInt("webhook.dedup_ttl_minutes")

	// Split branches here since viper might not parse an array seamlessly
	// from env.
	var branches []string
	for _, branch := range strings.Split(viper.GetString("webhook.branches"), ",") {
		branch = strings.TrimSpace(branch)
		if branch != "" {
			branches = append(branches, branch)
		}
	}
	cfg.Webhook.Branches = branches

	cfg.Tracker.RetentionDays = viper.GetInt("tracker.retention_days")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("webhook.branches", "main,master,prod")
	viper.SetDefault("webhook.dedup_ttl_minutes", 10)
	viper.SetDefault("tracker.retention_days", 7)
}
