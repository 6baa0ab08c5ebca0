package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Infrastructure
	Postgres PostgresConfig
	Kafka    KafkaConfig

	// Webhook ingestion
	Webhook WebhookConfig

	// API authentication
	Auth AuthConfig
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

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// KafkaConfig configures the launch queue producer.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// WebhookConfig holds webhook ingestion settings.
type WebhookConfig struct {
	// IPFilterEnabled toggles the origin network filter for POSTs.
	IPFilterEnabled bool
	// TrustForwardedFor makes the filter read the client address from the
	// X-Forwarded-For header (reverse proxy deployments).
	TrustForwardedFor bool
	// AllowedNetworks lists CIDR ranges accepted by the origin filter.
	AllowedNetworks []string
	// RateLimitPerMin caps webhook deliveries per origin per minute.
	RateLimitPerMin int
	// PublicLandingPage allows unauthenticated access to the landing listing.
	PublicLandingPage bool
}

// AuthConfig holds the static API token table. Real user authentication
// lives in front of this service; tokens only identify integrators.
type AuthConfig struct {
	// Tokens maps bearer token -> username.
	Tokens map[string]string
	// LoginURL is where unauthenticated landing page visitors are sent.
	LoginURL string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/webhook-launcher/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/webhook-launcher/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")

	// Kafka
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// Webhook ingestion
	cfg.Webhook.IPFilterEnabled = viper.GetBool("webhook.ip_filter_enabled")
	cfg.Webhook.TrustForwardedFor = viper.GetBool("webhook.trust_forwarded_for")
	cfg.Webhook.AllowedNetworks = viper.GetStringSlice("webhook.allowed_networks")
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.PublicLandingPage = viper.GetBool("webhook.public_landing_page")

	// Auth
	cfg.Auth.Tokens = viper.GetStringMapString("auth.tokens")
	cfg.Auth.LoginURL = viper.GetString("auth.login_url")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "webhook")
	viper.SetDefault("postgres.database", "webhook_launcher")
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "launch_queue")
	viper.SetDefault("webhook.rate_limit_per_min", 120)
	viper.SetDefault("auth.login_url", "/login")
}
