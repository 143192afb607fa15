package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Account removal policies.
const (
	DeleteModeSoft = "soft"
	DeleteModeHard = "hard"
)

// Event backends.
const (
	EventsNone  = "none"
	EventsRedis = "redis"
	EventsKafka = "kafka"
)

// Config holds application configuration.
type Config struct {
	Port            string
	IsProduction    bool
	ShutdownTimeout time.Duration

	// Storage. An empty DatabaseURL selects the in-memory store.
	DatabaseURL    string
	EnableDBCheck  bool
	MigrationsPath string

	DefaultCurrency   string
	AccountDeleteMode string

	// Collaborators
	CustomerServiceURL    string
	CreditServiceURL      string
	TransactionServiceURL string
	ClientTimeout         time.Duration
	ClientMaxRetries      int
	ClientRetryBackoff    time.Duration
	OpeningTxTimeout      time.Duration

	// Outbound auth to collaborators
	ClientAuthMode              string
	ClientOAuthTokenURL         string
	ClientOAuthClientID         string
	ClientOAuthClientSecret     string
	ClientOAuthScopes           []string
	ClientGoogleCredentialsFile string

	// Inbound auth
	AuthEnabled bool
	JWTSecret   string

	// Redis is optional; when RedisAddr is set it backs the account cache, rate limiting and stream events.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	EventsBackend string
	EventsStream  string
	KafkaBrokers  []string
	KafkaTopic    string

	RateLimit          string
	CORSAllowedOrigins []string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),

		DatabaseURL:    v.GetString("PGSQL_URL"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),

		DefaultCurrency:   strings.ToUpper(v.GetString("DEFAULT_CURRENCY")),
		AccountDeleteMode: strings.ToLower(v.GetString("ACCOUNT_DELETE_MODE")),

		CustomerServiceURL:    v.GetString("CUSTOMER_SERVICE_URL"),
		CreditServiceURL:      v.GetString("CREDIT_SERVICE_URL"),
		TransactionServiceURL: v.GetString("TRANSACTION_SERVICE_URL"),
		ClientTimeout:         v.GetDuration("CLIENT_TIMEOUT"),
		ClientMaxRetries:      v.GetInt("CLIENT_MAX_RETRIES"),
		ClientRetryBackoff:    v.GetDuration("CLIENT_RETRY_BACKOFF"),
		OpeningTxTimeout:      v.GetDuration("OPENING_TX_TIMEOUT"),

		ClientAuthMode:              strings.ToLower(v.GetString("CLIENT_AUTH_MODE")),
		ClientOAuthTokenURL:         v.GetString("CLIENT_OAUTH_TOKEN_URL"),
		ClientOAuthClientID:         v.GetString("CLIENT_OAUTH_CLIENT_ID"),
		ClientOAuthClientSecret:     v.GetString("CLIENT_OAUTH_CLIENT_SECRET"),
		ClientOAuthScopes:           splitList(v.GetString("CLIENT_OAUTH_SCOPES")),
		ClientGoogleCredentialsFile: v.GetString("CLIENT_GOOGLE_CREDENTIALS_FILE"),

		AuthEnabled: v.GetBool("AUTH_ENABLED"),
		JWTSecret:   v.GetString("JWT_SECRET"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		CacheTTL:      v.GetDuration("CACHE_TTL"),

		EventsBackend: strings.ToLower(v.GetString("EVENTS_BACKEND")),
		EventsStream:  v.GetString("EVENTS_STREAM"),
		KafkaBrokers:  splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:    v.GetString("KAFKA_TOPIC"),

		RateLimit:          v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),

		PosthogAPIKey:   v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint: v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Accounts are kept in memory.")
	}
	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set when AUTH_ENABLED is true")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")

	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")

	v.SetDefault("DEFAULT_CURRENCY", "PEN")
	v.SetDefault("ACCOUNT_DELETE_MODE", DeleteModeSoft)

	v.SetDefault("CUSTOMER_SERVICE_URL", "http://localhost:8081")
	v.SetDefault("CREDIT_SERVICE_URL", "http://localhost:8082")
	v.SetDefault("TRANSACTION_SERVICE_URL", "http://localhost:8083")
	v.SetDefault("CLIENT_TIMEOUT", "5s")
	v.SetDefault("CLIENT_MAX_RETRIES", 2)
	v.SetDefault("CLIENT_RETRY_BACKOFF", "200ms")
	v.SetDefault("OPENING_TX_TIMEOUT", "10s")

	v.SetDefault("CLIENT_AUTH_MODE", "none")

	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("JWT_SECRET", "")

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "5m")

	v.SetDefault("EVENTS_BACKEND", EventsNone)
	v.SetDefault("EVENTS_STREAM", "account-events")
	v.SetDefault("KAFKA_TOPIC", "account-events")

	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
}

// Validate checks the enumerated settings and their dependencies.
func (c *Config) Validate() error {
	switch c.AccountDeleteMode {
	case DeleteModeSoft, DeleteModeHard:
	default:
		return fmt.Errorf("ACCOUNT_DELETE_MODE must be %q or %q, got %q", DeleteModeSoft, DeleteModeHard, c.AccountDeleteMode)
	}

	switch c.EventsBackend {
	case EventsNone:
	case EventsRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("EVENTS_BACKEND=redis requires REDIS_ADDR")
		}
	case EventsKafka:
		if len(c.KafkaBrokers) == 0 {
			return fmt.Errorf("EVENTS_BACKEND=kafka requires KAFKA_BROKERS")
		}
	default:
		return fmt.Errorf("unknown EVENTS_BACKEND %q", c.EventsBackend)
	}

	switch c.ClientAuthMode {
	case "none", "google":
	case "oauth2":
		if c.ClientOAuthTokenURL == "" || c.ClientOAuthClientID == "" {
			return fmt.Errorf("CLIENT_AUTH_MODE=oauth2 requires CLIENT_OAUTH_TOKEN_URL and CLIENT_OAUTH_CLIENT_ID")
		}
	default:
		return fmt.Errorf("unknown CLIENT_AUTH_MODE %q", c.ClientAuthMode)
	}

	if c.DefaultCurrency == "" {
		return fmt.Errorf("DEFAULT_CURRENCY must not be empty")
	}
	if c.ClientMaxRetries < 0 {
		return fmt.Errorf("CLIENT_MAX_RETRIES must not be negative")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
