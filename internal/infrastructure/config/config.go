package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the complete application configuration.
type Config struct {
	Environment   string
	PublicBaseURL string
	Server        ServerConfig
	DynamoDB      DynamoDBConfig
	Auth          AuthConfig
	RateLimit     RateLimitConfig
	MercadoPago   MercadoPagoConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DynamoDBConfig holds table names and the optional local endpoint.
type DynamoDBConfig struct {
	Region             string
	Endpoint           string
	AccessKeyID        string
	SecretAccessKey    string
	TrackRequestsTable string
	PaymentsTable      string
}

// AuthConfig configures session verification and the operator allowlist.
type AuthConfig struct {
	SessionSecret  string
	OperatorEmails []string
}

// RateLimitConfig bounds lookups on the public track view link.
type RateLimitConfig struct {
	TrackViewRPS   float64
	TrackViewBurst int
}

type MercadoPagoConfig struct {
	AccessToken string
	Mock        bool
}

type ObservabilityConfig struct {
	LogLevel       string
	LogFormat      string // json or console
	MetricsEnabled bool
}

// New loads configuration from the environment, reading .env when present.
func New() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		Environment:   getEnv("ENVIRONMENT", "development"),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		Server: ServerConfig{
			Port:         getEnvAsInt("PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		DynamoDB: DynamoDBConfig{
			Region:             getEnv("AWS_REGION", "us-east-1"),
			Endpoint:           getEnv("DYNAMODB_ENDPOINT", ""),
			AccessKeyID:        getEnv("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:    getEnv("AWS_SECRET_ACCESS_KEY", "local"),
			TrackRequestsTable: getEnv("TRACK_REQUESTS_TABLE", "track_requests"),
			PaymentsTable:      getEnv("PAYMENTS_TABLE", "payments"),
		},
		Auth: AuthConfig{
			SessionSecret:  getEnv("SESSION_JWT_SECRET", ""),
			OperatorEmails: getEnvAsList("OPERATOR_EMAILS"),
		},
		RateLimit: RateLimitConfig{
			TrackViewRPS:   getEnvAsFloat("TRACK_VIEW_RPS", 2),
			TrackViewBurst: getEnvAsInt("TRACK_VIEW_BURST", 10),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken: getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
			Mock:        getEnvAsBool("PAYMENT_GATEWAY_MOCK", false),
		},
		Observability: ObservabilityConfig{
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			LogFormat:      getEnv("LOG_FORMAT", "json"),
			MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.DynamoDB.TrackRequestsTable == "" || c.DynamoDB.PaymentsTable == "" {
		return fmt.Errorf("dynamodb table names are required")
	}
	if c.IsProduction() && c.Auth.SessionSecret == "" {
		return fmt.Errorf("SESSION_JWT_SECRET is required in production")
	}
	if c.RateLimit.TrackViewRPS <= 0 || c.RateLimit.TrackViewBurst <= 0 {
		return fmt.Errorf("track view rate limit must be positive")
	}
	switch c.Observability.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("unsupported log format %q", c.Observability.LogFormat)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

// Address returns the HTTP listen address.
func (c *ServerConfig) Address() string {
	return ":" + strconv.Itoa(c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool also accepts the yes/on/mock spellings used by older deploys.
func getEnvAsBool(key string, defaultValue bool) bool {
	switch strings.ToLower(getEnv(key, "")) {
	case "":
		return defaultValue
	case "1", "true", "yes", "on", "mock":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
