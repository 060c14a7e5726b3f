// Package config manages environment variables.
//
// It reads variables (optionally from a `.env` file), loads them into
// structured Go types, fills defaults for optional blocks and validates
// that required values are present so the app fails fast on bad config.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process environment before
	// any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from every environment variable name.
// BLUEWAVE_SERVER.PORT -> server.port -> Config.Server.Port
const EnvPrefix = "BLUEWAVE_"

// ServiceName tags logs, traces and metrics.
const ServiceName = "bluewave"

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Weather       WeatherConfig        `koanf:"weather" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Audit         AuditConfig          `koanf:"audit" validate:"required"`
	Jobs          JobsConfig           `koanf:"jobs" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// ExposeStoreErrors appends the database error text to 500 messages.
	ExposeStoreErrors bool `koanf:"expose_store_errors"`

	// RateLimit is requests per second per client IP on the API routes.
	// Zero disables the limiter.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details ("host:port").
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig configures the bearer tokens issued at login and checked by
// the dispatcher.
type AuthConfig struct {
	SecretKey string        `koanf:"secret_key" validate:"required,min=16"`
	TokenTTL  time.Duration `koanf:"token_ttl" validate:"min=1m"`
	Issuer    string        `koanf:"issuer" validate:"required"`
}

// WeatherConfig points at the OpenWeatherMap "current weather" endpoint.
// An empty APIKey is allowed; every weather call then fails with 503.
type WeatherConfig struct {
	BaseURL string        `koanf:"base_url" validate:"required,url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout" validate:"min=1s"`
}

// IntegrationConfig holds credentials for third-party services.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
}

// AuditConfig selects how activity entries reach the database.
//
//   - queue: enqueue an asynq task, the worker inserts the row
//   - direct: insert from the request process in the background
type AuditConfig struct {
	Mode string `koanf:"mode" validate:"required,oneof=queue direct"`
}

// JobsConfig controls scheduled maintenance jobs.
type JobsConfig struct {
	// PromoExpirySchedule is a robfig/cron expression, e.g. "@daily".
	// Empty disables the sweep.
	PromoExpirySchedule string `koanf:"promo_expiry_schedule"`
}

// defaults are loaded before the environment so every optional key has a
// value and env vars only need to override.
func defaults() map[string]any {
	m := map[string]any{
		"primary.env":                 "development",
		"server.port":                 "8080",
		"server.read_timeout":         30,
		"server.write_timeout":        30,
		"server.idle_timeout":         60,
		"server.cors_allowed_origins": []string{"*"},
		"server.expose_store_errors":  true,
		"server.rate_limit":           20.0,
		"database.ssl_mode":           "disable",
		"database.max_open_conns":     25,
		"database.max_idle_conns":     25,
		"database.conn_max_lifetime":  300,
		"database.conn_max_idle_time": 300,
		"redis.address":               "localhost:6379",
		"auth.token_ttl":              "24h",
		"auth.issuer":                 ServiceName,
		"weather.base_url":            "https://api.openweathermap.org/data/2.5/weather",
		"weather.timeout":             "10s",
		"integration.email_from":      "Bluewave <noreply@bluewave.id>",
		"audit.mode":                  "queue",
		"jobs.promo_expiry_schedule":  "@daily",
	}
	obs := DefaultObservabilityConfig()
	m["observability.service_name"] = obs.ServiceName
	m["observability.environment"] = obs.Environment
	m["observability.logging.level"] = obs.Logging.Level
	m["observability.logging.format"] = obs.Logging.Format
	m["observability.logging.slow_query_threshold"] = obs.Logging.SlowQueryThreshold.String()
	m["observability.new_relic.app_log_forwarding_enabled"] = obs.NewRelic.AppLogForwardingEnabled
	m["observability.new_relic.distributed_tracing_enabled"] = obs.NewRelic.DistributedTracingEnabled
	m["observability.health_checks.enabled"] = obs.HealthChecks.Enabled
	m["observability.health_checks.timeout"] = obs.HealthChecks.Timeout.String()
	m["observability.health_checks.checks"] = obs.HealthChecks.Checks
	return m
}

// LoadConfig loads configuration from defaults and environment variables,
// validates it and returns the result.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("could not load config defaults: %w", err)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	return fromKoanf(k)
}

func fromKoanf(k *koanf.Koanf) (*Config, error) {
	mainConfig := &Config{}

	if err := k.UnmarshalWithConf("", mainConfig, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary block.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// IsLocal reports whether SQL tracing and other noisy dev output is wanted.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}
