package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret         string `env:"JWT_SECRET"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	Contact   ContactConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	Mongo     MongoConfig
}

type ContactConfig struct {
	// ResendAPIKey left empty marks the email provider as unconfigured.
	ResendAPIKey string `env:"RESEND_API_KEY"`
	// Recipient overrides the default contact address when set.
	Recipient string `env:"CONTACT_RECIPIENT"`
}

type RateLimitConfig struct {
	Max    int           `env:"RATE_LIMIT_MAX,    default=5"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW, default=15m"`
}

// RedisConfig is optional; an empty Addr keeps the in-memory limiter and the
// file-based theme store.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// MongoConfig is optional; an empty URI serves content from the built-in
// catalogs.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=portfolio"`
}

// ThemeStateFile is where the active theme selection is persisted when no
// Redis is configured.
const ThemeStateFile = "theme.state"

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
