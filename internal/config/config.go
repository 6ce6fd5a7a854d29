package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/osse101/LuckyDraw_Go/internal/database"
	"github.com/osse101/LuckyDraw_Go/internal/repository"
)

// Config holds the application configuration
type Config struct {
	EnvSchemaVersion string `env:"ENV_SCHEMA_VERSION" envDefault:"1.0"`

	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir      string `env:"LOG_DIR" envDefault:"logs"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"lucky-draw"`
	Version     string `env:"VERSION" envDefault:"dev"`

	// Operator access. An empty key leaves the control routes open.
	OperatorAPIKey string   `env:"OPERATOR_API_KEY"`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Drawing
	EventID       string `env:"EVENT_ID" envDefault:"2026"`
	StateRevision int    `env:"STATE_REVISION" envDefault:"1"`
	DrawMode      string `env:"DRAW_MODE" envDefault:"staged"`
	DrawSeed      int64  `env:"DRAW_SEED" envDefault:"0"`
	CatalogPath   string `env:"CATALOG_PATH"`
	RosterPath    string `env:"ROSTER_PATH"`

	RevealDuration time.Duration `env:"REVEAL_DURATION" envDefault:"3s"`
	RevealInterval time.Duration `env:"REVEAL_INTERVAL" envDefault:"60ms"`

	// Storage
	StoreDriver    string        `env:"STORE_DRIVER" envDefault:"file"`
	StoreDir       string        `env:"STORE_DIR" envDefault:"data"`
	SQLitePath     string        `env:"SQLITE_PATH" envDefault:"data/lucky-draw.db"`
	StatusCacheTTL time.Duration `env:"STATUS_CACHE_TTL" envDefault:"30s"`

	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME" envDefault:"luckydraw"`
	DBMaxConns int32  `env:"DB_MAX_CONNS" envDefault:"4"`

	// Events
	EventMaxRetries     int           `env:"EVENT_MAX_RETRIES" envDefault:"3"`
	EventRetryDelay     time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"1s"`
	EventDeadLetterPath string        `env:"EVENT_DEAD_LETTER_PATH" envDefault:"logs/event_deadletter.jsonl"`

	// Announcements
	DiscordWebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	DiscordWebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// Load loads the configuration from .env and the process environment
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextParseEnv, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextInvalid, err)
	}

	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return database.ConnString(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// StorageKey is the key the saved session lives under for this event and revision
func (c *Config) StorageKey() string {
	return repository.StorageKey(c.EventID, c.StateRevision)
}

// DiscordEnabled reports whether winner announcements are configured
func (c *Config) DiscordEnabled() bool {
	return c.DiscordWebhookID != "" && c.DiscordWebhookToken != ""
}

// OperatorAuthEnabled reports whether control routes require the operator key
func (c *Config) OperatorAuthEnabled() bool {
	return c.OperatorAPIKey != ""
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}
