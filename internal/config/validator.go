package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate checks the configuration for values the service cannot run with
func (c *Config) Validate() error {
	if c.EnvSchemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, c.EnvSchemaVersion)
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}

	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", LogFormatText, LogFormatJSON, c.LogFormat)
	}

	if strings.TrimSpace(c.EventID) == "" {
		return fmt.Errorf("EVENT_ID must not be empty")
	}

	if c.StateRevision < 1 {
		return fmt.Errorf("STATE_REVISION must be at least 1, got %d", c.StateRevision)
	}

	if c.DrawMode != DrawModeStaged && c.DrawMode != DrawModeSimple {
		return fmt.Errorf("DRAW_MODE must be %q or %q, got %q", DrawModeStaged, DrawModeSimple, c.DrawMode)
	}

	if c.RevealDuration <= 0 {
		return fmt.Errorf("REVEAL_DURATION must be positive, got %s", c.RevealDuration)
	}
	if c.RevealInterval <= 0 {
		return fmt.Errorf("REVEAL_INTERVAL must be positive, got %s", c.RevealInterval)
	}
	if c.RevealInterval >= c.RevealDuration {
		return fmt.Errorf("REVEAL_INTERVAL (%s) must be shorter than REVEAL_DURATION (%s)", c.RevealInterval, c.RevealDuration)
	}

	if c.StatusCacheTTL < 0 {
		return fmt.Errorf("STATUS_CACHE_TTL must not be negative, got %s", c.StatusCacheTTL)
	}

	if c.EventMaxRetries < 0 {
		return fmt.Errorf("EVENT_MAX_RETRIES must not be negative, got %d", c.EventMaxRetries)
	}

	if !slices.Contains(StoreDrivers, c.StoreDriver) {
		return fmt.Errorf("STORE_DRIVER must be one of %s, got %q", strings.Join(StoreDrivers, ", "), c.StoreDriver)
	}

	switch c.StoreDriver {
	case StoreDriverFile:
		if c.StoreDir == "" {
			return fmt.Errorf("STORE_DIR must be set for the %s driver", StoreDriverFile)
		}
	case StoreDriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH must be set for the %s driver", StoreDriverSQLite)
		}
	case StoreDriverPostgres:
		var missing []string
		for name, value := range map[string]string{
			"DB_USER":     c.DBUser,
			"DB_PASSWORD": c.DBPassword,
			"DB_HOST":     c.DBHost,
			"DB_PORT":     c.DBPort,
			"DB_NAME":     c.DBName,
		} {
			if value == "" {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			slices.Sort(missing)
			return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
		}
		if c.DBMaxConns < 1 {
			return fmt.Errorf("DB_MAX_CONNS must be at least 1, got %d", c.DBMaxConns)
		}
	}

	if (c.DiscordWebhookID == "") != (c.DiscordWebhookToken == "") {
		return fmt.Errorf("DISCORD_WEBHOOK_ID and DISCORD_WEBHOOK_TOKEN must be set together")
	}

	return nil
}

// ValidateWithWarnings validates and returns warnings for settings that work
// but are probably not what an operator wants
func (c *Config) ValidateWithWarnings() ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var warnings []string

	if c.StoreDriver == StoreDriverPostgres && c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if c.IsProduction() && c.DrawSeed != 0 {
		warnings = append(warnings, "DRAW_SEED is fixed in production - the draw order is reproducible by anyone who knows the seed")
	}

	if c.IsProduction() && !c.OperatorAuthEnabled() {
		warnings = append(warnings, "OPERATOR_API_KEY is not set in production - anyone who can reach the server can run the draw")
	}

	if c.OperatorAPIKey == ExampleOperatorAPIKey {
		warnings = append(warnings, "OPERATOR_API_KEY appears to be using the example value - please generate a real key")
	}

	if c.IsProduction() && c.StoreDriver == StoreDriverMemory {
		warnings = append(warnings, "STORE_DRIVER=memory in production - a crash loses the session and it cannot be resumed")
	}

	return warnings, nil
}
