package config

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// Store drivers
const (
	StoreDriverFile     = "file"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// StoreDrivers lists every accepted STORE_DRIVER value
var StoreDrivers = []string{StoreDriverFile, StoreDriverSQLite, StoreDriverPostgres, StoreDriverMemory}

// Draw modes, mirrored from the draw package to keep config free of service imports
const (
	DrawModeStaged = "staged"
	DrawModeSimple = "simple"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Environments
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "production"
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleDBPassword     = "change_this_secure_password"
	ExampleOperatorAPIKey = "change_this_operator_key"
)

// Error context messages
const (
	ErrContextParseEnv = "failed to parse environment"
	ErrContextInvalid  = "invalid configuration"
)
