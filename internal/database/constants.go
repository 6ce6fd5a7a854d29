package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 1
)

// Session cache defaults
const (
	// CacheSchemaVersion invalidates cached sessions when the cached layout changes
	CacheSchemaVersion = "1.0"

	// DefaultCacheTTL bounds how long a loaded session is served from memory
	DefaultCacheTTL = 30 * time.Second

	// DefaultCacheSize is enough for one key per event revision
	DefaultCacheSize = 8
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgCacheHit                        = "Saved session served from cache"
)
