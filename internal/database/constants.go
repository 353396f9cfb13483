package database

import "time"

// Pool settings
const (
	DefaultMinConnections = 2
	HealthCheckPeriod     = 30 * time.Second
	ApplicationName       = "fishingbot"

	// SQLiteBusyTimeoutMS is how long a SQLite writer waits for the lock
	SQLiteBusyTimeoutMS = 5000
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToOpenSQLite      = "failed to open sqlite database"
	ErrMsgFailedToLoadMigrations  = "failed to load migrations"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Applied migration"
	LogMsgMigrationsUpToDate              = "Database schema up to date"
)
