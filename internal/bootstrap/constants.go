package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0o755

	// LogFilePermission is the permission for session log files
	LogFilePermission = 0o644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat sorts lexically in chronological order
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is how many older session logs survive startup
	LogFileRetentionCount = 9

	// ServiceName tags every log line of the core service
	ServiceName = "fishingbot"
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingFishingBot  = "Starting FishingBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgSeededRoller        = "Sign-in rewards use a fixed RNG seed"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Startup
// =============================================================================

const (
	LogMsgDatabaseReady          = "Database ready"
	LogMsgGameConfigLoaded       = "Game config loaded"
	LogMsgSyncingItems           = "Syncing items from JSON config..."
	LogMsgItemsSynced            = "Items synced successfully"
	LogMsgItemsUnchanged         = "Item catalog unchanged, nothing written"
	LogMsgEventSystemInitialized = "Event system initialized"
	LogMsgServerListening        = "HTTP server listening"

	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	ErrMsgFailedOpenDatabase  = "failed to open database"
	ErrMsgFailedMigrate       = "failed to migrate database"
	ErrMsgFailedLoadGame      = "failed to load game config"
	ErrMsgFailedLoadItems     = "failed to load items config"
	ErrMsgInvalidItems        = "invalid items config"
	ErrMsgFailedSyncItems     = "failed to sync items to database"
	ErrMsgUnsupportedDriver   = "unsupported database driver"
)

// =============================================================================
// Shutdown
// =============================================================================

const (
	// ShutdownTimeout bounds in-flight requests after a stop signal
	ShutdownTimeout = 10 * time.Second

	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgDatabaseClosed       = "Database connection closed"
)

// =============================================================================
// Catalog
// =============================================================================

const (
	TemplateCacheSize = 512
	TemplateCacheTTL  = 5 * time.Minute
)
