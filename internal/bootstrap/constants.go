package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "cmsadmin_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingCMSAdmin    = "Starting cmsadmin"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Database Messages
// =============================================================================

const (
	LogMsgExtraPoolRegistered = "Extra connection pool registered"

	ErrMsgFailedConnectDefault = "failed to connect default pool"
	ErrMsgFailedConnectExtra   = "failed to connect pool"
	ErrMsgFailedRegisterPool   = "failed to register pool"
)

// =============================================================================
// Service Messages
// =============================================================================

const (
	LogMsgServicesInitialized = "Services initialized"

	ErrMsgInvalidDefaultUsers   = "invalid default users"
	ErrMsgFailedCreateDecorator = "failed to create decorator provider"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	// ShutdownTimeout bounds the whole graceful shutdown sequence
	ShutdownTimeout = 15 * time.Second

	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingSessionSweep = "Stopping session sweeper..."
	LogMsgClosingPools         = "Closing connection pools..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSweeperTimeout       = "Session sweeper did not stop in time"
)
