package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	// PoolURLPrefix marks a URL that names a registered pool instead of a database server
	PoolURLPrefix = "cms:pool:"

	// MigrationsDir is the directory of the embedded goose migrations
	MigrationsDir = "migrations"

	// DefaultApplicationName is reported to the server when no name is configured
	DefaultApplicationName = "cmsadmin"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToAcquire         = "failed to acquire connection"
	ErrMsgFailedToConnect         = "failed to connect"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
	ErrMsgFailedToSetGooseDialect = "failed to set migration dialect"
	ErrMsgPoolAlreadyRegistered   = "pool already registered"
	ErrMsgFailedToReadVersion     = "failed to read migration version"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgPoolRegistered                  = "Connection pool registered"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
