package config

// Pool names
const (
	// DefaultPoolName is the name under which the primary database pool is registered
	DefaultPoolName = "default"
)
