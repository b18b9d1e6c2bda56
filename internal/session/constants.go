package session

import "time"

// DefaultMaxInactive is used when no max inactive interval is configured
const DefaultMaxInactive = 30 * time.Minute

// DefaultSweepInterval is how often Run removes expired sessions when no interval is given
const DefaultSweepInterval = time.Minute

// Log messages
const (
	LogMsgSessionRegistered = "Session registered"
	LogMsgSessionSkipped    = "Session not registered for default user"
	LogMsgSessionsExpired   = "Expired sessions removed"
	LogMsgSweeperStarted    = "Session sweeper started"
	LogMsgSweeperStopped    = "Session sweeper stopped"
)
