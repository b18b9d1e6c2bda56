package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/cmsadmin/internal/config"
	"github.com/osse101/cmsadmin/internal/logger"
)

// LoggerConfig maps the application configuration onto the logger configuration.
// Source locations are only added in development.
func LoggerConfig(cfg *config.Config) logger.Config {
	addSource := cfg.Environment == logger.EnvironmentDev || cfg.Environment == logger.EnvironmentDevelopment
	return logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, addSource)
}

// SetupLogger installs the default logger. Output goes to stdout and, when
// cfg.LogDir is set, also to a timestamped file in that directory.
// The returned file is nil without a LogDir; otherwise the caller must close it.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	loggerConfig := LoggerConfig(cfg)

	var w io.Writer = os.Stdout
	var logFile *os.File
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
		}

		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat))
		f, err := os.OpenFile(filepath.Join(cfg.LogDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
		}
		logFile = f
		w = io.MultiWriter(os.Stdout, f)
	}

	logger.InitLoggerWithWriter(loggerConfig, w)

	slog.Info(LogMsgLoggingInitialized, "log_level", loggerConfig.LogLevel().String(), "log_dir", cfg.LogDir)
	slog.Info(LogMsgStartingCMSAdmin, "log_format", cfg.LogFormat)
	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"extra_pools", len(cfg.DBExtraPools),
		"port", cfg.Port)

	return logFile, nil
}

// cleanupLogs removes the oldest log files so that at most keep remain.
// Log names embed a sortable timestamp, so name order is age order.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keep {
		return
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
