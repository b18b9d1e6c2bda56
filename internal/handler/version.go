package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/osse101/cmsadmin/internal/config"
)

// VersionInfo describes the running build
type VersionInfo struct {
	Version          string `json:"version"`
	GoVersion        string `json:"go_version"`
	EnvSchemaVersion string `json:"env_schema_version"`
	BuildTime        string `json:"build_time,omitempty"`
	GitCommit        string `json:"git_commit,omitempty"`
}

// Set with -ldflags "-X github.com/osse101/cmsadmin/internal/handler.Version=..."
var (
	Version   = "dev"
	BuildTime = ""
	GitCommit = ""
)

// HandleVersion returns version information about the application
func HandleVersion() http.HandlerFunc {
	info := buildVersionInfo()
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

func buildVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:          Version,
		GoVersion:        runtime.Version(),
		EnvSchemaVersion: config.ExpectedEnvSchemaVersion,
		BuildTime:        BuildTime,
		GitCommit:        GitCommit,
	}
	if info.Version == "dev" || info.Version == "" {
		if env := os.Getenv("APP_VERSION"); env != "" {
			info.Version = env
		}
	}

	// fall back to the VCS stamp of module-aware builds
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range bi.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = setting.Value
				}
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = setting.Value
				}
			}
		}
	}
	return info
}
