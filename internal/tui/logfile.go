package tui

import (
	"os"
	"path/filepath"
)

// LogFileName is the rotating log kept inside the repository's git dir.
const LogFileName = "gg.log"

// GetLogFilePath returns the path to the log file.
// If GG_LOG_FILE is set, uses that path, otherwise <gitDir>/gg.log.
// An empty gitDir disables file logging unless GG_LOG_FILE is set.
func GetLogFilePath(gitDir string) string {
	if customPath := os.Getenv("GG_LOG_FILE"); customPath != "" {
		return customPath
	}
	if gitDir == "" {
		return ""
	}
	return filepath.Join(gitDir, LogFileName)
}
