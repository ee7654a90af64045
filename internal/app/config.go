package app

import "sticky-note/internal/logger"

// LogLevelFromEnv reads LOG_LEVEL (debug|info|warn|error), then DEBUG=1,
// and defaults to info.
func LogLevelFromEnv(getenv func(string) string) logger.LogLevel {
	if name := getenv("LOG_LEVEL"); name != "" {
		if level, err := logger.ParseLevel(name); err == nil {
			return level
		}
	}
	if getenv("DEBUG") == "1" {
		return logger.DebugLevel
	}
	return logger.InfoLevel
}
