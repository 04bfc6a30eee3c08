// Package logging configures the process-wide logger shared by all build
// utilities. Level and format come from the environment so the tools stay
// flag-free about logging: LOG_LEVEL (debug|info|warn|error) and LOG_FORMAT
// (text|json). Output goes to standard error.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup builds the logger from the environment and installs it as the slog
// default.
func Setup() *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	var h slog.Handler
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		h = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	} else {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	}

	log := slog.New(h)
	slog.SetDefault(log)
	return log
}
