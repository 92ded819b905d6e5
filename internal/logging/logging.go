package logging

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	EnvLogLevel     = "PNDEV_LOG_LEVEL"
	EnvLogTimestamp = "PNDEV_LOG_TIMESTAMP"
)

// Configure sets up the global logger on stderr. verbosity is the number of
// -v flags: 0 warn, 1 info, 2+ debug. PNDEV_LOG_LEVEL wins over verbosity.
func Configure(verbosity int) {
	level := levelForVerbosity(verbosity)
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		level = lvl
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Prefix:          "pndev",
		ReportTimestamp: parseBool(os.Getenv(EnvLogTimestamp)),
	})
	log.SetDefault(logger)
}

func levelForVerbosity(verbosity int) log.Level {
	switch {
	case verbosity <= 0:
		return log.WarnLevel
	case verbosity == 1:
		return log.InfoLevel
	default:
		return log.DebugLevel
	}
}

func parseLevel(raw string) (log.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return log.WarnLevel, false
	case "trace", "debug":
		return log.DebugLevel, true
	case "info":
		return log.InfoLevel, true
	case "warn", "warning":
		return log.WarnLevel, true
	case "error":
		return log.ErrorLevel, true
	case "off", "none", "disabled":
		return log.FatalLevel + 1, true
	default:
		return log.WarnLevel, false
	}
}

func parseBool(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && v
}
