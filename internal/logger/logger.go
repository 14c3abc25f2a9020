// Package logger configures the global zerolog logger used by the CLI.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	LogFormatJsonValue = "json"
	LogFormatTextValue = "text"
)

// SetLogLevel replaces log.Logger with a stderr logger of the given level and format.
func SetLogLevel(logLevelStr string, logFormat string) error {
	return setLogger(os.Stderr, logLevelStr, logFormat)
}

func setLogger(out io.Writer, logLevelStr string, logFormat string) error {
	var logLevel zerolog.Level
	switch logLevelStr {
	case zerolog.LevelTraceValue:
		logLevel = zerolog.TraceLevel
	case zerolog.LevelDebugValue:
		logLevel = zerolog.DebugLevel
	case zerolog.LevelInfoValue:
		logLevel = zerolog.InfoLevel
	case zerolog.LevelWarnValue:
		logLevel = zerolog.WarnLevel
	default:
		return fmt.Errorf("unknown log level %s", logLevelStr)
	}

	var formatWriter io.Writer
	switch logFormat {
	case LogFormatJsonValue:
		formatWriter = out
	case LogFormatTextValue:
		formatWriter = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return fmt.Errorf("unknown log format %s", logFormat)
	}

	// Trace events are also gated by the global level.
	if logLevel < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(logLevel)
	}

	if logLevel <= zerolog.DebugLevel {
		log.Logger = zerolog.New(formatWriter).
			Level(logLevel).
			With().
			Timestamp().
			Caller().
			Int("pid", os.Getpid()).Logger()
	} else {
		log.Logger = zerolog.New(formatWriter).
			Level(logLevel).
			With().
			Timestamp().
			Logger()
	}

	return nil
}
