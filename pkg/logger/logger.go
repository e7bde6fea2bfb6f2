package logger

import (
	"os"

	"github.com/dajor/bewirtungsbeleg-sub002/pkg/config"

	zl "github.com/rs/zerolog"
)

// log is a unexported package-level global variable that holds the logger instance
var log *logger

type logger struct {
	engine *zl.Logger
}

type options struct {
}

// InitLogger initializes the logger with configuration
func InitLogger(cfg *config.Config) {
	logLvl := getLogLevel(cfg.Log.Level)

	opts := options{}

	zl.SetGlobalLevel(logLvl)
	engine := newJSONLogger(opts)

	log = &logger{
		engine: &engine,
	}
}

// getLogLevel returns the log level based on the string input
func getLogLevel(level string) zl.Level {
	switch level {
	case DebugLevel:
		return zl.DebugLevel
	case InfoLevel:
		return zl.InfoLevel
	case WarnLevel:
		return zl.WarnLevel
	case ErrorLevel:
		return zl.ErrorLevel
	default:
		return zl.InfoLevel
	}
}

// newJSONLogger creates a logger that outputs JSON format (better for cloud environments)
func newJSONLogger(opts options) zl.Logger {
	zl.TimeFieldFormat = zl.TimeFormatUnix
	zl.TimestampFieldName = "timestamp"
	zl.LevelFieldName = "severity"
	zl.MessageFieldName = "message"

	return zl.New(os.Stdout).With().
		Timestamp().
		Caller().
		Logger()
}
