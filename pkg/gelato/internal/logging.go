package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	logWriter io.Writer = os.Stdout

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Must be called before the first logger is requested.
func SetLogPath(path string) {
	logPath = path
}

func setup() {
	setupOnce.Do(func() {
		if logPath == "" {
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, stay on stdout
			return
		}

		logFile = f
		logWriter = io.MultiWriter(os.Stdout, logFile)
	})
}

func newJSONLogger(level *slog.LevelVar) *slog.Logger {
	setup()

	return slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	}))
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		logger = newJSONLogger(levelVar)
	})
	return logger
}

// GetInternalLogger returns the logger used by gelato itself and its hosts.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLevelVar.Set(slog.LevelError)
		internalLogger = newJSONLogger(internalLevelVar).With("component", "gelato")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLogLevel maps "debug", "info", "warn"/"warning" and "error" to slog levels.
// Anything else is treated as info.
func ParseLogLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLogLevel(rawLevel))
}

// CloseLogger closes the log file and resets the loggers and the log path.
// Loggers requested afterwards write to the path of the next SetLogPath.
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logWriter = os.Stdout
	logPath = ""

	setupOnce = sync.Once{}
	loggerOnce = sync.Once{}
	internalLoggerOnce = sync.Once{}
	logger, levelVar = nil, nil
	internalLogger, internalLevelVar = nil, nil
}
