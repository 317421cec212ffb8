package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/dot/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options configures the diagnostic logger
type Options struct {
	// Verbosity is the -v count given on the command line
	Verbosity int

	// Console receives human-readable diagnostics (default os.Stderr)
	Console io.Writer

	// NoColor disables ANSI colors on the console
	NoColor bool

	// LogFile is the JSON log file path; "" selects the XDG state location,
	// "-" disables the file.
	LogFile string
}

// Setup configures the global logger.
//
// The console only shows diagnostics above the level the event reporter
// already covers: warnings by default, debug from -vvv, trace from -vvvv.
// The log file always records debug and above.
func Setup(opts Options) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}

	writers := []io.Writer{
		&zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: consoleWriter},
			Level:  ConsoleLevel(opts.Verbosity),
		},
	}

	logFile := opts.LogFile
	if logFile == "" {
		logFile = paths.LogFilePath()
	}

	var fileErr error
	if logFile != "-" {
		var logFileHandle *os.File
		logFileHandle, fileErr = setupLogFile(logFile)
		if fileErr == nil {
			writers = append(writers, &zerolog.FilteredLevelWriter{
				Writer: zerolog.LevelWriterAdapter{Writer: logFileHandle},
				Level:  zerolog.DebugLevel,
			})
		}
	}

	multi := zerolog.MultiLevelWriter(writers...)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()

	// If we couldn't create the log file, log the error now with the new logger
	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}

	if opts.Verbosity >= 3 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// ConsoleLevel maps the -v count to the console diagnostic threshold
func ConsoleLevel(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 2:
		return zerolog.WarnLevel
	case verbosity == 3:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
