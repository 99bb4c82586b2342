package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	// DebugEnv enables debug logging when set to "1"
	DebugEnv = "COVER_REPORT_DEBUG"
	// DebugFileEnv overrides the debug log file path
	DebugFileEnv = "COVER_REPORT_DEBUG_FILE"
	// DefaultMaxLogFiles is how many rotated log files are kept
	DefaultMaxLogFiles = 20
)

// Logger is the public logger instance accessible from all packages
var Logger = discard()

// RunID identifies the current invocation in log records
var RunID = uuid.New().String()

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// Initialize sets up the logger based on the debug flag and optional file.
// It returns the path of the log file, or "" when logging is discarded.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	if os.Getenv(DebugEnv) == "1" {
		debug = true
	}
	if envDebugFile := os.Getenv(DebugFileEnv); envDebugFile != "" && debugFile == "" {
		debugFile = envDebugFile
	}

	if !debug && debugFile == "" {
		Logger = discard()
		return "", nil
	}

	var logFilePath string

	if debugFile != "" {
		// Custom path, no rotation
		logFilePath = debugFile
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
	} else {
		dir, err := logDir()
		if err != nil {
			return "", fmt.Errorf("failed to get log directory: %w", err)
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}

		if maxLogFiles > 0 {
			if err := pruneRunLogs(dir, maxLogFiles); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
			}
		}

		logFilePath = filepath.Join(dir, runLogName(RunID))
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	handler := slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})
	Logger = slog.New(handler).With("run_id", RunID)
	Logger.Info("Debug logging initialized", "log_file", logFilePath)

	return logFilePath, nil
}

// runLogPattern matches the per-run log files this tool writes
const runLogPattern = "run-*.log"

// runLogName returns the file name of the log for runID
func runLogName(runID string) string {
	return "run-" + runID + ".log"
}

// pruneRunLogs deletes the oldest run logs in dir so that a new one fits within keep.
// Files not written by this tool are left alone.
func pruneRunLogs(dir string, keep int) error {
	matches, err := filepath.Glob(filepath.Join(dir, runLogPattern))
	if err != nil {
		return fmt.Errorf("failed to list run logs: %w", err)
	}
	if len(matches) < keep {
		return nil
	}

	modTimes := make(map[string]time.Time, len(matches))
	for _, path := range matches {
		if info, err := os.Stat(path); err == nil {
			modTimes[path] = info.ModTime()
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return modTimes[matches[i]].Before(modTimes[matches[j]])
	})

	for _, path := range matches[:len(matches)-keep+1] {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", path, err)
		}
	}
	return nil
}

// logDir returns $XDG_STATE_HOME/cover-report, falling back to the user cache directory
func logDir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, "cover-report"), nil
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "cover-report", "logs"), nil
}
