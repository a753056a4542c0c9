package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is how many run logs are kept when nothing else is set
const DefaultMaxLogFiles = 1000

// Logger is shared by every package. It discards until Initialize enables it.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

var debugging bool

// Options selects where the debug log goes
type Options struct {
	Debug bool
	// File pins the log to one path and turns pruning off
	File     string
	MaxFiles int
}

func (o Options) enabled() bool {
	return o.Debug || o.File != ""
}

// Initialize points Logger at a JSON log file when debugging is on.
// It returns the file path, or "" when logs are discarded.
func Initialize(opts Options) (string, error) {
	debugging = opts.enabled()
	if !debugging {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return "", nil
	}

	path, err := logFilePath(opts)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to open log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("Debug logging started", "log_file", path, "pid", os.Getpid())
	fmt.Fprintf(os.Stderr, "Debug log: %s\n", path)

	return path, nil
}

// Debugging reports whether the last Initialize turned the log on
func Debugging() bool {
	return debugging
}

func logFilePath(opts Options) (string, error) {
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return opts.File, nil
	}

	dir, err := logDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve log directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if opts.MaxFiles > 0 {
		// One slot is left for the file about to be created
		if err := pruneLogs(dir, opts.MaxFiles-1); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not prune old logs: %v\n", err)
		}
	}

	return filepath.Join(dir, uuid.NewString()+".log"), nil
}

// pruneLogs deletes the oldest .log files in dir until at most keep remain
func pruneLogs(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	type runLog struct {
		path    string
		modTime time.Time
	}
	var logs []runLog
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logs = append(logs, runLog{filepath.Join(dir, entry.Name()), info.ModTime()})
	}

	if len(logs) <= keep {
		return nil
	}

	slices.SortFunc(logs, func(a, b runLog) int {
		return a.modTime.Compare(b.modTime)
	})
	for _, l := range logs[:len(logs)-keep] {
		if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: could not remove %s: %v\n", l.path, err)
		}
	}
	return nil
}

func logDir() (string, error) {
	const app = "homework-cloner"

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", app), nil
	case "windows":
		if base := os.Getenv("LOCALAPPDATA"); base != "" {
			return filepath.Join(base, app, "logs"), nil
		}
		return filepath.Join(home, "AppData", "Local", app, "logs"), nil
	default:
		if state := os.Getenv("XDG_STATE_HOME"); state != "" {
			return filepath.Join(state, app), nil
		}
		return filepath.Join(home, ".local", "state", app), nil
	}
}
