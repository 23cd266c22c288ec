// Package logx constructs the loggers used across the CLI: a console
// logger on stderr, optionally teed into a timestamped JSON log file under
// a resolved workspace.
package logx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger construction.
type Options struct {
	// Verbose lowers the level to Debug, exposing per-candidate probe and
	// copy logging.
	Verbose bool
	// File, when non-nil, receives every event as a JSON line alongside the
	// console output.
	File io.Writer
}

// New returns a console logger on stderr, teed into Options.File when set.
func New(opts Options) zerolog.Logger {
	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	var out io.Writer = console
	if opts.File != nil {
		out = zerolog.MultiLevelWriter(console, opts.File)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// OpenFile opens a timestamped log file under <dir>/logs, creating the
// directory. The caller closes it when logging is no longer needed.
func OpenFile(dir string) (io.WriteCloser, error) {
	logsDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure logs directory: %w", err)
	}

	filename := time.Now().Format("20060102-150405") + ".log"
	file, err := os.OpenFile(filepath.Join(logsDir, filename), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}
