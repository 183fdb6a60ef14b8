package config

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds the application logger from LOG_LEVEL and LOG_FILE.
// When LOG_FILE is empty the logger writes to fallback; pass io.Discard when
// the process owns the terminal in raw mode.
func NewLogger(prefix string, fallback io.Writer) (*log.Logger, func() error, error) {
	closeFn := func() error { return nil }
	w := fallback
	if path := GetEnv("LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, err
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(level)
	}
	return logger, closeFn, nil
}
