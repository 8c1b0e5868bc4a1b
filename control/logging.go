// File: control/logging.go
//
// Process-wide structured logger with explicit init and teardown. Before
// InitLogging the logger is a no-op, so library code can log
// unconditionally through Logger().

package control

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

var (
	logMu  sync.RWMutex
	logger = zerolog.Nop()
)

// InitLogging installs the process logger writing to w at the given level
// ("trace", "debug", "info", "warn", "error").
func InitLogging(level string, w io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}
	logMu.Lock()
	defer logMu.Unlock()
	logger = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return nil
}

// Logger returns the current process logger.
func Logger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}

// ShutdownLogging resets the process logger to a no-op.
func ShutdownLogging() {
	logMu.Lock()
	defer logMu.Unlock()
	logger = zerolog.Nop()
}
