// Package debug provides conditional diagnostic logging.
//
// Logging is enabled by setting the VENTIQ_DEBUG environment variable:
//
//	VENTIQ_DEBUG=1 ventiq walk venta
//
// When enabled, messages are written to stderr with timestamps. When
// disabled (default), every function is a no-op.
package debug

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	enabled bool
	logger  *log.Logger
)

func init() {
	if os.Getenv("VENTIQ_DEBUG") != "" {
		enabled = true
		logger = log.New(os.Stderr, "[VENTIQ_DEBUG] ", log.Ltime|log.Lmicroseconds)
	}
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// SetEnabled turns debug logging on or off at runtime.
func SetEnabled(e bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = e
	if e && logger == nil {
		logger = log.New(os.Stderr, "[VENTIQ_DEBUG] ", log.Ltime|log.Lmicroseconds)
	}
}

// SetOutput redirects debug output. The TUI uses it to keep stderr clean
// while the alternate screen is active.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = log.New(w, "[VENTIQ_DEBUG] ", log.Ltime|log.Lmicroseconds)
		return
	}
	logger.SetOutput(w)
}

// Log writes a printf-style message when debug logging is enabled.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled || logger == nil {
		return
	}
	logger.Printf(format, args...)
}
