// Package logger prints verbose diagnostics for gittable.
//
// Nothing is written unless verbose mode is on (the --verbose flag).
// Each line carries its level and the time elapsed since verbose mode was
// enabled, so slow GitHub calls stand out. Registered secrets, such as the
// GitHub token, are masked before a line is written.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

const mask = "[REDACTED]"

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	secrets []string
	started time.Time

	now = time.Now
)

// SetVerbose enables or disables verbose logging and restarts the clock.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	started = now()
}

// IsVerbose reports whether verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the writer for log lines. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// AddSecret registers a value that must never appear in the log.
// Blank values are ignored.
func AddSecret(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}

	mu.Lock()
	defer mu.Unlock()
	for _, existing := range secrets {
		if existing == s {
			return
		}
	}
	secrets = append(secrets, s)
}

// ResetSecrets forgets every registered secret.
func ResetSecrets() {
	mu.Lock()
	defer mu.Unlock()
	secrets = nil
}

// Debug logs request-level detail.
func Debug(format string, args ...any) {
	write("DEBUG", format, args...)
}

// Info logs a step result.
func Info(format string, args ...any) {
	write("INFO", format, args...)
}

// Warn logs a failure that did not stop the command.
func Warn(format string, args ...any) {
	write("WARN", format, args...)
}

// Section starts a group of lines for one operation.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

func write(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}

	msg := fmt.Sprintf(format, args...)
	for _, s := range secrets {
		msg = strings.ReplaceAll(msg, s, mask)
	}
	elapsed := now().Sub(started).Seconds()
	fmt.Fprintf(output, "[%s %.3fs] %s\n", level, elapsed, msg)
}
