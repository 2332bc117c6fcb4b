// Package obslog configures the structured logger shared by the four
// command-line entry points. It never writes to stdout: stdout is
// reserved for the single JSON document each binary emits.
package obslog

import (
	"log/slog"
	"os"
	"time"
)

// New returns a JSON logger writing to stderr, tagged with component
// (e.g. "factory-solve") so a single combined log stream stays
// greppable across the four binaries.
func New(component string) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With("component", component)
}

// Stage logs a single structured line for a pipeline stage
// (parsed, the solver's status ok/infeasible, emitted) along with its
// wall-clock cost.
func Stage(log *slog.Logger, stage string, since time.Time) {
	log.Info("stage", "stage", stage, "elapsed_ms", time.Since(since).Milliseconds())
}
