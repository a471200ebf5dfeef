package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// New builds the process logger. State stores log and continue on I/O
// failure instead of surfacing errors to the mutation path, so the logger is
// the only place those failures become visible.
func New(name string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  hclog.Warn,
		Output: os.Stderr,
	})
}

// Discard is used in tests that exercise fail-soft paths on purpose.
func Discard() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{Output: io.Discard})
}
