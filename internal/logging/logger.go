// Package logging builds the diagnostic logger. Operator-facing progress
// goes to stdout through plain writes; this logger is for debugging and
// writes to stderr.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/appdist/distman/internal/branding"
)

// DefaultLevel keeps the logger quiet unless asked.
const DefaultLevel = "warn"

// New creates a named hclog logger at level writing to output (stderr when
// nil). <PREFIX>_JSON_LOG=1 switches to JSON lines.
func New(level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}
	if level == "" {
		level = DefaultLevel
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       branding.CLIName(),
		Level:      hclog.LevelFromString(level),
		JSONFormat: os.Getenv(branding.EnvVar("JSON_LOG")) == "1",
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}
