package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// New returns the CLI logger. Logs go to stderr so stdout stays reserved for
// the report and workflow commands.
func New(name, level string) hclog.Logger {
	return NewWithOutput(name, level, os.Stderr)
}

func NewWithOutput(name, level string, out io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:        name,
		DisableTime: true,
		Output:      out,
		Level:       ParseLevel(level),
	})
}

// ParseLevel maps a level name to an hclog level, defaulting to info.
func ParseLevel(level string) hclog.Level {
	if l := hclog.LevelFromString(level); l != hclog.NoLevel {
		return l
	}
	return hclog.Info
}
