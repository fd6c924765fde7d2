package logging

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]hclog.Level{
		"trace":   hclog.Trace,
		"DEBUG":   hclog.Debug,
		" info ":  hclog.Info,
		"warn":    hclog.Warn,
		"error":   hclog.Error,
		"off":     hclog.Off,
		"":        hclog.Info,
		"verbose": hclog.Info,
	}

	for input, want := range tests {
		assert.Equal(t, want, ParseLevel(input), input)
	}
}

func TestNewWithOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithOutput("actions-lint", "warn", &buf)

	logger.Info("hidden")
	logger.Warn("shown", "file", "ci.yml")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "actions-lint: shown")
	assert.Contains(t, buf.String(), "file=ci.yml")
}
