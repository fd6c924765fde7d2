package report

import (
	"fmt"
	"io"
)

const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatSARIF = "sarif"
)

type Renderer interface {
	Render(w io.Writer, r *Report) error
}

type Options struct {
	NoColor bool
	// Rules maps rule ids to their descriptions, used by the SARIF renderer.
	Rules   map[string]string
	Version string
}

// NewRenderer returns the renderer for format. An empty format means text.
func NewRenderer(format string, opts Options) (Renderer, error) {
	switch format {
	case "", FormatText:
		return &textRenderer{noColor: opts.NoColor}, nil
	case FormatJSON:
		return &jsonRenderer{}, nil
	case FormatSARIF:
		return &sarifRenderer{rules: opts.Rules, version: opts.Version}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
