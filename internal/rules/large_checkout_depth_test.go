package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLargeCheckoutDepth(t *testing.T) {
	rule := NewLargeCheckoutDepth()

	tests := []struct {
		name string
		with string
		uses string
		want int
	}{
		{name: "numeric zero", uses: "actions/checkout@v4", with: "fetch-depth: 0", want: 1},
		{name: "string zero", uses: "actions/checkout@v4", with: `fetch-depth: "0"`, want: 1},
		{name: "float zero", uses: "actions/checkout@v4", with: "fetch-depth: 0.0", want: 1},
		{name: "string float zero", uses: "actions/checkout@v4", with: `fetch-depth: "0.0"`, want: 0},
		{name: "shallow", uses: "actions/checkout@v4", with: "fetch-depth: 1", want: 0},
		{name: "other input", uses: "actions/checkout@v4", with: "ref: main", want: 0},
		{name: "other action", uses: "actions/setup-node@v4", with: "fetch-depth: 0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "jobs:\n  a:\n    steps:\n      - uses: " + tt.uses + "\n        with:\n          " + tt.with + "\n"
			findings := run(t, rule, content)

			assert.Len(t, findings, tt.want)
			for _, f := range findings {
				assert.Equal(t, 6, f.Line)
				assert.Equal(t, "large-checkout-depth", f.Rule)
			}
		})
	}
}
