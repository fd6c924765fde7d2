package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeprecatedFeatures(t *testing.T) {
	rule := NewDeprecatedFeatures(defaultTables(t).DeprecatedCommands)

	tests := []struct {
		name    string
		line    string
		want    int
		message string
	}{
		{name: "set-output with prefix", line: `echo "::set-output name=version::1.0"`, want: 1, message: "`::set-output` is deprecated"},
		{name: "save-state with prefix", line: `echo "::save-state name=pid::42"`, want: 1, message: "`::save-state` is deprecated"},
		{name: "set-output without prefix", line: `core.command("set-output name=x")`, want: 1, message: "`set-output` command is deprecated"},
		{name: "save-state without prefix", line: `save-state   name=x`, want: 1, message: "`save-state` command is deprecated"},
		{name: "environment file", line: `echo "version=1.0" >> $GITHUB_OUTPUT`, want: 0},
		{name: "commented", line: `# echo "::set-output name=x::y"`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := rule.Check(testFile, tt.line, nil)

			require.Len(t, findings, tt.want)
			if tt.want > 0 {
				assert.Equal(t, tt.message, findings[0].Message)
				assert.Contains(t, findings[0].Fix, "$GITHUB_")
			}
		})
	}
}

func TestDeprecatedFeatures_LineNumbers(t *testing.T) {
	rule := NewDeprecatedFeatures(defaultTables(t).DeprecatedCommands)
	content := "steps:\n  - run: |\n      echo \"::set-output name=a::1\"\n      echo ok\n      echo \"::save-state name=b::2\"\n"

	findings := rule.Check(testFile, content, nil)

	require.Len(t, findings, 2)
	assert.Equal(t, 3, findings[0].Line)
	assert.Equal(t, 5, findings[1].Line)
}
