package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracker-tv/actions-lint/models"
)

func TestArtifactRetention(t *testing.T) {
	rule := NewArtifactRetention()

	t.Run("missing retention", func(t *testing.T) {
		content := "jobs:\n  build:\n    steps:\n      - uses: actions/upload-artifact@v4\n        with:\n          name: dist\n"
		findings := run(t, rule, content)

		require.Len(t, findings, 1)
		assert.Equal(t, models.SeverityWarning, findings[0].Severity)
		assert.Equal(t, 4, findings[0].Line)
	})

	t.Run("retention set", func(t *testing.T) {
		content := "jobs:\n  build:\n    steps:\n      - uses: actions/upload-artifact@v4\n        with:\n          retention-days: 5\n"
		assert.Empty(t, run(t, rule, content))
	})

	t.Run("other actions", func(t *testing.T) {
		content := "jobs:\n  build:\n    steps:\n      - uses: actions/download-artifact@v4\n"
		assert.Empty(t, run(t, rule, content))
	})
}
