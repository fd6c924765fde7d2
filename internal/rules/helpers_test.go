package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tracker-tv/actions-lint/internal/policy"
	"github.com/tracker-tv/actions-lint/internal/workflow"
	"github.com/tracker-tv/actions-lint/models"
)

const testFile = ".github/workflows/ci.yml"

func run(t *testing.T, check Check, content string) []models.Finding {
	t.Helper()
	doc, err := workflow.Parse(content)
	require.NoError(t, err)
	return check.Check(testFile, content, doc)
}

func defaultTables(t *testing.T) *policy.Tables {
	t.Helper()
	tables, err := policy.Default()
	require.NoError(t, err)
	return tables
}
