package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault_Order(t *testing.T) {
	checks := Default(defaultTables(t))

	assert.Equal(t, []string{
		"unpinned-actions",
		"missing-permissions",
		"missing-timeout",
		"hardcoded-secrets",
		"missing-concurrency",
		"deprecated-actions",
		"deprecated-features",
		"artifact-retention",
		"pull-request-target",
		"shell-injection",
		"large-checkout-depth",
	}, Names(checks))

	for _, c := range checks {
		assert.NotEmpty(t, c.Description(), c.Name())
	}
}

func TestDefault_NilDocument(t *testing.T) {
	content := "just a scalar\n"
	for _, c := range Default(defaultTables(t)) {
		assert.Empty(t, c.Check(testFile, content, nil), c.Name())
	}
}

func TestDefault_FindingsCarryRuleName(t *testing.T) {
	content := `on: pull_request_target
jobs:
  build:
    steps:
      - uses: actions/checkout@main
        with:
          fetch-depth: 0
      - uses: actions/create-release@v1
      - uses: actions/upload-artifact@v4
      - run: |
          echo "::set-output name=x::${{ github.event.issue.title }}"
          export PASSWORD="hunter2"
`
	for _, c := range Default(defaultTables(t)) {
		findings := run(t, c, content)
		assert.NotEmpty(t, findings, c.Name())
		for _, f := range findings {
			assert.Equal(t, c.Name(), f.Rule)
			assert.Equal(t, testFile, f.File)
			assert.GreaterOrEqual(t, f.Line, 1)
			assert.NotEmpty(t, f.Message)
		}
	}
}
