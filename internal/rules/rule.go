// Package rules holds the checks run against every workflow document.
package rules

import (
	"strings"

	"github.com/tracker-tv/actions-lint/internal/policy"
	"github.com/tracker-tv/actions-lint/models"
)

// Check inspects one workflow and reports what it finds. Implementations keep
// no state between calls and may run concurrently. doc is nil when the file
// parsed to something other than a mapping.
type Check interface {
	// Name is the rule id carried by every finding the check emits.
	Name() string
	Description() string
	Check(file, content string, doc *models.Workflow) []models.Finding
}

// Default returns the built-in checks in evaluation order.
func Default(tables *policy.Tables) []Check {
	return []Check{
		NewUnpinnedActions(),
		NewMissingPermissions(),
		NewMissingTimeout(),
		NewHardcodedSecrets(tables.SecretPatterns),
		NewMissingConcurrency(),
		NewDeprecatedActions(tables.DeprecatedActions),
		NewDeprecatedFeatures(tables.DeprecatedCommands),
		NewArtifactRetention(),
		NewPullRequestTarget(),
		NewShellInjection(tables.Injection),
		NewLargeCheckoutDepth(),
	}
}

// Names lists the rule ids of checks, in order.
func Names(checks []Check) []string {
	names := make([]string, 0, len(checks))
	for _, c := range checks {
		names = append(names, c.Name())
	}
	return names
}

func steps(doc *models.Workflow) []models.Step {
	if doc == nil {
		return nil
	}
	var all []models.Step
	for _, job := range doc.Jobs {
		all = append(all, job.Steps...)
	}
	return all
}

func lines(content string) []string {
	return strings.Split(content, "\n")
}

func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}
