package rules

import (
	"fmt"

	"github.com/tracker-tv/actions-lint/internal/workflow"
	"github.com/tracker-tv/actions-lint/models"
)

type DeprecatedActions struct {
	replacements map[string]string
}

// NewDeprecatedActions takes a map from action (owner/repo[/path]) to the advice shown as fix.
func NewDeprecatedActions(replacements map[string]string) *DeprecatedActions {
	return &DeprecatedActions{replacements: replacements}
}

func (r *DeprecatedActions) Name() string {
	return "deprecated-actions"
}

func (r *DeprecatedActions) Description() string {
	return "Archived or deprecated actions should be replaced"
}

func (r *DeprecatedActions) Check(file, content string, doc *models.Workflow) []models.Finding {
	var findings []models.Finding

	for _, step := range steps(doc) {
		if step.Uses == "" {
			continue
		}
		action := step.Action()
		advice, ok := r.replacements[action]
		if !ok {
			continue
		}
		findings = append(findings, models.Finding{
			File:     file,
			Line:     workflow.FindLine(content, step.Uses),
			Severity: models.SeverityWarning,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("Action %q is deprecated", action),
			Fix:      advice,
		})
	}

	return findings
}
