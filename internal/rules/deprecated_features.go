package rules

import (
	"github.com/tracker-tv/actions-lint/internal/policy"
	"github.com/tracker-tv/actions-lint/models"
)

// DeprecatedFeatures looks for the disabled set-output and save-state workflow
// commands. They live inside run scripts, which the document model keeps as
// opaque text, so the raw lines are scanned instead.
type DeprecatedFeatures struct {
	commands []policy.Command
}

func NewDeprecatedFeatures(commands []policy.Command) *DeprecatedFeatures {
	return &DeprecatedFeatures{commands: commands}
}

func (r *DeprecatedFeatures) Name() string {
	return "deprecated-features"
}

func (r *DeprecatedFeatures) Description() string {
	return "Deprecated workflow commands should be replaced with environment files"
}

func (r *DeprecatedFeatures) Check(file, content string, _ *models.Workflow) []models.Finding {
	var findings []models.Finding

	for i, line := range lines(content) {
		if isComment(line) {
			continue
		}
		for _, cmd := range r.commands {
			if !cmd.Pattern.MatchString(line) {
				continue
			}
			findings = append(findings, models.Finding{
				File:     file,
				Line:     i + 1,
				Severity: models.SeverityWarning,
				Rule:     r.Name(),
				Message:  cmd.Message,
				Fix:      cmd.Fix,
			})
			break
		}
	}

	return findings
}
