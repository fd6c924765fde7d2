package rules

import (
	"regexp"

	"github.com/tracker-tv/actions-lint/models"
)

// HardcodedSecrets scans raw lines for credential literals. At most one
// finding is reported per line.
type HardcodedSecrets struct {
	patterns []*regexp.Regexp
}

func NewHardcodedSecrets(patterns []*regexp.Regexp) *HardcodedSecrets {
	return &HardcodedSecrets{patterns: patterns}
}

func (r *HardcodedSecrets) Name() string {
	return "hardcoded-secrets"
}

func (r *HardcodedSecrets) Description() string {
	return "Credentials must come from secrets, not literals in the workflow"
}

func (r *HardcodedSecrets) Check(file, content string, _ *models.Workflow) []models.Finding {
	var findings []models.Finding

	for i, line := range lines(content) {
		if isComment(line) {
			continue
		}
		for _, pattern := range r.patterns {
			if !pattern.MatchString(line) {
				continue
			}
			findings = append(findings, models.Finding{
				File:     file,
				Line:     i + 1,
				Severity: models.SeverityError,
				Rule:     r.Name(),
				Message:  "Possible hardcoded secret detected",
				Fix:      "Use `${{ secrets.SECRET_NAME }}` instead",
			})
			break
		}
	}

	return findings
}
