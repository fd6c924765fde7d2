package rules

import (
	"strings"

	"github.com/tracker-tv/actions-lint/internal/workflow"
	"github.com/tracker-tv/actions-lint/models"
)

type ArtifactRetention struct{}

func NewArtifactRetention() *ArtifactRetention {
	return &ArtifactRetention{}
}

func (r *ArtifactRetention) Name() string {
	return "artifact-retention"
}

func (r *ArtifactRetention) Description() string {
	return "Artifact uploads should set retention-days"
}

func (r *ArtifactRetention) Check(file, content string, doc *models.Workflow) []models.Finding {
	var findings []models.Finding

	for _, step := range steps(doc) {
		if !strings.HasPrefix(step.Uses, "actions/upload-artifact@") {
			continue
		}
		if step.Input("retention-days").IsSet() {
			continue
		}
		findings = append(findings, models.Finding{
			File:     file,
			Line:     workflow.FindLine(content, step.Uses),
			Severity: models.SeverityWarning,
			Rule:     r.Name(),
			Message:  "Artifact upload without retention-days defaults to 90 days of storage",
			Fix:      "Add `retention-days: 7` (or appropriate) to reduce storage costs",
		})
	}

	return findings
}
