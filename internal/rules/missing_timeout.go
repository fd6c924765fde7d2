package rules

import (
	"fmt"

	"github.com/tracker-tv/actions-lint/internal/workflow"
	"github.com/tracker-tv/actions-lint/models"
)

type MissingTimeout struct{}

func NewMissingTimeout() *MissingTimeout {
	return &MissingTimeout{}
}

func (r *MissingTimeout) Name() string {
	return "missing-timeout"
}

func (r *MissingTimeout) Description() string {
	return "Jobs should set timeout-minutes"
}

func (r *MissingTimeout) Check(file, content string, doc *models.Workflow) []models.Finding {
	if doc == nil {
		return nil
	}

	var findings []models.Finding
	for _, job := range doc.Jobs {
		if job.TimeoutMinutes.IsSet() {
			continue
		}
		findings = append(findings, models.Finding{
			File:     file,
			Line:     workflow.FindLine(content, job.Name+":"),
			Severity: models.SeverityWarning,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("Job %q has no timeout-minutes and could run for up to 6 hours", job.Name),
			Fix:      "Add `timeout-minutes: 30` (or appropriate limit) to the job",
		})
	}
	return findings
}
