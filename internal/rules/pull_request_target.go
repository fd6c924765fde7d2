package rules

import (
	"strings"

	"github.com/tracker-tv/actions-lint/internal/workflow"
	"github.com/tracker-tv/actions-lint/models"
)

const pullRequestTargetEvent = "pull_request_target"

// PullRequestTarget warns about the pull_request_target trigger and escalates
// to an error when the file also checks out the pull request head.
type PullRequestTarget struct{}

func NewPullRequestTarget() *PullRequestTarget {
	return &PullRequestTarget{}
}

func (r *PullRequestTarget) Name() string {
	return "pull-request-target"
}

func (r *PullRequestTarget) Description() string {
	return "pull_request_target runs with write access and secrets; untrusted code must not run under it"
}

func (r *PullRequestTarget) Check(file, content string, doc *models.Workflow) []models.Finding {
	if doc == nil || !doc.On.Has(pullRequestTargetEvent) {
		return nil
	}

	finding := models.Finding{
		File:     file,
		Line:     workflow.FindLine(content, pullRequestTargetEvent),
		Severity: models.SeverityWarning,
		Rule:     r.Name(),
		Message:  "pull_request_target trigger requires careful security review",
		Fix:      "Prefer pull_request trigger, or ensure no untrusted code is executed",
	}
	if checksOutHead(content) {
		finding.Severity = models.SeverityError
		finding.Message = "pull_request_target with PR head checkout is a HIGH SECURITY RISK (code injection)"
	}

	return []models.Finding{finding}
}

func checksOutHead(content string) bool {
	if !strings.Contains(content, "actions/checkout") {
		return false
	}
	return strings.Contains(content, "github.event.pull_request.head") || strings.Contains(content, "head.ref")
}
