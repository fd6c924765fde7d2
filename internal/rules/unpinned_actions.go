package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tracker-tv/actions-lint/internal/workflow"
	"github.com/tracker-tv/actions-lint/models"
)

var (
	shaRef     = regexp.MustCompile(`^[a-f0-9]{40}$`)
	versionRef = regexp.MustCompile(`^v\d+`)
)

// UnpinnedActions flags remote actions referenced by a branch or other
// mutable ref instead of a version tag or a full commit SHA.
type UnpinnedActions struct{}

func NewUnpinnedActions() *UnpinnedActions {
	return &UnpinnedActions{}
}

func (r *UnpinnedActions) Name() string {
	return "unpinned-actions"
}

func (r *UnpinnedActions) Description() string {
	return "Actions must be pinned to a version tag or a full commit SHA"
}

func (r *UnpinnedActions) Check(file, content string, doc *models.Workflow) []models.Finding {
	var findings []models.Finding

	for _, step := range steps(doc) {
		uses := step.Uses
		if uses == "" || strings.HasPrefix(uses, "./") || strings.HasPrefix(uses, "docker://") {
			continue
		}
		parts := strings.Split(uses, "@")
		if len(parts) < 2 || parts[1] == "" {
			continue
		}
		ref := parts[1]
		if shaRef.MatchString(ref) || versionRef.MatchString(ref) {
			continue
		}

		findings = append(findings, models.Finding{
			File:     file,
			Line:     workflow.FindLine(content, uses),
			Severity: models.SeverityError,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("Action %q uses branch ref %q instead of a version tag or SHA", uses, ref),
			Fix:      "Pin to a version tag (e.g., @v4) or full SHA for security",
		})
	}

	return findings
}
