package rules

import "github.com/tracker-tv/actions-lint/models"

// MissingPermissions flags workflows that rely on the default GITHUB_TOKEN
// permissions. A top-level block, or a block on every job, satisfies it.
type MissingPermissions struct{}

func NewMissingPermissions() *MissingPermissions {
	return &MissingPermissions{}
}

func (r *MissingPermissions) Name() string {
	return "missing-permissions"
}

func (r *MissingPermissions) Description() string {
	return "Workflows should declare explicit token permissions"
}

func (r *MissingPermissions) Check(file, _ string, doc *models.Workflow) []models.Finding {
	if doc == nil || len(doc.Jobs) == 0 || doc.Permissions.IsSet() {
		return nil
	}

	allJobsScoped := true
	for _, job := range doc.Jobs {
		if !job.Permissions.IsSet() {
			allJobsScoped = false
			break
		}
	}
	if allJobsScoped {
		return nil
	}

	return []models.Finding{{
		File:     file,
		Line:     1,
		Severity: models.SeverityWarning,
		Rule:     r.Name(),
		Message:  "Workflow has no explicit permissions block, so it gets the default broad read/write token",
		Fix:      "Add top-level `permissions: {}` (least privilege) or specify needed permissions",
	}}
}
