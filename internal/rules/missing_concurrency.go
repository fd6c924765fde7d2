package rules

import "github.com/tracker-tv/actions-lint/models"

type MissingConcurrency struct{}

func NewMissingConcurrency() *MissingConcurrency {
	return &MissingConcurrency{}
}

func (r *MissingConcurrency) Name() string {
	return "missing-concurrency"
}

func (r *MissingConcurrency) Description() string {
	return "Workflows should define a concurrency group"
}

func (r *MissingConcurrency) Check(file, _ string, doc *models.Workflow) []models.Finding {
	if doc == nil || doc.Concurrency.IsSet() {
		return nil
	}
	return []models.Finding{{
		File:     file,
		Line:     1,
		Severity: models.SeverityInfo,
		Rule:     r.Name(),
		Message:  "No concurrency group, so duplicate workflow runs won't be cancelled",
		Fix:      "Add `concurrency: { group: \"${{ github.workflow }}-${{ github.ref }}\", cancel-in-progress: true }`",
	}}
}
