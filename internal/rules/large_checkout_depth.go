package rules

import (
	"strings"

	"github.com/tracker-tv/actions-lint/internal/workflow"
	"github.com/tracker-tv/actions-lint/models"
)

type LargeCheckoutDepth struct{}

func NewLargeCheckoutDepth() *LargeCheckoutDepth {
	return &LargeCheckoutDepth{}
}

func (r *LargeCheckoutDepth) Name() string {
	return "large-checkout-depth"
}

func (r *LargeCheckoutDepth) Description() string {
	return "Full-history checkouts should be avoided unless needed"
}

func (r *LargeCheckoutDepth) Check(file, content string, doc *models.Workflow) []models.Finding {
	var findings []models.Finding

	for _, step := range steps(doc) {
		if !strings.HasPrefix(step.Uses, "actions/checkout@") {
			continue
		}
		if !fullHistory(step.Input("fetch-depth")) {
			continue
		}
		findings = append(findings, models.Finding{
			File:     file,
			Line:     workflow.FindLine(content, "fetch-depth"),
			Severity: models.SeverityWarning,
			Rule:     r.Name(),
			Message:  "`fetch-depth: 0` clones the entire git history, which is slow for large repos",
			Fix:      "Use a specific depth or omit for shallow clone (default: 1)",
		})
	}

	return findings
}

// fullHistory matches a fetch-depth of numeric zero or the string "0".
func fullHistory(depth models.Value) bool {
	if f, ok := depth.Float(); ok {
		return f == 0
	}
	return depth.String() == "0"
}
