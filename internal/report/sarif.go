package report

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/tracker-tv/actions-lint/models"
)

const informationURI = "https://github.com/tracker-tv/actions-lint"

type sarifRenderer struct {
	rules   map[string]string
	version string
}

func (s *sarifRenderer) Render(w io.Writer, r *Report) error {
	doc, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("creating SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI("actions-lint", informationURI)
	if s.version != "" {
		run.Tool.Driver.Version = &s.version
	}

	for _, f := range r.Findings() {
		rule := run.AddRule(f.Rule)
		if desc, ok := s.rules[f.Rule]; ok {
			rule.WithDescription(desc)
		}

		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(f.File)).
				WithRegion(sarif.NewRegion().WithStartLine(f.Line)),
		)

		message := f.Message
		if f.Fix != "" {
			message += ". Fix: " + f.Fix
		}

		result := sarif.NewRuleResult(rule.ID).
			WithMessage(sarif.NewTextMessage(message)).
			WithLevel(sarifLevel(f.Severity)).
			WithLocations([]*sarif.Location{location})
		run.AddResult(result)
	}
	doc.AddRun(run)

	return doc.PrettyWrite(w)
}

func sarifLevel(severity models.Severity) string {
	switch severity {
	case models.SeverityError:
		return "error"
	case models.SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}
