// Package report aggregates findings and renders them for people and tools.
package report

import (
	"fmt"
	"sort"

	"github.com/tracker-tv/actions-lint/models"
)

type FileFindings struct {
	File     string           `json:"file"`
	Findings []models.Finding `json:"findings"`
}

type Summary struct {
	Errors   int  `json:"errors"`
	Warnings int  `json:"warnings"`
	Info     int  `json:"info"`
	Failed   bool `json:"failed"`
}

func (s Summary) String() string {
	return fmt.Sprintf("Found: %d errors, %d warnings, %d info", s.Errors, s.Warnings, s.Info)
}

// Report holds findings grouped by file in order of first appearance, each
// group sorted by line.
type Report struct {
	Files   []FileFindings `json:"files"`
	Summary Summary        `json:"summary"`
}

func New(findings []models.Finding) *Report {
	r := &Report{Files: []FileFindings{}}
	index := make(map[string]int)

	for _, f := range findings {
		i, ok := index[f.File]
		if !ok {
			i = len(r.Files)
			index[f.File] = i
			r.Files = append(r.Files, FileFindings{File: f.File})
		}
		r.Files[i].Findings = append(r.Files[i].Findings, f)

		switch f.Severity {
		case models.SeverityError:
			r.Summary.Errors++
		case models.SeverityWarning:
			r.Summary.Warnings++
		case models.SeverityInfo:
			r.Summary.Info++
		}
	}

	for _, file := range r.Files {
		sort.SliceStable(file.Findings, func(a, b int) bool {
			return file.Findings[a].Line < file.Findings[b].Line
		})
	}
	r.Summary.Failed = r.Summary.Errors > 0

	return r
}

// Failed reports whether any finding has error severity.
func (r *Report) Failed() bool {
	return r.Summary.Failed
}

func (r *Report) Empty() bool {
	return len(r.Files) == 0
}

// Findings returns every finding in report order.
func (r *Report) Findings() []models.Finding {
	var all []models.Finding
	for _, file := range r.Files {
		all = append(all, file.Findings...)
	}
	return all
}
