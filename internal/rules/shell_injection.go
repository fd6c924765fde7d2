package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tracker-tv/actions-lint/models"
)

// topLevelKey matches a mapping key at column 0, which ends a run block.
var topLevelKey = regexp.MustCompile(`^\w+:`)

type scanState int

const (
	outsideRun scanState = iota
	insideRun
)

// ShellInjection reports untrusted event fields interpolated straight into a
// run script. Run blocks are tracked per line with a two-state scanner rather
// than through the parsed document: a run key enters the block and the next
// unindented key leaves it. Deeper block-scalar structure is not modelled.
type ShellInjection struct {
	pattern *regexp.Regexp
}

func NewShellInjection(pattern *regexp.Regexp) *ShellInjection {
	return &ShellInjection{pattern: pattern}
}

func (r *ShellInjection) Name() string {
	return "shell-injection"
}

func (r *ShellInjection) Description() string {
	return "Untrusted event data must not be interpolated into run scripts"
}

func (r *ShellInjection) Check(file, content string, _ *models.Workflow) []models.Finding {
	if r.pattern == nil {
		return nil
	}

	var findings []models.Finding
	state := outsideRun

	for i, line := range lines(content) {
		switch {
		case startsRunKey(line):
			state = insideRun
		case topLevelKey.MatchString(line):
			state = outsideRun
		}

		if state != insideRun || isComment(line) {
			continue
		}

		for _, match := range r.pattern.FindAllStringSubmatch(line, -1) {
			findings = append(findings, models.Finding{
				File:     file,
				Line:     i + 1,
				Severity: models.SeverityError,
				Rule:     r.Name(),
				Message:  fmt.Sprintf("Potential shell injection via `${{ %s }}` in run step", match[1]),
				Fix:      "Pass as an environment variable instead: `env: { VALUE: \"${{ ... }}\" }` then use `$VALUE`",
			})
		}
	}

	return findings
}

func startsRunKey(line string) bool {
	trimmed := strings.TrimSpace(line)
	if rest, ok := strings.CutPrefix(trimmed, "-"); ok {
		trimmed = strings.TrimSpace(rest)
	}
	return strings.HasPrefix(trimmed, "run:") || strings.HasPrefix(trimmed, "run :")
}
