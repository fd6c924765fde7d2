package service

import (
	"context"
	"errors"
	"runtime"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/tracker-tv/actions-lint/internal/rules"
	"github.com/tracker-tv/actions-lint/internal/workflow"
	"github.com/tracker-tv/actions-lint/models"
)

// ParseErrorRule is the rule id of the finding emitted for a file that is not valid YAML.
const ParseErrorRule = "parse-error"

type LintService interface {
	LintFile(file *models.WorkflowFile) []models.Finding
	LintAll(ctx context.Context, files []*models.WorkflowFile) ([]models.Finding, error)
}

type lintService struct {
	checks []rules.Check
	logger hclog.Logger
}

func NewLintService(checks []rules.Check, logger hclog.Logger) LintService {
	return &lintService{checks: checks, logger: logger}
}

// LintFile runs every check against one file. A file that does not parse
// yields a single parse-error finding and no check runs for it.
func (s *lintService) LintFile(file *models.WorkflowFile) []models.Finding {
	doc, err := workflow.Parse(file.Content)
	if err != nil {
		cause := err
		var parseErr *workflow.ParseError
		if errors.As(err, &parseErr) {
			cause = parseErr.Err
		}
		s.logger.Debug("workflow did not parse", "file", file.Path, "error", cause)
		return []models.Finding{{
			File:     file.Path,
			Line:     1,
			Severity: models.SeverityError,
			Rule:     ParseErrorRule,
			Message:  "Failed to parse: " + cause.Error(),
		}}
	}

	var findings []models.Finding
	for _, check := range s.checks {
		findings = append(findings, check.Check(file.Path, file.Content, doc)...)
	}
	s.logger.Debug("linted workflow", "file", file.Path, "findings", len(findings))
	return findings
}

// LintAll lints files concurrently and returns the findings grouped in the
// order the files were given.
func (s *lintService) LintAll(ctx context.Context, files []*models.WorkflowFile) ([]models.Finding, error) {
	perFile := make([][]models.Finding, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			perFile[i] = s.LintFile(file)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var findings []models.Finding
	for _, f := range perFile {
		findings = append(findings, f...)
	}
	return findings, nil
}
