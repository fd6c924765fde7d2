package orchestrator

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/tracker-tv/actions-lint/internal/report"
	"github.com/tracker-tv/actions-lint/internal/service"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

const failureMessage = "Workflow lint errors found"

// Runner lints every workflow of a source, renders the report and decides
// the exit code.
type Runner struct {
	source     service.WorkflowSource
	linter     service.LintService
	renderer   report.Renderer
	publishers []service.Publisher
	out        io.Writer
	logger     hclog.Logger

	githubActions bool
	failOnError   bool
}

func NewRunner(source service.WorkflowSource, linter service.LintService, renderer report.Renderer, out io.Writer, logger hclog.Logger) *Runner {
	return &Runner{
		source:      source,
		linter:      linter,
		renderer:    renderer,
		out:         out,
		logger:      logger,
		failOnError: true,
	}
}

// WithPublishers adds annotation channels that receive every finding.
func (r *Runner) WithPublishers(publishers ...service.Publisher) *Runner {
	r.publishers = append(r.publishers, publishers...)
	return r
}

// WithGitHubActions switches failure reporting to workflow commands. With
// failOnError false, error findings no longer fail the run.
func (r *Runner) WithGitHubActions(failOnError bool) *Runner {
	r.githubActions = true
	r.failOnError = failOnError
	return r
}

func (r *Runner) Run(ctx context.Context) (int, error) {
	files, err := r.source.List(ctx)
	if err != nil {
		return ExitFailure, fmt.Errorf("listing workflows: %w", err)
	}

	if len(files) == 0 {
		if _, err := fmt.Fprintln(r.out, "No workflow files found."); err != nil {
			return ExitFailure, err
		}
		return ExitOK, nil
	}

	r.logger.Debug("linting workflows", "count", len(files))

	findings, err := r.linter.LintAll(ctx, files)
	if err != nil {
		return ExitFailure, fmt.Errorf("linting workflows: %w", err)
	}

	rep := report.New(findings)
	if err := r.renderer.Render(r.out, rep); err != nil {
		return ExitFailure, fmt.Errorf("rendering report: %w", err)
	}

	for _, p := range r.publishers {
		if err := p.Publish(ctx, rep.Findings()); err != nil {
			r.logger.Error("publishing annotations", "error", err)
		}
	}

	if !rep.Failed() {
		return ExitOK, nil
	}

	if !r.githubActions {
		return ExitFailure, nil
	}

	if !r.failOnError {
		r.logger.Info("error findings present, fail-on-error is disabled", "errors", rep.Summary.Errors)
		return ExitOK, nil
	}

	if err := service.Fail(r.out, failureMessage); err != nil {
		return ExitFailure, err
	}
	return ExitFailure, nil
}
