package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	gh "github.com/google/go-github/v80/github"
	"github.com/hashicorp/go-hclog"

	"github.com/tracker-tv/actions-lint/internal/github"
	"github.com/tracker-tv/actions-lint/internal/report"
	"github.com/tracker-tv/actions-lint/models"
)

const (
	checkRunName = "actions-lint"
	// GitHub accepts at most 50 annotations per check run request.
	maxAnnotationsPerRequest = 50
)

var (
	dataEscaper     = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
	propertyEscaper = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A", ":", "%3A", ",", "%2C")
)

// Publisher forwards findings to an annotation channel.
type Publisher interface {
	Publish(ctx context.Context, findings []models.Finding) error
}

type commandPublisher struct {
	out io.Writer
}

// NewCommandPublisher writes findings as GitHub Actions workflow commands,
// which the runner turns into annotations.
func NewCommandPublisher(out io.Writer) Publisher {
	return &commandPublisher{out: out}
}

func (p *commandPublisher) Publish(_ context.Context, findings []models.Finding) error {
	for _, f := range findings {
		if _, err := fmt.Fprintln(p.out, FormatCommand(f)); err != nil {
			return fmt.Errorf("writing annotation: %w", err)
		}
	}
	return nil
}

// FormatCommand renders a finding as an ::error, ::warning or ::notice command.
func FormatCommand(f models.Finding) string {
	return fmt.Sprintf("::%s file=%s,line=%d::%s",
		commandLevel(f.Severity),
		propertyEscaper.Replace(f.File),
		f.Line,
		dataEscaper.Replace(annotationMessage(f)))
}

// Fail marks the job step as failed.
func Fail(out io.Writer, message string) error {
	_, err := fmt.Fprintf(out, "::error::%s\n", dataEscaper.Replace(message))
	return err
}

func annotationMessage(f models.Finding) string {
	msg := fmt.Sprintf("[%s] %s", f.Rule, f.Message)
	if f.Fix != "" {
		msg += " — " + f.Fix
	}
	return msg
}

func commandLevel(severity models.Severity) string {
	switch severity {
	case models.SeverityError:
		return "error"
	case models.SeverityWarning:
		return "warning"
	default:
		return "notice"
	}
}

type checkRunPublisher struct {
	client  github.Client
	repo    string
	headSHA string
	logger  hclog.Logger
}

// NewCheckRunPublisher reports findings as a completed check run on headSHA.
func NewCheckRunPublisher(client github.Client, repo, headSHA string, logger hclog.Logger) Publisher {
	return &checkRunPublisher{
		client:  client,
		repo:    repo,
		headSHA: headSHA,
		logger:  logger,
	}
}

func (p *checkRunPublisher) Publish(ctx context.Context, findings []models.Finding) error {
	run, err := p.client.CreateCheckRun(ctx, p.repo, gh.CreateCheckRunOptions{
		Name:    checkRunName,
		HeadSHA: p.headSHA,
		Status:  gh.Ptr("in_progress"),
	})
	if err != nil {
		return fmt.Errorf("creating check run: %w", err)
	}

	summary := report.New(findings).Summary
	conclusion := "success"
	if summary.Failed {
		conclusion = "failure"
	}

	annotations := make([]*gh.CheckRunAnnotation, 0, len(findings))
	for _, f := range findings {
		annotation := &gh.CheckRunAnnotation{
			Path:            gh.Ptr(f.File),
			StartLine:       gh.Ptr(f.Line),
			EndLine:         gh.Ptr(f.Line),
			AnnotationLevel: gh.Ptr(checkRunLevel(f.Severity)),
			Title:           gh.Ptr(f.Rule),
			Message:         gh.Ptr(f.Message),
		}
		if f.Fix != "" {
			annotation.RawDetails = gh.Ptr(f.Fix)
		}
		annotations = append(annotations, annotation)
	}

	for start := 0; start == 0 || start < len(annotations); start += maxAnnotationsPerRequest {
		end := min(start+maxAnnotationsPerRequest, len(annotations))

		opts := gh.UpdateCheckRunOptions{
			Name: checkRunName,
			Output: &gh.CheckRunOutput{
				Title:       gh.Ptr(checkRunName),
				Summary:     gh.Ptr(summary.String()),
				Annotations: annotations[start:end],
			},
		}
		if end == len(annotations) {
			opts.Status = gh.Ptr("completed")
			opts.Conclusion = gh.Ptr(conclusion)
		}

		if _, err := p.client.UpdateCheckRun(ctx, p.repo, run.GetID(), opts); err != nil {
			return fmt.Errorf("updating check run %d: %w", run.GetID(), err)
		}
	}

	p.logger.Info("published check run", "id", run.GetID(), "annotations", len(annotations), "conclusion", conclusion)
	return nil
}

func checkRunLevel(severity models.Severity) string {
	switch severity {
	case models.SeverityError:
		return "failure"
	case models.SeverityWarning:
		return "warning"
	default:
		return "notice"
	}
}
