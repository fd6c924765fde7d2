package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/tracker-tv/actions-lint/internal/config"
	"github.com/tracker-tv/actions-lint/internal/github"
	"github.com/tracker-tv/actions-lint/internal/logging"
	"github.com/tracker-tv/actions-lint/internal/orchestrator"
	"github.com/tracker-tv/actions-lint/internal/policy"
	"github.com/tracker-tv/actions-lint/internal/report"
	"github.com/tracker-tv/actions-lint/internal/rules"
	"github.com/tracker-tv/actions-lint/internal/service"
)

const (
	appName       = "actions-lint"
	defaultTarget = ".github/workflows"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

type options struct {
	format   string
	noColor  bool
	ignore   []string
	repo     string
	ref      string
	policy   string
	logLevel string
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

func Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	exitCode := orchestrator.ExitOK

	cmd := newRootCommand(out, errOut, &exitCode)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return orchestrator.ExitFailure
	}
	return exitCode
}

func newRootCommand(out, errOut io.Writer, exitCode *int) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   appName + " [path]",
		Short: "Lint GitHub Actions workflow files",
		Long: `actions-lint checks GitHub Actions workflows for security risks, reliability
hazards and deprecated features. The path is a workflow file or a directory
whose *.yml and *.yaml entries are linted (default: .github/workflows).`,
		Example: `  actions-lint
  actions-lint .github/workflows/
  actions-lint my-workflow.yml
  actions-lint --format sarif > results.sarif
  actions-lint --repo octo-org/octo-repo --ref main`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := run(cmd, args, opts, out, errOut)
			*exitCode = code
			return err
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetVersionTemplate("{{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", "", "output format: text, json or sarif")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.StringSliceVar(&opts.ignore, "ignore", nil, "glob patterns of workflow file names to skip")
	flags.StringVar(&opts.repo, "repo", "", "lint a remote GitHub repository (owner/name) instead of local files")
	flags.StringVar(&opts.ref, "ref", "", "git ref to read with --repo (default: the default branch)")
	flags.StringVar(&opts.policy, "policy", "", "JSON file replacing the built-in policy tables")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn or error")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options, out, errOut io.Writer) (int, error) {
	cfg, err := config.Load()
	if err != nil {
		return orchestrator.ExitFailure, fmt.Errorf("loading config: %w", err)
	}

	level := opts.logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	logger := logging.NewWithOutput(appName, level, errOut)

	target := defaultTarget
	switch {
	case len(args) == 1:
		target = args[0]
	case cfg.GithubActions && cfg.Path != "":
		target = cfg.Path
	}

	format := opts.format
	if format == "" {
		format = cfg.Format
	}

	tables, err := loadPolicy(opts.policy)
	if err != nil {
		return orchestrator.ExitFailure, err
	}
	checks := rules.Default(tables)

	renderer, err := report.NewRenderer(format, report.Options{
		NoColor: opts.noColor,
		Rules:   descriptions(checks),
		Version: Version,
	})
	if err != nil {
		return orchestrator.ExitFailure, err
	}

	source, err := newSource(cfg, opts, target, logger)
	if err != nil {
		return orchestrator.ExitFailure, err
	}

	runner := orchestrator.NewRunner(source, service.NewLintService(checks, logger), renderer, out, logger)
	if cfg.GithubActions {
		runner.WithPublishers(service.NewCommandPublisher(out))
		if publisher := newCheckRunPublisher(cfg, logger); publisher != nil {
			runner.WithPublishers(publisher)
		}
		runner.WithGitHubActions(cfg.FailOnError())
	}

	code, err := runner.Run(cmd.Context())
	if errors.Is(err, service.ErrPathNotFound) {
		fmt.Fprintf(errOut, "Error: Path not found: %s\n", target)
		return code, nil
	}
	return code, err
}

func loadPolicy(path string) (*policy.Tables, error) {
	if path == "" {
		return policy.Default()
	}
	return policy.Load(path)
}

func newSource(cfg *config.Config, opts *options, target string, logger hclog.Logger) (service.WorkflowSource, error) {
	if opts.repo == "" {
		return service.NewLocalWorkflowSource(target, opts.ignore, logger), nil
	}

	owner, name, ok := strings.Cut(opts.repo, "/")
	if !ok || owner == "" || name == "" {
		return nil, fmt.Errorf("invalid repository %q, expected owner/name", opts.repo)
	}

	client := github.New(cfg.GithubToken, owner)
	return service.NewRemoteWorkflowSource(client, name, target, opts.ref, opts.ignore, logger), nil
}

func newCheckRunPublisher(cfg *config.Config, logger hclog.Logger) service.Publisher {
	if !cfg.CheckRun() {
		return nil
	}

	owner, name := cfg.RepositoryParts()
	if cfg.GithubToken == "" || owner == "" || cfg.HeadSHA == "" {
		logger.Warn("check-run requested but GITHUB_TOKEN, GITHUB_REPOSITORY or GITHUB_SHA is missing")
		return nil
	}

	return service.NewCheckRunPublisher(github.New(cfg.GithubToken, owner), name, cfg.HeadSHA, logger)
}

func descriptions(checks []rules.Check) map[string]string {
	desc := make(map[string]string, len(checks)+1)
	for _, c := range checks {
		desc[c.Name()] = c.Description()
	}
	desc[service.ParseErrorRule] = "Workflow files must be valid YAML"
	return desc
}
