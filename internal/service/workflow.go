package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	gh "github.com/google/go-github/v80/github"
	"github.com/hashicorp/go-hclog"

	"github.com/tracker-tv/actions-lint/internal/github"
	"github.com/tracker-tv/actions-lint/models"
)

const workflowPattern = "*.{yml,yaml}"

// ErrPathNotFound is returned when the lint target does not exist.
var ErrPathNotFound = errors.New("path not found")

// WorkflowSource lists the workflow files to lint.
type WorkflowSource interface {
	List(ctx context.Context) ([]*models.WorkflowFile, error)
}

type localWorkflowSource struct {
	root   string
	ignore []string
	logger hclog.Logger
}

// NewLocalWorkflowSource reads workflows from root, which is either a single
// file or a directory whose immediate *.yml and *.yaml entries are linted.
func NewLocalWorkflowSource(root string, ignore []string, logger hclog.Logger) WorkflowSource {
	return &localWorkflowSource{root: root, ignore: ignore, logger: logger}
}

func (s *localWorkflowSource) List(ctx context.Context) ([]*models.WorkflowFile, error) {
	info, err := os.Stat(s.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, s.root)
	}
	if err != nil {
		return nil, fmt.Errorf("checking path %s: %w", s.root, err)
	}

	paths := []string{s.root}
	if info.IsDir() {
		matches, err := doublestar.Glob(os.DirFS(s.root), workflowPattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("listing workflows in %s: %w", s.root, err)
		}
		sort.Strings(matches)

		paths = paths[:0]
		for _, m := range matches {
			paths = append(paths, filepath.Join(s.root, m))
		}
	}

	var files []*models.WorkflowFile
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := filepath.Base(path)
		skip, err := isIgnored(s.ignore, name)
		if err != nil {
			return nil, err
		}
		if skip {
			s.logger.Debug("ignoring workflow", "file", path)
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("skipping unreadable workflow", "file", path, "error", err)
			continue
		}

		files = append(files, &models.WorkflowFile{
			Name:    name,
			Path:    path,
			Content: string(content),
		})
	}

	return files, nil
}

type remoteWorkflowSource struct {
	client github.Client
	repo   string
	path   string
	ref    string
	ignore []string
	logger hclog.Logger
}

// NewRemoteWorkflowSource reads workflows of repo through the GitHub contents
// API. An empty ref means the default branch.
func NewRemoteWorkflowSource(ghClient github.Client, repo, path, ref string, ignore []string, logger hclog.Logger) WorkflowSource {
	return &remoteWorkflowSource{
		client: ghClient,
		repo:   repo,
		path:   path,
		ref:    ref,
		ignore: ignore,
		logger: logger,
	}
}

func (s *remoteWorkflowSource) List(ctx context.Context) ([]*models.WorkflowFile, error) {
	file, contents, resp, err := s.client.GetContentsRaw(ctx, s.repo, s.path, s.ref)
	if err != nil {
		if resp != nil && resp.Response != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s/%s", ErrPathNotFound, s.repo, s.path)
		}
		return nil, fmt.Errorf("listing workflows of %s: %w", s.repo, err)
	}

	if file != nil {
		contents = []*gh.RepositoryContent{file}
	}

	var files []*models.WorkflowFile
	for _, c := range contents {
		if c.GetType() != "" && c.GetType() != "file" {
			continue
		}

		name := c.GetName()
		if file == nil {
			matched, err := doublestar.Match(workflowPattern, name)
			if err != nil {
				return nil, err
			}
			if !matched {
				continue
			}
		}

		skip, err := isIgnored(s.ignore, name)
		if err != nil {
			return nil, err
		}
		if skip {
			s.logger.Debug("ignoring workflow", "file", c.GetPath())
			continue
		}

		content := c
		if c.Content == nil {
			content, _, _, err = s.client.GetContentsRaw(ctx, s.repo, c.GetPath(), s.ref)
			if err != nil {
				s.logger.Warn("skipping unreadable workflow", "file", c.GetPath(), "error", err)
				continue
			}
			if content == nil {
				s.logger.Warn("skipping workflow that is no longer a file", "file", c.GetPath())
				continue
			}
		}

		decoded, err := content.GetContent()
		if err != nil {
			return nil, fmt.Errorf("decoding workflow content %s: %w", c.GetPath(), err)
		}

		files = append(files, &models.WorkflowFile{
			Name:    name,
			Path:    c.GetPath(),
			Content: decoded,
		})
	}

	return files, nil
}

func isIgnored(patterns []string, name string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("matching ignore pattern %s: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
