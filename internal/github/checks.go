package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) CreateCheckRun(ctx context.Context, repo string, opts gh.CreateCheckRunOptions) (*gh.CheckRun, error) {
	run, _, err := c.checks.CreateCheckRun(ctx, c.owner, repo, opts)
	return run, err
}

func (c *client) UpdateCheckRun(ctx context.Context, repo string, checkRunID int64, opts gh.UpdateCheckRunOptions) (*gh.CheckRun, error) {
	run, _, err := c.checks.UpdateCheckRun(ctx, c.owner, repo, checkRunID, opts)
	return run, err
}
