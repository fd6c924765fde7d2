package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	gh "github.com/google/go-github/v80/github"
)

const (
	maxRetries = 5
	baseDelay  = 1 * time.Second
)

func (c *client) GetContentsRaw(ctx context.Context, repo, path, ref string) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error) {
	opts := &gh.RepositoryContentGetOptions{Ref: ref}

	var (
		file *gh.RepositoryContent
		dir  []*gh.RepositoryContent
	)
	resp, err := withRateLimitRetry(ctx, func() (*gh.Response, error) {
		var (
			resp *gh.Response
			err  error
		)
		file, dir, resp, err = c.repositories.GetContents(ctx, c.owner, repo, path, opts)
		return resp, err
	})
	if err != nil {
		return nil, nil, resp, err
	}
	return file, dir, resp, nil
}

// withRateLimitRetry retries call while GitHub answers with a rate limit
// error, waiting until the limit resets or backing off exponentially.
func withRateLimitRetry(ctx context.Context, call func() (*gh.Response, error)) (*gh.Response, error) {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		resp, err := call()
		if err == nil {
			return resp, nil
		}

		var rateLimitErr *gh.RateLimitError
		if !errors.As(err, &rateLimitErr) {
			return resp, err
		}

		if attempt == maxRetries {
			return resp, fmt.Errorf("max retries reached: %w", err)
		}

		waitDuration := time.Until(rateLimitErr.Rate.Reset.Time)
		if waitDuration < 0 {
			waitDuration = baseDelay * time.Duration(1<<attempt)
		}

		select {
		case <-time.After(waitDuration):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("unexpected retry loop exit")
}
