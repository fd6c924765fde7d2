package github

import (
	"context"
	"net/http"

	gh "github.com/google/go-github/v80/github"
)

// RepositoriesAdapter is the subset of the go-github repositories service in use.
type RepositoriesAdapter interface {
	GetContents(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentGetOptions) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error)
}

// ChecksAdapter is the subset of the go-github checks service in use.
type ChecksAdapter interface {
	CreateCheckRun(ctx context.Context, owner, repo string, opts gh.CreateCheckRunOptions) (*gh.CheckRun, *gh.Response, error)
	UpdateCheckRun(ctx context.Context, owner, repo string, checkRunID int64, opts gh.UpdateCheckRunOptions) (*gh.CheckRun, *gh.Response, error)
}

type Client interface {
	GetContentsRaw(ctx context.Context, repo, path, ref string) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error)
	CreateCheckRun(ctx context.Context, repo string, opts gh.CreateCheckRunOptions) (*gh.CheckRun, error)
	UpdateCheckRun(ctx context.Context, repo string, checkRunID int64, opts gh.UpdateCheckRunOptions) (*gh.CheckRun, error)
}

type client struct {
	repositories RepositoriesAdapter
	checks       ChecksAdapter
	owner        string
}

type authTransport struct {
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

// New returns a client scoped to one repository owner. An empty token gives
// unauthenticated access, which is enough for public repositories.
func New(token, owner string) Client {
	var httpClient *http.Client
	if token != "" {
		httpClient = &http.Client{
			Transport: &authTransport{
				token: token,
			},
		}
	}
	ghClient := gh.NewClient(httpClient)
	return &client{
		repositories: ghClient.Repositories,
		checks:       ghClient.Checks,
		owner:        owner,
	}
}
