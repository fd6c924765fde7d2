package service

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	githubMocks "github.com/tracker-tv/actions-lint/internal/github/mocks"
	"github.com/tracker-tv/actions-lint/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLocalWorkflowSource_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "release.yaml"), "on: release\n")
	writeFile(t, filepath.Join(dir, "ci.yml"), "on: push\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a workflow\n")
	writeFile(t, filepath.Join(dir, "nested", "deep.yml"), "on: push\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.yml"), 0o755))

	files, err := NewLocalWorkflowSource(dir, nil, hclog.NewNullLogger()).List(context.Background())

	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "ci.yml", files[0].Name)
	assert.Equal(t, filepath.Join(dir, "ci.yml"), files[0].Path)
	assert.Equal(t, "on: push\n", files[0].Content)
	assert.Equal(t, "release.yaml", files[1].Name)
}

func TestLocalWorkflowSource_SingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workflow.txt")
	writeFile(t, path, "on: push\n")

	files, err := NewLocalWorkflowSource(path, nil, hclog.NewNullLogger()).List(context.Background())

	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, path, files[0].Path)
	assert.Equal(t, "workflow.txt", files[0].Name)
}

func TestLocalWorkflowSource_MissingPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	_, err := NewLocalWorkflowSource(path, nil, hclog.NewNullLogger()).List(context.Background())

	assert.ErrorIs(t, err, ErrPathNotFound)
	assert.Contains(t, err.Error(), path)
}

func TestLocalWorkflowSource_EmptyDirectory(t *testing.T) {
	files, err := NewLocalWorkflowSource(t.TempDir(), nil, hclog.NewNullLogger()).List(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, files)
}

func TestLocalWorkflowSource_Ignore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ci.yml"), "on: push\n")
	writeFile(t, filepath.Join(dir, "release-prod.yml"), "on: release\n")
	writeFile(t, filepath.Join(dir, "release-dev.yaml"), "on: release\n")

	files, err := NewLocalWorkflowSource(dir, []string{"release-*"}, hclog.NewNullLogger()).List(context.Background())

	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "ci.yml", files[0].Name)
}

func TestLocalWorkflowSource_InvalidIgnorePattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ci.yml"), "on: push\n")

	_, err := NewLocalWorkflowSource(dir, []string{"[oops"}, hclog.NewNullLogger()).List(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "matching ignore pattern")
}

func TestRemoteWorkflowSource_Directory(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	listing := []*gh.RepositoryContent{
		{Name: gh.Ptr("ci.yml"), Path: gh.Ptr(".github/workflows/ci.yml"), Type: gh.Ptr("file")},
		{Name: gh.Ptr("README.md"), Path: gh.Ptr(".github/workflows/README.md"), Type: gh.Ptr("file")},
		{Name: gh.Ptr("templates"), Path: gh.Ptr(".github/workflows/templates"), Type: gh.Ptr("dir")},
		{Name: gh.Ptr("nightly.yaml"), Path: gh.Ptr(".github/workflows/nightly.yaml"), Type: gh.Ptr("file")},
	}

	mockClient.
		EXPECT().
		GetContentsRaw(mock.Anything, "my-repo", ".github/workflows", "main").
		Once().
		Return(nil, listing, &gh.Response{}, nil)
	mockClient.
		EXPECT().
		GetContentsRaw(mock.Anything, "my-repo", ".github/workflows/ci.yml", "main").
		Once().
		Return(&gh.RepositoryContent{
			Encoding: gh.Ptr("base64"),
			Content:  gh.Ptr(base64.StdEncoding.EncodeToString([]byte("on: push\n"))),
		}, nil, &gh.Response{}, nil)
	mockClient.
		EXPECT().
		GetContentsRaw(mock.Anything, "my-repo", ".github/workflows/nightly.yaml", "main").
		Once().
		Return(nil, nil, nil, errors.New("boom"))

	src := NewRemoteWorkflowSource(mockClient, "my-repo", ".github/workflows", "main", nil, hclog.NewNullLogger())
	files, err := src.List(ctx)

	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "ci.yml", files[0].Name)
	assert.Equal(t, ".github/workflows/ci.yml", files[0].Path)
	assert.Equal(t, "on: push\n", files[0].Content)
}

func TestRemoteWorkflowSource_SingleFile(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		GetContentsRaw(mock.Anything, "my-repo", ".github/workflows/ci.yml", "").
		Once().
		Return(&gh.RepositoryContent{
			Name:    gh.Ptr("ci.yml"),
			Path:    gh.Ptr(".github/workflows/ci.yml"),
			Type:    gh.Ptr("file"),
			Content: gh.Ptr("on: push\n"),
		}, nil, &gh.Response{}, nil)

	src := NewRemoteWorkflowSource(mockClient, "my-repo", ".github/workflows/ci.yml", "", nil, hclog.NewNullLogger())
	files, err := src.List(ctx)

	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "on: push\n", files[0].Content)
}

func TestRemoteWorkflowSource_FileReplacedByDirectory(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		GetContentsRaw(mock.Anything, "my-repo", ".github/workflows", "").
		Once().
		Return(nil, []*gh.RepositoryContent{
			{Name: gh.Ptr("ci.yml"), Path: gh.Ptr(".github/workflows/ci.yml"), Type: gh.Ptr("file")},
		}, &gh.Response{}, nil)
	mockClient.
		EXPECT().
		GetContentsRaw(mock.Anything, "my-repo", ".github/workflows/ci.yml", "").
		Once().
		Return(nil, []*gh.RepositoryContent{
			{Name: gh.Ptr("nested.yml"), Path: gh.Ptr(".github/workflows/ci.yml/nested.yml"), Type: gh.Ptr("file")},
		}, &gh.Response{}, nil)

	src := NewRemoteWorkflowSource(mockClient, "my-repo", ".github/workflows", "", nil, hclog.NewNullLogger())

	var files []*models.WorkflowFile
	var err error
	require.NotPanics(t, func() { files, err = src.List(ctx) })
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestRemoteWorkflowSource_Ignore(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	listing := []*gh.RepositoryContent{
		{Name: gh.Ptr("release.yml"), Path: gh.Ptr(".github/workflows/release.yml"), Type: gh.Ptr("file")},
	}

	mockClient.
		EXPECT().
		GetContentsRaw(mock.Anything, "my-repo", ".github/workflows", "").
		Once().
		Return(nil, listing, &gh.Response{}, nil)

	src := NewRemoteWorkflowSource(mockClient, "my-repo", ".github/workflows", "", []string{"release.*"}, hclog.NewNullLogger())
	files, err := src.List(ctx)

	assert.NoError(t, err)
	assert.Empty(t, files)
}

func TestRemoteWorkflowSource_NotFound(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		GetContentsRaw(mock.Anything, "my-repo", ".github/workflows", "").
		Once().
		Return(nil, nil, &gh.Response{Response: &http.Response{StatusCode: http.StatusNotFound}}, errors.New("not found"))

	src := NewRemoteWorkflowSource(mockClient, "my-repo", ".github/workflows", "", nil, hclog.NewNullLogger())
	_, err := src.List(ctx)

	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestRemoteWorkflowSource_Error(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		GetContentsRaw(mock.Anything, "my-repo", ".github/workflows", "").
		Once().
		Return(nil, nil, nil, errors.New("api error"))

	src := NewRemoteWorkflowSource(mockClient, "my-repo", ".github/workflows", "", nil, hclog.NewNullLogger())
	_, err := src.List(ctx)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrPathNotFound)
	assert.Contains(t, err.Error(), "listing workflows of my-repo")
}
