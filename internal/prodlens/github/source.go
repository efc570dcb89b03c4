// Package github loads app configurations stored in GitHub repositories.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"

	"github.com/build-flow-labs/prodlens/appconfig"
)

// ErrNotAFile is returned when the requested path is a directory.
var ErrNotAFile = errors.New("path is not a file")

// Source fetches app configurations through the GitHub contents API.
type Source struct {
	client *github.Client
}

// NewSource creates a Source. An empty token makes unauthenticated requests,
// which only reach public repositories.
func NewSource(ctx context.Context, token string) *Source {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(ctx, ts)
	}
	return &Source{client: github.NewClient(hc)}
}

// NewSourceWithClient wraps an existing client (for testing or GitHub
// Enterprise).
func NewSourceWithClient(client *github.Client) *Source {
	return &Source{client: client}
}

// SplitRepo splits "owner/name" into its parts.
func SplitRepo(full string) (owner, repo string, err error) {
	owner, repo, ok := strings.Cut(full, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("repository must be owner/name, got %q", full)
	}
	return owner, repo, nil
}

// Fetch returns the raw content of path at ref. An empty ref means the
// default branch.
func (s *Source) Fetch(ctx context.Context, owner, repo, path, ref string) ([]byte, error) {
	var opts *github.RepositoryContentGetOptions
	if ref != "" {
		opts = &github.RepositoryContentGetOptions{Ref: ref}
	}

	file, _, _, err := s.client.Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		return nil, fmt.Errorf("fetching %s/%s/%s: %w", owner, repo, path, err)
	}
	if file == nil {
		return nil, fmt.Errorf("%s/%s/%s: %w", owner, repo, path, ErrNotAFile)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return []byte(content), nil
}

// Load fetches path and parses it as an app configuration. The format follows
// the file extension.
func (s *Source) Load(ctx context.Context, owner, repo, path, ref string) (appconfig.AppConfig, error) {
	data, err := s.Fetch(ctx, owner, repo, path, ref)
	if err != nil {
		return appconfig.AppConfig{}, err
	}
	cfg, err := appconfig.Parse(data, appconfig.FormatFromPath(path))
	if err != nil {
		return appconfig.AppConfig{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
