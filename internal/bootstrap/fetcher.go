package bootstrap

import (
	"context"

	"github.com/conneroisu/expressor/internal/errors"
	"github.com/conneroisu/expressor/internal/runner"
	"github.com/go-git/go-git/v5"
)

// Fetcher downloads the template repository into dir.
type Fetcher interface {
	Fetch(ctx context.Context, url, dir string) error
}

// CommandFetcher shells out to `git clone --depth 1 --quiet`.
type CommandFetcher struct {
	runner runner.Runner
}

// NewCommandFetcher creates a fetcher that runs git through r.
func NewCommandFetcher(r runner.Runner) *CommandFetcher {
	return &CommandFetcher{runner: r}
}

// Fetch implements Fetcher.
func (f *CommandFetcher) Fetch(ctx context.Context, url, dir string) error {
	_, err := f.runner.Run(ctx, "", "git", "clone", "--depth", "1", "--quiet", url, dir)
	return err
}

// GitFetcher clones in-process with go-git, for hosts without a git binary.
// It always writes to the operating system's file system.
type GitFetcher struct{}

// Fetch implements Fetcher.
func (GitFetcher) Fetch(ctx context.Context, url, dir string) error {
	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:          url,
		Depth:        1,
		SingleBranch: true,
		Tags:         git.NoTags,
	})
	if err != nil {
		return errors.NewExternalProcessError(errors.ErrCodeCloneFailed, "git clone "+url, "", err)
	}

	return nil
}
