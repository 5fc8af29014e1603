package git

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	ggerrors "gg.dev/gg/internal/errors"
)

// Repository wraps a go-git repository
type Repository struct {
	*gogit.Repository
	path string
}

// OpenRepository opens the git repository containing path
func OpenRepository(path string) (*Repository, error) {
	if path == "" {
		path = "."
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &Repository{
		Repository: repo,
		path:       absPath,
	}, nil
}

// GetRepoRoot returns the root directory of the repository containing path
func GetRepoRoot(path string) (string, error) {
	repo, err := OpenRepository(path)
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}

// GetBranchNames returns all local branch names, sorted
func (r *Repository) GetBranchNames() ([]string, error) {
	branches, err := r.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	sort.Strings(names)
	return names, nil
}

// GetCurrentBranch returns the current branch name
func (r *Repository) GetCurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", ggerrors.ErrNotOnBranch
	}

	return head.Name().Short(), nil
}

// ResolveHash resolves a branch, remote-tracking branch or revision to a commit hash
func (r *Repository) ResolveHash(ref string) (plumbing.Hash, error) {
	hash, err := r.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return plumbing.ZeroHash, ggerrors.NewRefNotFoundError(ref)
	}
	return *hash, nil
}

// The repository is reopened for every read. Refs and objects are written by
// the git binary between reads, and go-git caches its pack index per handle.
func (r *realRunner) open() (*Repository, error) {
	return OpenRepository(r.cmd.WorkingDir())
}

func (r *realRunner) CurrentBranch(_ context.Context) (string, error) {
	repo, err := r.open()
	if err != nil {
		return "", err
	}
	return repo.GetCurrentBranch()
}

func (r *realRunner) ListBranches(_ context.Context) ([]string, error) {
	repo, err := r.open()
	if err != nil {
		return nil, err
	}
	return repo.GetBranchNames()
}

func (r *realRunner) RefExists(_ context.Context, ref string) bool {
	repo, err := r.open()
	if err != nil {
		return false
	}
	_, err = repo.ResolveHash(ref)
	return err == nil
}

func (r *realRunner) CommitHash(_ context.Context, ref string) (string, error) {
	repo, err := r.open()
	if err != nil {
		return "", err
	}
	hash, err := repo.ResolveHash(ref)
	if err != nil {
		return "", err
	}
	return hash.String(), nil
}

// CommitAuthorTime returns the author timestamp of the commit ref points at
func (r *realRunner) CommitAuthorTime(_ context.Context, ref string) (time.Time, error) {
	repo, err := r.open()
	if err != nil {
		return time.Time{}, err
	}
	hash, err := repo.ResolveHash(ref)
	if err != nil {
		return time.Time{}, err
	}
	commit, err := repo.CommitObject(hash)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get commit %s: %w", ref, err)
	}
	return commit.Author.When, nil
}

func (r *realRunner) GitDir(ctx context.Context) (string, error) {
	dir, err := r.cmd.Run(ctx, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", fmt.Errorf("failed to locate git dir: %w", err)
	}
	return dir, nil
}
