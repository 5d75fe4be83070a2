package worktree

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ogaworks/eda/internal/git"
)

// Prepare returns a working directory for the given branch, creating or
// reusing a worktree as needed. It returns "" (and no error) when no
// isolation is required: an empty branch, or the branch already checked out
// in the main working copy.
//
// Prepare is idempotent and serialized per computed worktree path, so
// concurrent calls for the same (repo, branch) pair cannot race each other
// into duplicate `worktree add` attempts.
func (s *Service) Prepare(ctx context.Context, repoPath, branch string) (string, error) {
	if branch == "" {
		return "", nil
	}
	if err := git.ValidateBranchName(branch); err != nil {
		return "", err
	}

	current, err := s.git.CurrentBranch(ctx, repoPath)
	if err != nil {
		return "", fmt.Errorf("resolving current branch: %w", err)
	}
	if branch == current {
		return "", nil
	}

	wtPath, err := s.Path(repoPath, branch)
	if err != nil {
		return "", err
	}

	unlock := s.locks.lock(wtPath)
	defer unlock()

	if err := os.MkdirAll(filepath.Dir(wtPath), 0755); err != nil {
		return "", fmt.Errorf("creating worktree parent: %w", err)
	}

	reused, err := s.reuseExisting(ctx, repoPath, wtPath)
	if err != nil {
		return "", err
	}
	if reused {
		return wtPath, nil
	}

	if err := s.create(ctx, repoPath, wtPath, branch); err != nil {
		return "", err
	}
	return wtPath, nil
}

// reuseExisting reports whether the registry already has a live worktree at
// wtPath. A registered entry whose directory was deleted externally is
// pruned so creation can proceed on a clean slate.
func (s *Service) reuseExisting(ctx context.Context, repoPath, wtPath string) (bool, error) {
	worktrees, err := s.git.ListWorktrees(ctx, repoPath)
	if err != nil {
		return false, fmt.Errorf("listing worktrees: %w", err)
	}
	for _, wt := range worktrees {
		if !samePath(wt.Path, wtPath) {
			continue
		}
		if dirExists(wtPath) {
			return true, nil
		}
		if err := s.git.PruneWorktrees(ctx, repoPath); err != nil {
			return false, fmt.Errorf("pruning stale worktree: %w", err)
		}
		return false, nil
	}
	return false, nil
}

// create adds the worktree, choosing between attaching an existing branch
// and creating a new one rooted at HEAD, with recovery retries for the two
// failure modes git only reports through its error text.
func (s *Service) create(ctx context.Context, repoPath, wtPath, branch string) error {
	exists, err := s.git.BranchExists(ctx, repoPath, branch)
	if err != nil {
		return fmt.Errorf("checking branch %q: %w", branch, err)
	}

	var remoteRef string
	if !exists {
		// Errors are treated as "no remote match": remote lookup refines
		// creation but must not block it.
		remoteRef, err = s.git.RemoteBranchRef(ctx, repoPath, branch)
		if err != nil {
			s.bestEffort("RemoteBranchRef", err)
			remoteRef = ""
		}
	}

	if exists || remoteRef != "" {
		err = s.git.AddWorktree(ctx, repoPath, wtPath, branch)
	} else {
		err = s.git.AddWorktreeNewBranch(ctx, repoPath, wtPath, branch, "HEAD")
	}
	if err == nil {
		return nil
	}

	// git exposes these conditions only as prose, not as exit codes.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "already checked out"):
		// Branch is attached to another worktree; a detached checkout
		// still gives the session an isolated directory.
		return s.git.AddWorktreeDetached(ctx, repoPath, wtPath, branch)
	case strings.Contains(msg, "already exists") && remoteRef != "":
		// Local existence checks can disagree with git's own view of
		// tracking branches; creating an explicit tracking branch wins.
		return s.git.AddWorktreeTrack(ctx, repoPath, wtPath, branch, remoteRef)
	default:
		return err
	}
}

// List returns the current worktree registry for the repository.
func (s *Service) List(ctx context.Context, repoPath string) ([]git.Worktree, error) {
	return s.git.ListWorktrees(ctx, repoPath)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// samePath compares paths regardless of separator style; git's porcelain
// output may use forward slashes where the host uses backslashes.
func samePath(a, b string) bool {
	return normalizePath(a) == normalizePath(b)
}

func normalizePath(p string) string {
	return strings.TrimRight(strings.ReplaceAll(p, "\\", "/"), "/")
}
