package worktree

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// Cleanup removes the worktree at wtPath. It is strictly best-effort: on a
// failed `worktree remove` it falls back to deleting the directory and
// pruning the registry, and it never returns an error — it commonly runs
// during session teardown, where a failure must not block shutdown.
func (s *Service) Cleanup(ctx context.Context, repoPath, wtPath string) {
	unlock := s.locks.lock(normalizePath(wtPath))
	defer unlock()

	err := s.git.RemoveWorktree(ctx, repoPath, wtPath)
	if err == nil {
		return
	}
	s.bestEffort("RemoveWorktree", err)

	s.bestEffort("RemoveAll", os.RemoveAll(wtPath))
	s.bestEffort("PruneWorktrees", s.git.PruneWorktrees(ctx, repoPath))
}

// CleanupAll removes every worktree this service manages for the
// repository: non-main entries under the project-local .worktrees directory
// or under this repository's central namespace. Worktrees created by other
// tools, or by the user outside these roots, are never touched.
func (s *Service) CleanupAll(ctx context.Context, repoPath string) {
	worktrees, err := s.git.ListWorktrees(ctx, repoPath)
	if err != nil {
		s.bestEffort("ListWorktrees", err)
		return
	}

	projectRoot := filepath.Join(repoPath, projectDirName)
	centralRoot := ""
	if s.cp.CentralDir != "" {
		centralRoot = filepath.Join(s.cp.CentralDir, repoKey(repoPath))
	}

	for _, wt := range worktrees {
		if wt.IsMain {
			continue
		}
		if !pathWithin(projectRoot, wt.Path) && !pathWithin(centralRoot, wt.Path) {
			continue
		}
		s.Cleanup(ctx, repoPath, wt.Path)
	}
}

// pathWithin reports whether path is inside root, tolerating mixed
// separator styles in either argument.
func pathWithin(root, path string) bool {
	root = normalizePath(root)
	path = normalizePath(path)
	return root != "" && strings.HasPrefix(path, root+"/")
}
