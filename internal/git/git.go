// Package git drives the system git binary for branch and worktree
// operations. It parses git's machine-readable output only; the object
// model, merging, and network transport stay inside git itself.
package git

import "context"

//go:generate moq -out git_mock.go . Client

// DetachedBranch is the branch value reported for a worktree whose HEAD
// points at a commit rather than a branch ref.
const DetachedBranch = "detached"

// Querier abstracts read-only repository lookups.
type Querier interface {
	// RepoRoot returns the top-level directory of the repository containing dir.
	RepoRoot(ctx context.Context, dir string) (string, error)
	// CurrentBranch returns the short name of the checked-out branch, or
	// the literal "HEAD" when the repository is in detached-HEAD state.
	CurrentBranch(ctx context.Context, dir string) (string, error)
}

// BranchReader abstracts read-only branch operations.
type BranchReader interface {
	// Branches enumerates local and remote-tracking branches with
	// best-effort commit and upstream metadata.
	Branches(ctx context.Context, dir string) ([]Branch, error)
	// BranchExists reports whether a local branch ref exists. A negative
	// answer from git is not an error.
	BranchExists(ctx context.Context, dir, name string) (bool, error)
	// RemoteBranchRef returns the first remote ref matching name
	// (e.g. "origin/feature"), or "" when no remote has the branch.
	RemoteBranchRef(ctx context.Context, dir, name string) (string, error)
}

// BranchWriter abstracts branch mutations.
type BranchWriter interface {
	Checkout(ctx context.Context, dir, name string) error
	CreateBranch(ctx context.Context, dir, name, start string) error
}

// WorktreeManager abstracts worktree registry operations.
type WorktreeManager interface {
	ListWorktrees(ctx context.Context, dir string) ([]Worktree, error)
	AddWorktree(ctx context.Context, dir, path, branch string) error
	AddWorktreeNewBranch(ctx context.Context, dir, path, branch, base string) error
	AddWorktreeDetached(ctx context.Context, dir, path, branch string) error
	AddWorktreeTrack(ctx context.Context, dir, path, branch, remoteRef string) error
	RemoveWorktree(ctx context.Context, dir, path string) error
	PruneWorktrees(ctx context.Context, dir string) error
}

// Client abstracts git operations for testing.
type Client interface {
	Querier
	BranchReader
	BranchWriter
	WorktreeManager
}

// Branch represents one ref known to the repository. Name is always the
// short form ("main", "origin/main") without refs/heads or refs/remotes
// prefixes.
type Branch struct {
	Name      string `json:"name"`
	IsCurrent bool   `json:"is_current"`
	IsRemote  bool   `json:"is_remote"`
	// Remote is the remote name segment ("origin" of "origin/main");
	// empty for local branches.
	Remote string `json:"remote,omitempty"`

	// Tip commit metadata, attached best-effort by enrichment.
	LastCommitHash    string `json:"last_commit_hash,omitempty"`
	LastCommitMessage string `json:"last_commit_message,omitempty"`

	// Upstream is the configured remote-tracking ref short name; empty
	// when the branch has no upstream. Ahead/Behind are only meaningful
	// when Upstream is set.
	Upstream string `json:"upstream,omitempty"`
	Ahead    int    `json:"ahead,omitempty"`
	Behind   int    `json:"behind,omitempty"`
}

// Worktree represents one entry from git's worktree registry.
type Worktree struct {
	// Path is the worktree root as reported by git, which may use forward
	// slashes even on Windows.
	Path string `json:"path"`
	// Head is the full commit hash checked out in the worktree.
	Head string `json:"head"`
	// Branch is the short branch name, or DetachedBranch when no branch
	// is attached.
	Branch     string `json:"branch"`
	IsMain     bool   `json:"is_main"`
	IsLocked   bool   `json:"is_locked"`
	IsPrunable bool   `json:"is_prunable"`
}
