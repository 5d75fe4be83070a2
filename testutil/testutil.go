// Package testutil builds throwaway git repositories for integration tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// RepoBuilder constructs temporary git repositories for testing.
type RepoBuilder struct {
	t             *testing.T
	remoteURL     string
	bareRemote    bool
	branches      []string
	pushed        []string
	remoteOnly    []string
	worktrees     []string
	detachedHeads bool
}

// NewRepo creates a RepoBuilder for the given test.
func NewRepo(t *testing.T) *RepoBuilder {
	t.Helper()
	return &RepoBuilder{t: t}
}

// WithRemote sets the origin remote URL without pushing anything to it.
func (b *RepoBuilder) WithRemote(url string) *RepoBuilder {
	b.remoteURL = url
	return b
}

// WithBranch adds a local branch.
func (b *RepoBuilder) WithBranch(name string) *RepoBuilder {
	b.branches = append(b.branches, name)
	return b
}

// WithPushedBranch adds a local branch and pushes it to a bare origin
// created alongside the repository, so refs/remotes/origin/<name> exists.
func (b *RepoBuilder) WithPushedBranch(name string) *RepoBuilder {
	b.bareRemote = true
	b.branches = append(b.branches, name)
	b.pushed = append(b.pushed, name)
	return b
}

// WithRemoteOnlyBranch adds a branch that exists only on the bare origin:
// it is pushed and the local ref is then deleted.
func (b *RepoBuilder) WithRemoteOnlyBranch(name string) *RepoBuilder {
	b.bareRemote = true
	b.remoteOnly = append(b.remoteOnly, name)
	return b
}

// WithWorktree adds a branch and a worktree for it under .worktrees.
func (b *RepoBuilder) WithWorktree(branch string) *RepoBuilder {
	b.branches = append(b.branches, branch)
	b.worktrees = append(b.worktrees, branch)
	return b
}

// WithDetachedHead leaves the repository checked out at a commit, not a branch.
func (b *RepoBuilder) WithDetachedHead() *RepoBuilder {
	b.detachedHeads = true
	return b
}

// Build creates the repository and returns the root directory path.
func (b *RepoBuilder) Build() string {
	b.t.Helper()

	dir := b.t.TempDir()

	run(b.t, dir, "git", "init", "-b", "main")
	run(b.t, dir, "git", "config", "user.email", "test@example.com")
	run(b.t, dir, "git", "config", "user.name", "Test")

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# test\n"), 0644); err != nil {
		b.t.Fatal(err)
	}
	run(b.t, dir, "git", "add", ".")
	run(b.t, dir, "git", "commit", "-m", "initial commit")

	if b.bareRemote {
		bare := b.t.TempDir()
		run(b.t, bare, "git", "init", "--bare")
		run(b.t, dir, "git", "remote", "add", "origin", bare)
		run(b.t, dir, "git", "push", "-u", "origin", "main")
	} else if b.remoteURL != "" {
		run(b.t, dir, "git", "remote", "add", "origin", b.remoteURL)
	}

	created := make(map[string]bool)
	for _, branch := range b.branches {
		if !created[branch] {
			run(b.t, dir, "git", "branch", branch)
			created[branch] = true
		}
	}

	for _, branch := range b.pushed {
		run(b.t, dir, "git", "push", "-u", "origin", branch)
	}
	for _, branch := range b.remoteOnly {
		if !created[branch] {
			run(b.t, dir, "git", "branch", branch)
		}
		run(b.t, dir, "git", "push", "origin", branch)
		run(b.t, dir, "git", "branch", "-D", branch)
	}

	for _, branch := range b.worktrees {
		wtDir := filepath.Join(dir, ".worktrees", branch)
		run(b.t, dir, "git", "worktree", "add", wtDir, branch)
	}

	if b.detachedHeads {
		run(b.t, dir, "git", "checkout", "--detach", "HEAD")
	}

	return dir
}

// GitRepo creates a temporary git repository with an initial commit.
// The directory is cleaned up when the test finishes.
func GitRepo(t *testing.T) string {
	t.Helper()
	return NewRepo(t).Build()
}

// GitRepoWithBranch creates a temporary git repository with an additional branch.
func GitRepoWithBranch(t *testing.T, branch string) string {
	t.Helper()
	return NewRepo(t).WithBranch(branch).Build()
}

// GitRepoWithWorktree creates a temporary git repository with a worktree for
// the given branch under .worktrees.
func GitRepoWithWorktree(t *testing.T, branch string) string {
	t.Helper()
	return NewRepo(t).WithWorktree(branch).Build()
}

func run(t *testing.T, dir string, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("%s %v failed: %v\n%s", name, args, err, out)
	}
}
