package git

import (
	"context"
	"strings"

	"github.com/ogaworks/eda/internal/exec"
)

// Logger receives warnings from best-effort operations (metadata
// enrichment). Failures there degrade output instead of aborting it.
type Logger interface {
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...any) {}

var _ Client = (*client)(nil)

type client struct {
	exec   exec.Executor
	logger Logger
}

// ClientOption configures a Client.
type ClientOption func(*client)

// WithLogger sets the logger for best-effort operation warnings.
func WithLogger(l Logger) ClientOption {
	return func(c *client) { c.logger = l }
}

// NewClient creates a git Client backed by the given Executor.
func NewClient(exec exec.Executor, opts ...ClientOption) Client {
	c := &client{exec: exec, logger: nopLogger{}}
	for _, o := range opts {
		o(c)
	}
	return c
}

// output runs a git subcommand and returns stdout with trailing newlines trimmed.
func (c *client) output(ctx context.Context, dir string, args ...string) (string, error) {
	res, err := c.exec.Run(ctx, dir, "git", args...)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(res.Stdout, "\n"), nil
}

// run runs a git subcommand and discards its output.
func (c *client) run(ctx context.Context, dir string, args ...string) error {
	_, err := c.exec.Run(ctx, dir, "git", args...)
	return err
}

func (c *client) RepoRoot(ctx context.Context, dir string) (string, error) {
	out, err := c.output(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (c *client) CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := c.output(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (c *client) Checkout(ctx context.Context, dir, name string) error {
	if err := ValidateBranchName(name); err != nil {
		return err
	}
	return c.run(ctx, dir, "checkout", name)
}

func (c *client) CreateBranch(ctx context.Context, dir, name, start string) error {
	if err := ValidateBranchName(name); err != nil {
		return err
	}
	args := []string{"checkout", "-b", name}
	if start != "" {
		if err := ValidateStartPoint(start); err != nil {
			return err
		}
		args = append(args, start)
	}
	return c.run(ctx, dir, args...)
}

func (c *client) BranchExists(ctx context.Context, dir, name string) (bool, error) {
	err := c.run(ctx, dir, "rev-parse", "--verify", "--quiet", "refs/heads/"+name)
	if err == nil {
		return true, nil
	}
	// Non-zero exit is git's way of saying "no such ref".
	if exec.IsExitError(err) {
		return false, nil
	}
	return false, err
}

func (c *client) RemoteBranchRef(ctx context.Context, dir, name string) (string, error) {
	out, err := c.output(ctx, dir, "branch", "-r", "--list", "--format=%(refname:short)", "*/"+name)
	if err != nil {
		if exec.IsExitError(err) {
			return "", nil
		}
		return "", err
	}
	for line := range strings.SplitSeq(out, "\n") {
		ref := strings.TrimSpace(line)
		if ref != "" && !strings.HasSuffix(ref, "/HEAD") {
			return ref, nil
		}
	}
	return "", nil
}

func (c *client) ListWorktrees(ctx context.Context, dir string) ([]Worktree, error) {
	out, err := c.output(ctx, dir, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parseWorktreeList(out), nil
}

func (c *client) AddWorktree(ctx context.Context, dir, path, branch string) error {
	return c.run(ctx, dir, "worktree", "add", "--", path, branch)
}

func (c *client) AddWorktreeNewBranch(ctx context.Context, dir, path, branch, base string) error {
	return c.run(ctx, dir, "worktree", "add", "-b", branch, "--", path, base)
}

func (c *client) AddWorktreeDetached(ctx context.Context, dir, path, branch string) error {
	return c.run(ctx, dir, "worktree", "add", "--detach", "--", path, branch)
}

func (c *client) AddWorktreeTrack(ctx context.Context, dir, path, branch, remoteRef string) error {
	return c.run(ctx, dir, "worktree", "add", "--track", "-b", branch, "--", path, remoteRef)
}

func (c *client) RemoveWorktree(ctx context.Context, dir, path string) error {
	return c.run(ctx, dir, "worktree", "remove", "--force", "--", path)
}

func (c *client) PruneWorktrees(ctx context.Context, dir string) error {
	return c.run(ctx, dir, "worktree", "prune")
}
