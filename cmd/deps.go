package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ogaworks/eda/internal/config"
	edaexec "github.com/ogaworks/eda/internal/exec"
	"github.com/ogaworks/eda/internal/git"
	"github.com/ogaworks/eda/internal/worktree"
)

// configFileName is the per-repository configuration file.
const configFileName = ".eda.yaml"

// App holds the dependency resolution function and builds the CLI command tree.
type App struct {
	resolveDeps func(ctx context.Context) (*deps, error)
	verbose     bool
}

// NewApp creates an App with the default dependency resolver.
func NewApp() *App {
	return &App{resolveDeps: defaultResolveDeps}
}

type deps struct {
	exec     edaexec.Executor
	git      git.Client
	repoRoot string
	cfg      *config.Config
}

func defaultResolveDeps(ctx context.Context) (*deps, error) {
	return doResolveDeps(ctx, edaexec.NewDefaultExecutor(), true)
}

func resolveDepsWithExec(ctx context.Context, e edaexec.Executor) (*deps, error) {
	return doResolveDeps(ctx, e, false)
}

// doResolveDeps locates the enclosing repository, loads its configuration,
// and wires the executor and git client. When applyTimeout is set the
// executor is rebuilt with the configured command timeout; callers supplying
// their own executor keep it as-is.
func doResolveDeps(ctx context.Context, e edaexec.Executor, applyTimeout bool) (*deps, error) {
	if err := e.LookPath("git"); err != nil {
		return nil, fmt.Errorf("required command 'git' not found")
	}
	g := git.NewClient(e)

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	repoRoot, err := g.RepoRoot(ctx, cwd)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(filepath.Join(repoRoot, configFileName))
	if err != nil {
		return nil, err
	}

	if applyTimeout && cfg.CommandTimeout != edaexec.DefaultTimeout {
		e = edaexec.NewDefaultExecutor(edaexec.WithTimeout(cfg.CommandTimeout))
		g = git.NewClient(e)
	}
	return &deps{exec: e, git: g, repoRoot: repoRoot, cfg: cfg}, nil
}

// params converts configuration into worktree placement parameters,
// resolving the per-user default central directory when none is configured.
func (d *deps) params() worktree.Params {
	centralDir := d.cfg.CentralDir
	if centralDir == "" {
		if base, err := os.UserCacheDir(); err == nil {
			centralDir = filepath.Join(base, "eda", "worktrees")
		}
	}
	return worktree.Params{
		CentralDir: centralDir,
		Location:   d.cfg.ParsedLocation(),
	}
}

func (d *deps) service(opts ...worktree.Option) *worktree.Service {
	allOpts := []worktree.Option{worktree.WithParams(d.params())}
	allOpts = append(allOpts, opts...)
	return worktree.NewService(d.git, allOpts...)
}

// withService resolves dependencies and calls fn with the constructed Service.
func (a *App) withService(ctx context.Context, fn func(d *deps, svc *worktree.Service) error) error {
	d, err := a.resolveDeps(ctx)
	if err != nil {
		return err
	}
	return fn(d, d.service(a.serviceOpts()...))
}

func (a *App) serviceOpts() []worktree.Option {
	if a.verbose {
		return []worktree.Option{worktree.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))}
	}
	return nil
}
