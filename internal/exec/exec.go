// Package exec runs external commands as argument vectors with bounded
// timeouts and bounded output capture. Arguments are never joined into a
// shell string, so branch names and paths cannot smuggle shell syntax.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	osexec "os/exec"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds a single command when the caller's context
	// carries no deadline of its own.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxOutput caps captured bytes per stream. Pathological
	// repositories can emit effectively unbounded porcelain output.
	DefaultMaxOutput = 10 << 20
)

// forcedEnv is always appended after the parent environment so it wins.
// GIT_TERMINAL_PROMPT=0 makes missing credentials fail fast instead of
// hanging on a prompt; the C locale keeps git output parseable.
var forcedEnv = []string{
	"GIT_TERMINAL_PROMPT=0",
	"LC_ALL=C",
	"LANG=C",
}

// Result holds the captured output of a command that actually ran.
// Both streams may be populated even when the command exited non-zero.
type Result struct {
	Stdout string
	Stderr string
}

// TimeoutError reports that a command was killed after exceeding its deadline.
type TimeoutError struct {
	Name  string
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %s", e.Name, e.After)
}

// IsTimeout reports whether err wraps a *TimeoutError.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}

// IsExitError reports whether err wraps an *exec.ExitError, i.e. the command
// ran to completion but exited non-zero. Callers use this to tell a
// controlled failure ("branch not found") apart from not being able to run
// the command at all.
func IsExitError(err error) bool {
	var exitErr *osexec.ExitError
	return errors.As(err, &exitErr)
}

// IsExitCode reports whether err wraps an *exec.ExitError with the given exit code.
func IsExitCode(err error, code int) bool {
	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode() == code
	}
	return false
}

//go:generate moq -out exec_mock.go . Executor

// Executor abstracts command execution for testing.
type Executor interface {
	LookPath(name string) error
	Run(ctx context.Context, dir, name string, args ...string) (Result, error)
}

var _ Executor = (*DefaultExecutor)(nil)

// DefaultExecutor implements Executor using os/exec. Configuration is
// injected at construction; there is no package-level mutable state.
type DefaultExecutor struct {
	timeout   time.Duration
	maxOutput int64
}

// Option configures a DefaultExecutor.
type Option func(*DefaultExecutor)

// WithTimeout sets the default per-command timeout applied when the caller's
// context has no deadline.
func WithTimeout(d time.Duration) Option {
	return func(e *DefaultExecutor) { e.timeout = d }
}

// WithMaxOutput sets the per-stream capture cap in bytes.
func WithMaxOutput(n int64) Option {
	return func(e *DefaultExecutor) { e.maxOutput = n }
}

// NewDefaultExecutor creates a DefaultExecutor with the given options.
func NewDefaultExecutor(opts ...Option) *DefaultExecutor {
	e := &DefaultExecutor{
		timeout:   DefaultTimeout,
		maxOutput: DefaultMaxOutput,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *DefaultExecutor) LookPath(name string) error {
	_, err := osexec.LookPath(name)
	if err != nil {
		return fmt.Errorf("command not found: %s", name)
	}
	return nil
}

// Run executes name with args in dir and returns the captured output.
//
// Exit status handling is deliberately two-sided: a process that ran but
// exited non-zero returns its Result alongside an error satisfying
// IsExitError, while a process that could not be started returns an error
// for which IsExitError is false. A killed-on-timeout process returns a
// *TimeoutError.
func (e *DefaultExecutor) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	timeout := e.timeout
	if dl, ok := ctx.Deadline(); ok {
		timeout = time.Until(dl).Round(time.Millisecond)
	} else {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := osexec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), forcedEnv...)

	stdout := newCappedBuffer(e.maxOutput)
	stderr := newCappedBuffer(e.maxOutput)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return res, nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return res, &TimeoutError{Name: strings.TrimSpace(name + " " + firstArg(args)), After: timeout}
	}
	if IsExitError(err) {
		return res, wrapExitError(err, res.Stderr)
	}
	return res, fmt.Errorf("running %s: %w", name, err)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// wrapExitError prepends trimmed stderr to the exit error so callers see the
// tool's own diagnostic while errors.As still reaches the *exec.ExitError.
func wrapExitError(err error, stderr string) error {
	errMsg := strings.TrimSpace(stderr)
	if errMsg != "" {
		return fmt.Errorf("%s: %w", errMsg, err)
	}
	return err
}

// cappedBuffer accepts writes up to a byte limit and silently discards the
// rest, so a runaway process cannot grow memory without bound.
type cappedBuffer struct {
	buf bytes.Buffer
	max int64
}

func newCappedBuffer(max int64) *cappedBuffer {
	return &cappedBuffer{max: max}
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	remaining := b.max - int64(b.buf.Len())
	if remaining <= 0 {
		return len(p), nil
	}
	if int64(len(p)) > remaining {
		b.buf.Write(p[:remaining])
		return len(p), nil
	}
	return b.buf.Write(p)
}

func (b *cappedBuffer) String() string {
	return b.buf.String()
}
