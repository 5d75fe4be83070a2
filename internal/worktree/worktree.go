// Package worktree manages isolated git worktree checkouts for parallel
// sessions: one branch, one directory, created on demand and torn down
// best-effort. State lives only in the git worktree registry and the
// filesystem; every call re-reads ground truth.
package worktree

import (
	"fmt"
	"strings"

	"github.com/ogaworks/eda/internal/git"
)

// Location selects where worktree directories are placed.
type Location int

const (
	// LocationProject places worktrees under <repo>/.worktrees/<branch>.
	LocationProject Location = iota
	// LocationCentral places worktrees under a per-user directory,
	// namespaced by a hash of the repository path so same-named branches
	// of different repositories never collide.
	LocationCentral
)

var locationStrings = [...]string{
	LocationProject: "project",
	LocationCentral: "central",
}

// String returns the string representation of the Location.
func (l Location) String() string {
	if int(l) < len(locationStrings) {
		return locationStrings[l]
	}
	return "unknown"
}

// MarshalJSON returns the JSON encoding of the Location.
func (l Location) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON parses a JSON string into a Location.
func (l *Location) UnmarshalJSON(data []byte) error {
	return l.set(strings.Trim(string(data), `"`))
}

// ParseLocation converts a configuration string into a Location.
func ParseLocation(s string) (Location, error) {
	var l Location
	if err := l.set(s); err != nil {
		return 0, err
	}
	return l, nil
}

func (l *Location) set(s string) error {
	for i, v := range locationStrings {
		if v == s {
			*l = Location(i)
			return nil
		}
	}
	return fmt.Errorf("unknown worktree location: %s", s)
}

// Logger receives warnings from best-effort teardown paths.
type Logger interface {
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...any) {}

// Params holds placement configuration shared by all Service operations.
type Params struct {
	// CentralDir is the base directory for LocationCentral placement.
	CentralDir string
	// Location selects the placement strategy.
	Location Location
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for best-effort operation warnings.
func WithLogger(l Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithParams sets the placement parameters.
func WithParams(p Params) Option {
	return func(s *Service) { s.cp = p }
}

// Service provides worktree preparation and teardown backed by a git client.
type Service struct {
	git    git.Client
	cp     Params
	logger Logger
	locks  keyedMutex
}

// NewService creates a Service with project-local placement by default.
func NewService(g git.Client, opts ...Option) *Service {
	s := &Service{
		git:    g,
		logger: nopLogger{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// bestEffort logs a warning if a best-effort operation fails.
// Does nothing if err is nil.
func (s *Service) bestEffort(op string, err error) {
	if err == nil {
		return
	}
	s.logger.Warn("best-effort operation failed", "op", op, "error", err)
}
