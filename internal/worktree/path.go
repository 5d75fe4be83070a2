package worktree

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
)

// projectDirName is the directory under the repository root that holds
// project-local worktrees.
const projectDirName = ".worktrees"

// maxBranchLen bounds branch names before sanitizing; longer names would
// exceed filename limits on common filesystems anyway.
const maxBranchLen = 255

// UnsafeBranchError reports a branch name that cannot be turned into a safe
// worktree directory name.
type UnsafeBranchError struct {
	Branch string
	Reason string
}

func (e *UnsafeBranchError) Error() string {
	return fmt.Sprintf("branch %q is not usable as a worktree directory: %s", e.Branch, e.Reason)
}

// Path computes the worktree directory for a branch. It is a pure function:
// no filesystem or subprocess access, identical inputs always yield
// identical output.
func (s *Service) Path(repoPath, branch string) (string, error) {
	sanitized, err := sanitizeBranch(branch)
	if err != nil {
		return "", err
	}
	if s.cp.Location == LocationCentral {
		return filepath.Join(s.cp.CentralDir, repoKey(repoPath), sanitized), nil
	}
	return filepath.Join(repoPath, projectDirName, sanitized), nil
}

// sanitizeBranch maps a branch name to a single path segment. Traversal
// sequences are rejected outright rather than rewritten, so a hostile name
// can never escape the worktree root.
func sanitizeBranch(branch string) (string, error) {
	if branch == "" {
		return "", &UnsafeBranchError{Branch: branch, Reason: "empty"}
	}
	if len(branch) > maxBranchLen {
		return "", &UnsafeBranchError{Branch: branch, Reason: "longer than 255 characters"}
	}
	if strings.ContainsFunc(branch, func(r rune) bool { return r < 0x20 }) {
		return "", &UnsafeBranchError{Branch: branch, Reason: "contains control character"}
	}
	if branch == "." || branch == ".." {
		return "", &UnsafeBranchError{Branch: branch, Reason: "reserved name"}
	}
	if strings.Contains(branch, "/../") || strings.HasSuffix(branch, "/..") {
		return "", &UnsafeBranchError{Branch: branch, Reason: "contains traversal segment"}
	}

	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, branch)
	sanitized = strings.Trim(sanitized, "._-")
	if sanitized == "" {
		return "", &UnsafeBranchError{Branch: branch, Reason: "sanitizes to nothing"}
	}
	return sanitized, nil
}

// repoKey derives a stable per-repository namespace for central placement.
// 16 hex characters of a sha256 digest: deterministic across restarts,
// collision-free in practice for distinct repository paths.
func repoKey(repoPath string) string {
	sum := sha256.Sum256([]byte(repoPath))
	return hex.EncodeToString(sum[:])[:16]
}
