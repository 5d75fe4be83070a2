package git

import (
	"fmt"
	"strings"
)

// InvalidNameError reports a branch name or start point that failed
// validation before any subprocess was spawned.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid ref name %q: %s", e.Name, e.Reason)
}

type nameRule struct {
	check   func(string) bool
	message string
}

// branchRules mirrors git's own ref-naming restrictions closely enough to
// keep both invalid refs and ambiguous revision syntax away from the
// subprocess boundary.
var branchRules = []nameRule{
	{func(n string) bool { return n == "" }, "must not be empty"},
	{func(n string) bool { return strings.ContainsAny(n, " \t\n") }, "contains whitespace"},
	{func(n string) bool {
		return strings.ContainsFunc(n, func(r rune) bool { return r < 0x20 || r == 0x7f })
	}, "contains control character"},
	{func(n string) bool { return strings.HasPrefix(n, ".") }, "must not start with '.'"},
	{func(n string) bool { return strings.HasPrefix(n, "-") }, "must not start with '-'"},
	{func(n string) bool { return strings.HasSuffix(n, ".lock") }, "must not end with '.lock'"},
	{func(n string) bool { return strings.Contains(n, "..") }, "contains '..'"},
	{func(n string) bool { return strings.Contains(n, "\\") }, "contains '\\'"},
	{func(n string) bool { return strings.HasPrefix(n, "/") }, "must not start with '/'"},
	{func(n string) bool { return strings.HasSuffix(n, "/") }, "must not end with '/'"},
	{func(n string) bool { return strings.Contains(n, "@{") }, "contains '@{'"},
}

// startPointRules admits revision syntax (~ ^ @ :) that branchRules rejects,
// since a start point may be "HEAD~1" or "origin/main", while still blocking
// whitespace and traversal sequences.
var startPointRules = []nameRule{
	{func(n string) bool { return strings.TrimSpace(n) == "" }, "must not be empty"},
	{func(n string) bool { return strings.ContainsAny(n, " \t\n") }, "contains whitespace"},
	{func(n string) bool {
		return strings.ContainsFunc(n, func(r rune) bool { return r < 0x20 || r == 0x7f })
	}, "contains control character"},
	{func(n string) bool { return strings.Contains(n, "\\") }, "contains '\\'"},
	{func(n string) bool { return strings.Contains(n, "..") }, "contains '..'"},
	{func(n string) bool { return strings.HasPrefix(n, "-") }, "must not start with '-'"},
}

func checkRules(name string, rules []nameRule) error {
	for _, r := range rules {
		if r.check(name) {
			return &InvalidNameError{Name: name, Reason: r.message}
		}
	}
	return nil
}

// ValidateBranchName checks that a branch name is safe to pass to git.
func ValidateBranchName(name string) error {
	return checkRules(name, branchRules)
}

// ValidateStartPoint checks that a commit-ish start point is safe to pass to git.
func ValidateStartPoint(ref string) error {
	return checkRules(ref, startPointRules)
}
