package git

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// Format strings keep %(subject) last so commit messages containing '|'
// cannot shift later fields; parsers split with a bounded SplitN.
const (
	branchListFormat  = "%(HEAD)|%(refname:short)|%(refname)"
	localRefFormat    = "%(refname:short)|%(objectname)|%(upstream:short)|%(upstream:track)|%(subject)"
	remoteRefFormat   = "%(refname:short)|%(objectname)|%(subject)"
	fallbackRefFormat = "%(HEAD)|%(refname)|%(objectname)|%(upstream:short)|%(upstream:track)|%(subject)"
)

var (
	aheadRe  = regexp.MustCompile(`ahead (\d+)`)
	behindRe = regexp.MustCompile(`behind (\d+)`)
)

// Branches enumerates branches via `git branch -a`, enriched with tip-commit
// and tracking metadata. Some git configurations produce empty `branch -a`
// output; the listing then falls back to deriving everything from
// `for-each-ref`.
func (c *client) Branches(ctx context.Context, dir string) ([]Branch, error) {
	out, err := c.output(ctx, dir, "branch", "-a", "--format="+branchListFormat)
	if err != nil {
		return nil, err
	}

	branches := parseBranchList(out)
	if len(branches) == 0 {
		return c.branchesFromForEachRef(ctx, dir)
	}

	c.enrichBranches(ctx, dir, branches)
	return branches, nil
}

// parseBranchList parses `branch -a --format` lines of the form
// "<marker>|<short-name>|<full-ref>". Symbolic HEAD pointers and bare remote
// names are not real branches and are skipped.
func parseBranchList(out string) []Branch {
	var branches []Branch
	for line := range strings.SplitSeq(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 3)
		if len(parts) != 3 {
			continue
		}
		marker := strings.TrimSpace(parts[0])
		name := strings.TrimSpace(parts[1])
		ref := strings.TrimSpace(parts[2])

		b, ok := classifyRef(name, ref)
		if !ok {
			continue
		}
		b.IsCurrent = marker == "*" && !b.IsRemote
		branches = append(branches, b)
	}
	return branches
}

// classifyRef builds a Branch from a short name and its full ref, reporting
// ok=false for entries that are not real branches.
func classifyRef(name, ref string) (Branch, bool) {
	if name == "" || name == "HEAD" {
		return Branch{}, false
	}
	switch {
	case strings.HasPrefix(ref, "refs/heads/"):
		return Branch{Name: name}, true
	case strings.HasPrefix(ref, "refs/remotes/"):
		remote, rest, found := strings.Cut(name, "/")
		if !found || rest == "HEAD" {
			// "origin/HEAD" is a symbolic pointer; a remote short name
			// without '/' is the remote itself, not a branch.
			return Branch{}, false
		}
		return Branch{Name: name, IsRemote: true, Remote: remote}, true
	default:
		return Branch{}, false
	}
}

// enrichBranches attaches commit and tracking metadata in place. It never
// fails the listing: on error (e.g. corrupted ref state) it logs and leaves
// branches unenriched.
func (c *client) enrichBranches(ctx context.Context, dir string, branches []Branch) {
	local, err := c.output(ctx, dir, "for-each-ref", "--format="+localRefFormat, "refs/heads")
	if err != nil {
		c.logger.Warn("branch enrichment failed", "refs", "refs/heads", "error", err)
		return
	}
	remote, err := c.output(ctx, dir, "for-each-ref", "--format="+remoteRefFormat, "refs/remotes")
	if err != nil {
		c.logger.Warn("branch enrichment failed", "refs", "refs/remotes", "error", err)
		return
	}

	type refMeta struct {
		hash, subject, upstream string
		ahead, behind           int
	}
	meta := make(map[string]refMeta)

	for line := range strings.SplitSeq(local, "\n") {
		parts := strings.SplitN(strings.TrimRight(line, "\r"), "|", 5)
		if len(parts) != 5 || parts[0] == "" {
			continue
		}
		ahead, behind := parseTrack(parts[3])
		meta[parts[0]] = refMeta{
			hash:     parts[1],
			subject:  parts[4],
			upstream: parts[2],
			ahead:    ahead,
			behind:   behind,
		}
	}
	for line := range strings.SplitSeq(remote, "\n") {
		parts := strings.SplitN(strings.TrimRight(line, "\r"), "|", 3)
		if len(parts) != 3 || parts[0] == "" {
			continue
		}
		meta[parts[0]] = refMeta{hash: parts[1], subject: parts[2]}
	}

	for i := range branches {
		m, ok := meta[branches[i].Name]
		if !ok {
			continue
		}
		branches[i].LastCommitHash = m.hash
		branches[i].LastCommitMessage = m.subject
		branches[i].Upstream = m.upstream
		branches[i].Ahead = m.ahead
		branches[i].Behind = m.behind
	}
}

// branchesFromForEachRef derives the entire branch set from a single
// for-each-ref pass over local and remote refs.
func (c *client) branchesFromForEachRef(ctx context.Context, dir string) ([]Branch, error) {
	out, err := c.output(ctx, dir, "for-each-ref", "--format="+fallbackRefFormat, "refs/heads", "refs/remotes")
	if err != nil {
		return nil, err
	}

	var branches []Branch
	for line := range strings.SplitSeq(out, "\n") {
		parts := strings.SplitN(strings.TrimRight(line, "\r"), "|", 6)
		if len(parts) != 6 {
			continue
		}
		ref := parts[1]
		name := shortRefName(ref)
		b, ok := classifyRef(name, ref)
		if !ok {
			continue
		}
		b.IsCurrent = strings.TrimSpace(parts[0]) == "*" && !b.IsRemote
		b.LastCommitHash = parts[2]
		b.LastCommitMessage = parts[5]
		if !b.IsRemote {
			b.Upstream = parts[3]
			b.Ahead, b.Behind = parseTrack(parts[4])
		}
		branches = append(branches, b)
	}
	return branches, nil
}

func shortRefName(ref string) string {
	if name, ok := strings.CutPrefix(ref, "refs/heads/"); ok {
		return name
	}
	if name, ok := strings.CutPrefix(ref, "refs/remotes/"); ok {
		return name
	}
	return ref
}

// parseTrack extracts ahead/behind counts from an %(upstream:track)
// annotation such as "[ahead 2, behind 1]". Either count may be absent.
func parseTrack(track string) (ahead, behind int) {
	if m := aheadRe.FindStringSubmatch(track); m != nil {
		ahead, _ = strconv.Atoi(m[1])
	}
	if m := behindRe.FindStringSubmatch(track); m != nil {
		behind, _ = strconv.Atoi(m[1])
	}
	return ahead, behind
}
