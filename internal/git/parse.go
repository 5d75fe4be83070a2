package git

import "strings"

// parseWorktreeList parses `git worktree list --porcelain` output. Each
// record starts at a "worktree <path>" line; attribute lines follow until a
// blank separator. Records are emitted immutably and the "first entry
// defaults to main" rule runs as a post-pass, so the repository's own
// checkout is always discoverable even when git reports no bare marker.
func parseWorktreeList(out string) []Worktree {
	var (
		worktrees []Worktree
		current   *Worktree
	)
	flush := func() {
		if current != nil && current.Path != "" {
			worktrees = append(worktrees, *current)
		}
		current = nil
	}

	for line := range strings.SplitSeq(out, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, "worktree "):
			flush()
			current = &Worktree{Path: strings.TrimPrefix(line, "worktree ")}
		case current == nil:
			// Attribute line without a preceding record header; tolerated.
		case strings.HasPrefix(line, "HEAD "):
			current.Head = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch "):
			ref := strings.TrimPrefix(line, "branch ")
			current.Branch = strings.TrimPrefix(ref, "refs/heads/")
		case line == "bare":
			current.IsMain = true
		case line == "detached":
			current.Branch = DetachedBranch
		case line == "locked" || strings.HasPrefix(line, "locked "):
			current.IsLocked = true
		case line == "prunable" || strings.HasPrefix(line, "prunable "):
			current.IsPrunable = true
		case line == "":
			// Record separator; the next "worktree" line flushes anyway.
		}
	}
	flush()

	return markMainWorktree(worktrees)
}

// markMainWorktree guarantees exactly one main entry in a non-empty list:
// if git marked none explicitly, the first entry in file order is the
// repository's primary working copy.
func markMainWorktree(worktrees []Worktree) []Worktree {
	if len(worktrees) == 0 {
		return worktrees
	}
	for _, wt := range worktrees {
		if wt.IsMain {
			return worktrees
		}
	}
	worktrees[0].IsMain = true
	return worktrees
}
