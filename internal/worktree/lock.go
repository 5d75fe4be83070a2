package worktree

import "sync"

// keyedMutex serializes operations per worktree path. Two concurrent
// Prepare calls for the same branch would otherwise both observe "no
// existing worktree" and both attempt `worktree add`, with the loser
// receiving a git-level error.
type keyedMutex struct {
	mu   sync.Mutex
	held map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// lock acquires the mutex for key and returns its unlock function.
func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.held == nil {
		k.held = make(map[string]*keyLock)
	}
	kl, ok := k.held[key]
	if !ok {
		kl = &keyLock{}
		k.held[key] = kl
	}
	kl.refs++
	k.mu.Unlock()

	kl.mu.Lock()
	return func() {
		kl.mu.Unlock()
		k.mu.Lock()
		kl.refs--
		if kl.refs == 0 {
			delete(k.held, key)
		}
		k.mu.Unlock()
	}
}
