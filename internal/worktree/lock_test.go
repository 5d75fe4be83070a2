package worktree

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex(t *testing.T) {
	t.Run("serializes same key", func(t *testing.T) {
		var km keyedMutex
		var counter int

		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := km.lock("key")
				defer unlock()
				counter++
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, counter)
	})

	t.Run("different keys do not block each other", func(t *testing.T) {
		var km keyedMutex

		unlockA := km.lock("a")
		defer unlockA()

		done := make(chan struct{})
		go func() {
			unlockB := km.lock("b")
			unlockB()
			close(done)
		}()
		<-done
	})

	t.Run("entries are released when unused", func(t *testing.T) {
		var km keyedMutex

		unlock := km.lock("key")
		unlock()

		km.mu.Lock()
		defer km.mu.Unlock()
		assert.Empty(t, km.held)
	})
}
