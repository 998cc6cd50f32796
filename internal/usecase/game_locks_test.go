package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameLocks(t *testing.T) {
	var locks gameLocks

	// Given: a locked game
	unlock := locks.lock("g1")

	// When: the same game is locked from another goroutine
	acquired := make(chan struct{})
	go func() {
		defer close(acquired)

		locks.lock("g1")()
	}()

	// Then: it waits until the first holder unlocks
	select {
	case <-acquired:
		t.Fatal("lock acquired while held")
	default:
	}

	unlock()
	<-acquired

	assert.NotPanics(t, func() { locks.lock("g1")() })
}
