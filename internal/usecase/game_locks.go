package usecase

import (
	"hash/fnv"
	"sync"
)

const gameLockStripes = 64

// gameLocks - serializes read-modify-write of one session inside the process.
// Sessions hash onto a fixed set of mutexes, so unrelated games rarely wait on each other.
type gameLocks struct {
	stripes [gameLockStripes]sync.Mutex
}

// lock - locks the stripe of the game and returns its unlock.
func (that *gameLocks) lock(id string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))

	mu := &that.stripes[h.Sum32()%gameLockStripes]
	mu.Lock()

	return mu.Unlock
}
