package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type memoryEntry struct {
	game      []byte
	expiresAt time.Time
}

type memGame struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

// NewMemoryGameRepository - process-local sessions with the same expiry rules as the Redis repository.
// Used when the service runs without Redis.
func NewMemoryGameRepository(ttl time.Duration) GameRepository {
	return &memGame{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (that *memGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	entry := memoryEntry{game: gameJSON}
	if that.ttl > 0 {
		entry.expiresAt = that.now().Add(that.ttl)
	}

	that.mu.Lock()
	that.entries[game.ID] = entry
	that.mu.Unlock()

	return nil
}

func (that *memGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	entry, ok := that.lookup(id)
	that.mu.Unlock()

	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	var existingGame entity.Game
	if err := json.Unmarshal(entry.game, &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *memGame) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.lookup(id); !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.entries, id)

	return nil
}

// lookup - caller holds mu. Expired entries are dropped on access.
func (that *memGame) lookup(id string) (memoryEntry, bool) {
	entry, ok := that.entries[id]
	if !ok {
		return memoryEntry{}, false
	}

	if !entry.expiresAt.IsZero() && !that.now().Before(entry.expiresAt) {
		delete(that.entries, id)
		return memoryEntry{}, false
	}

	return entry, true
}
