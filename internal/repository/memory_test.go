package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGameRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a copy of the game", func(t *testing.T) {
		// Given: a stored game
		gameRepo := NewMemoryGameRepository(testTTL)
		game := newTestGame(t)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the caller keeps mutating its own copy
		game.Board[0] = tictactoe.X

		// Then: the stored game is unchanged
		stored, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Empty, stored.Board[0])
	})

	t.Run("Expired game is not found", func(t *testing.T) {
		// Given: a repository with a controllable clock
		now := time.Now()
		gameRepo := &memGame{
			ttl:     testTTL,
			now:     func() time.Time { return now },
			entries: make(map[string]memoryEntry),
		}
		game := newTestGame(t)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the ttl passes
		now = now.Add(testTTL)

		// Then: the game is gone
		_, err := gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Delete of a missing game returns ErrGameNotFound", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository(0)
		game := newTestGame(t)
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		require.NoError(t, gameRepo.DeleteByID(ctx, game.ID))
		require.ErrorIs(t, gameRepo.DeleteByID(ctx, game.ID), apperror.ErrGameNotFound)
	})
}
