package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("Creates a human vs computer game", func(t *testing.T) {
		// When: creating a game where X opens and the computer plays O
		game, err := NewGame("123", HumanVsComputerMode, tictactoe.X, tictactoe.O)
		require.NoError(t, err)

		// Then: the game is in progress with X to move
		expectedGame := &Game{
			ID:           "123",
			Mode:         HumanVsComputerMode,
			FirstMark:    tictactoe.X,
			ComputerMark: tictactoe.O,
			Turn:         tictactoe.X,
			Status:       StatusInProgress,
		}
		require.Equal(t, expectedGame, game)
	})

	t.Run("Human vs human game has no computer mark", func(t *testing.T) {
		// When: creating a hot seat game with a computer mark given
		game, err := NewGame("123", HumanVsHumanMode, tictactoe.O, tictactoe.X)
		require.NoError(t, err)

		// Then: the computer mark is dropped and O opens
		assert.Equal(t, tictactoe.Empty, game.ComputerMark)
		assert.Equal(t, tictactoe.O, game.Turn)
		assert.False(t, game.IsComputerTurn())
	})

	t.Run("Rejects unknown mode", func(t *testing.T) {
		_, err := NewGame("123", "online", tictactoe.X, tictactoe.O)

		require.ErrorIs(t, err, apperror.ErrInvalidMode)
	})

	t.Run("Rejects invalid marks", func(t *testing.T) {
		_, err := NewGame("123", HumanVsComputerMode, tictactoe.Empty, tictactoe.O)
		require.ErrorIs(t, err, apperror.ErrInvalidMark)

		_, err = NewGame("123", HumanVsComputerMode, tictactoe.X, "Z")
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: A new game
		game, err := NewGame("123", HumanVsHumanMode, tictactoe.X, tictactoe.Empty)
		require.NoError(t, err)

		// When: Player X makes a valid turn
		err = game.MakeTurn(tictactoe.X, 0)
		require.NoError(t, err)

		// Then: The board reflects the turn and the turn switches
		assert.Equal(t, tictactoe.Board{tictactoe.X}, game.Board)
		assert.Equal(t, tictactoe.O, game.Turn)
		assert.Equal(t, StatusInProgress, game.Status)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: A game where cell 0 is occupied by Player X
		game, err := NewGame("123", HumanVsHumanMode, tictactoe.X, tictactoe.Empty)
		require.NoError(t, err)
		require.NoError(t, game.MakeTurn(tictactoe.X, 0))

		// When: Player O tries to make a move to the same cell
		err = game.MakeTurn(tictactoe.O, 0)

		// Then: An ErrCellOccupied error should be returned and O is still to move
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, tictactoe.O, game.Turn)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: A new game where it's Player X's turn
		game, err := NewGame("123", HumanVsHumanMode, tictactoe.X, tictactoe.Empty)
		require.NoError(t, err)

		// When: Player O tries to make a move
		err = game.MakeTurn(tictactoe.O, 1)

		// Then: An ErrNotYourTurn error should be returned and the board is untouched
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, tictactoe.Board{}, game.Board)
	})

	t.Run("Error on Invalid Cell Index", func(t *testing.T) {
		game, err := NewGame("123", HumanVsHumanMode, tictactoe.X, tictactoe.Empty)
		require.NoError(t, err)

		assert.ErrorIs(t, game.MakeTurn(tictactoe.X, 20), apperror.ErrInvalidCell)
		assert.ErrorIs(t, game.MakeTurn(tictactoe.X, -1), apperror.ErrInvalidCell)
	})

	t.Run("Win finishes the game and counts the score", func(t *testing.T) {
		// Given: X is one move from completing the top row
		game, err := NewGame("123", HumanVsHumanMode, tictactoe.X, tictactoe.Empty)
		require.NoError(t, err)
		for i, cell := range []int{0, 3, 1, 4} {
			mark := tictactoe.X
			if i%2 == 1 {
				mark = tictactoe.O
			}
			require.NoError(t, game.MakeTurn(mark, cell))
		}

		// When: X completes the row
		err = game.MakeTurn(tictactoe.X, 2)
		require.NoError(t, err)

		// Then: the game is won by X and the tally is updated once
		assert.Equal(t, StatusWonByX, game.Status)
		assert.Equal(t, tictactoe.X, game.Winner)
		assert.Equal(t, tictactoe.Empty, game.Turn)
		assert.Equal(t, Score{X: 1}, game.Score)

		// When: the state is recomputed again
		game.UpdateGameState()

		// Then: the score is not counted twice
		assert.Equal(t, Score{X: 1}, game.Score)

		// And: no further move is accepted
		assert.ErrorIs(t, game.MakeTurn(tictactoe.O, 8), apperror.ErrGameFinished)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a game one move from a draw
		game := &Game{
			Board: tictactoe.Board{
				tictactoe.X, tictactoe.O, tictactoe.X,
				tictactoe.O, tictactoe.X, tictactoe.O,
				tictactoe.O, tictactoe.X, tictactoe.Empty,
			},
			Mode:   HumanVsHumanMode,
			Turn:   tictactoe.O,
			Status: StatusInProgress,
		}

		// When: O fills the last cell
		err := game.MakeTurn(tictactoe.O, 8)
		require.NoError(t, err)

		// Then: the game is a draw
		assert.Equal(t, StatusDraw, game.Status)
		assert.Equal(t, tictactoe.Empty, game.Winner)
		assert.Equal(t, Score{Ties: 1}, game.Score)
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a finished game with a score
	game := &Game{
		Board:     tictactoe.Board{tictactoe.O, tictactoe.O, tictactoe.O},
		Mode:      HumanVsComputerMode,
		FirstMark: tictactoe.O,
		Status:    StatusWonByO,
		Winner:    tictactoe.O,
		Score:     Score{O: 2, Ties: 1},
	}

	// When: resetting the game
	game.Reset()

	// Then: a new round starts with the first mark, the score is kept
	assert.Equal(t, tictactoe.Board{}, game.Board)
	assert.Equal(t, tictactoe.O, game.Turn)
	assert.Equal(t, StatusInProgress, game.Status)
	assert.Equal(t, tictactoe.Empty, game.Winner)
	assert.Equal(t, Score{O: 2, Ties: 1}, game.Score)
}

func TestGame_IsComputerTurn(t *testing.T) {
	t.Run("Computer mark opening is the computer's turn", func(t *testing.T) {
		// Given: the computer plays X and X opens
		game, err := NewGame("1", HumanVsComputerMode, tictactoe.X, tictactoe.X)
		require.NoError(t, err)

		// Then: the computer moves first
		assert.True(t, game.IsComputerTurn())
	})

	t.Run("Human opening is not the computer's turn", func(t *testing.T) {
		// Given: the computer plays O and X opens
		game, err := NewGame("1", HumanVsComputerMode, tictactoe.X, tictactoe.O)
		require.NoError(t, err)

		// Then: the human moves first
		assert.False(t, game.IsComputerTurn())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is in progress", func(t *testing.T) {
		game := &Game{Status: StatusInProgress}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		for _, status := range []string{StatusWonByX, StatusWonByO, StatusDraw} {
			game := &Game{Status: status}

			assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
		}
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return an error
		require.ErrorIs(t, err, ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "unknown game status")
	})
}
