package tictactoe

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("Every line wins for the mark occupying it", func(t *testing.T) {
		for _, mark := range []Mark{X, O} {
			for _, line := range Lines {
				// Given: a board where only one line is filled with the mark
				var board Board
				for _, cell := range line {
					board[cell] = mark
				}

				// When: evaluating the board
				outcome := Evaluate(board)

				// Then: the mark wins even though other cells are empty
				assert.Equal(t, WinFor(mark), outcome, "line %v", line)
			}
		}
	})

	t.Run("Win is reported on a full board", func(t *testing.T) {
		// Given: a full board where X completed the left column with the last move
		board := Board{
			X, O, X,
			X, O, O,
			X, X, O,
		}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: X wins, it's not a draw
		assert.Equal(t, WinFor(X), outcome)
	})

	t.Run("Draw on a full board without a line", func(t *testing.T) {
		boards := []Board{
			{X, O, X, O, X, O, O, X, O},
			{O, X, O, O, X, X, X, O, X},
			{X, X, O, O, O, X, X, O, X},
		}

		for _, board := range boards {
			// When: evaluating the board
			outcome := Evaluate(board)

			// Then: the game is a draw
			assert.Equal(t, Outcome{Result: Draw}, outcome, "board\n%s", board)
		}
	})

	t.Run("Undetermined while cells remain and no line is complete", func(t *testing.T) {
		boards := []Board{
			{},
			{X, O, Empty, Empty, X, Empty, Empty, Empty, O},
			{X, O, X, X, O, O, O, X, Empty},
		}

		for _, board := range boards {
			// When: evaluating the board
			outcome := Evaluate(board)

			// Then: the game continues
			assert.False(t, outcome.IsTerminal(), "board\n%s", board)
			assert.Equal(t, Undetermined, outcome.Result)
		}
	})
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "win:O", WinFor(O).String())
	assert.Equal(t, "draw", Outcome{Result: Draw}.String())
	assert.Equal(t, "undetermined", Outcome{}.String())
}

func TestBoard(t *testing.T) {
	t.Run("Validate rejects unknown marks", func(t *testing.T) {
		// Given: a board with a foreign symbol
		board := Board{X, "Z"}

		// When: validating the board
		err := board.Validate()

		// Then: ErrInvalidBoard is returned
		require.ErrorIs(t, err, ErrInvalidBoard)
		assert.Contains(t, err.Error(), "cell 1")
	})

	t.Run("AvailableCells lists empty cells in ascending order", func(t *testing.T) {
		board := Board{X, Empty, O, Empty, X, Empty, Empty, O, Empty}

		assert.Equal(t, []int{1, 3, 5, 6, 8}, board.AvailableCells())
		assert.False(t, board.IsFull())
	})

	t.Run("String renders three rows", func(t *testing.T) {
		board := Board{X, Empty, O, Empty, X, Empty, Empty, O, Empty}

		assert.Equal(t, "X - O\n- X -\n- O -", board.String())
		assert.Equal(t, "X - O\n- X -\n- O -", fmt.Sprint(board))
	})

	t.Run("Opponent swaps marks", func(t *testing.T) {
		assert.Equal(t, O, X.Opponent())
		assert.Equal(t, X, O.Opponent())
		assert.Equal(t, Empty, Empty.Opponent())
	})
}
