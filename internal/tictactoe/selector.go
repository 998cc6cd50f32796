package tictactoe

import (
	"errors"
	"fmt"
	"math"
)

const (
	winScore  = 10
	lossScore = -10
	drawScore = 0

	noCell = -1
)

var ErrTerminalBoard = errors.New("board is already terminal")

// candidate - a move together with the score it guarantees.
type candidate struct {
	cell  int
	score int
}

// SelectMove - returns the cell that guarantees the best achievable outcome for maximizing,
// with toMove to play on board. The board argument is copied and never modified.
//
// Scores are depth-independent: a win is worth the same whether it comes now or later.
// Ties go to the lowest cell index.
func SelectMove(board Board, toMove, maximizing Mark) (int, error) {
	if err := board.Validate(); err != nil {
		return noCell, err
	}

	if !toMove.IsPlayer() || !maximizing.IsPlayer() {
		return noCell, fmt.Errorf("%w: to move %q, maximizing %q", ErrInvalidBoard, toMove, maximizing)
	}

	if outcome := Evaluate(board); outcome.IsTerminal() {
		return noCell, fmt.Errorf("%w: %s", ErrTerminalBoard, outcome)
	}

	search := &minimax{board: board, maximizing: maximizing}

	return search.run(toMove).cell, nil
}

// minimax - exhaustive search state. It owns its board and mutates it in place,
// every hypothetical mark is retracted before the next sibling is tried.
type minimax struct {
	board      Board
	maximizing Mark
}

func (that *minimax) run(toMove Mark) candidate {
	if outcome := Evaluate(that.board); outcome.IsTerminal() {
		return candidate{cell: noCell, score: that.leafScore(outcome)}
	}

	isMaximizing := toMove == that.maximizing

	best := candidate{cell: noCell, score: math.MaxInt}
	if isMaximizing {
		best.score = math.MinInt
	}

	for cell := range that.board {
		if that.board[cell] != Empty {
			continue
		}

		that.board[cell] = toMove
		score := that.run(toMove.Opponent()).score
		that.board[cell] = Empty

		if (isMaximizing && score > best.score) || (!isMaximizing && score < best.score) {
			best = candidate{cell: cell, score: score}
		}
	}

	return best
}

func (that *minimax) leafScore(outcome Outcome) int {
	switch {
	case outcome.Result == Draw:
		return drawScore
	case outcome.Winner == that.maximizing:
		return winScore
	default:
		return lossScore
	}
}
