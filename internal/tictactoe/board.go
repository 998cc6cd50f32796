package tictactoe

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Mark - is the symbol a player puts into a cell.
type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// BoardSize - number of cells on the 3x3 board.
const BoardSize = 9

var ErrInvalidBoard = errors.New("invalid board")

// Lines - every index triple whose uniform occupation ends the game, in scan order.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board - cells indexed 0-8, row = index / 3, column = index % 3.
type Board [BoardSize]Mark

func (that Mark) IsPlayer() bool {
	return that == X || that == O
}

// Opponent - returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Validate - checks that every cell holds Empty, X or O.
func (that Board) Validate() error {
	for i, cell := range that {
		if cell != Empty && !cell.IsPlayer() {
			return fmt.Errorf("%w: cell %d holds %q", ErrInvalidBoard, i, cell)
		}
	}

	return nil
}

// AvailableCells - empty cell indexes in ascending order.
func (that Board) AvailableCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

// UnmarshalJSON - accepts exactly BoardSize cells.
func (that *Board) UnmarshalJSON(data []byte) error {
	var cells []Mark
	if err := json.Unmarshal(data, &cells); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	if len(cells) != BoardSize {
		return fmt.Errorf("%w: got %d cells, want %d", ErrInvalidBoard, len(cells), BoardSize)
	}

	copy(that[:], cells)

	return nil
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

func (that Board) String() string {
	var sb strings.Builder

	for i, cell := range that {
		if cell == Empty {
			sb.WriteString("-")
		} else {
			sb.WriteString(string(cell))
		}

		switch {
		case i == BoardSize-1:
		case i%3 == 2:
			sb.WriteString("\n")
		default:
			sb.WriteString(" ")
		}
	}

	return sb.String()
}
