package tictactoe

// Result - kind of the Outcome.
type Result int

const (
	Undetermined Result = iota
	Win
	Draw
)

// Outcome - result of a board evaluation. Winner is set only for Win.
type Outcome struct {
	Result Result
	Winner Mark
}

func WinFor(mark Mark) Outcome {
	return Outcome{Result: Win, Winner: mark}
}

func (that Outcome) IsTerminal() bool {
	return that.Result != Undetermined
}

func (that Outcome) String() string {
	switch that.Result {
	case Win:
		return "win:" + string(that.Winner)
	case Draw:
		return "draw"
	default:
		return "undetermined"
	}
}

// Evaluate - determines whether the game on the board has ended and with what result.
func Evaluate(board Board) Outcome {
	for _, line := range Lines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != Empty && a == b && b == c {
			return WinFor(a)
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return Outcome{Result: Undetermined}
	}

	return Outcome{Result: Draw}
}
