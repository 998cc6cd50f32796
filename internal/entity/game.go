package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	StatusInProgress = "in_progress"
	StatusWonByX     = "won_x"
	StatusWonByO     = "won_o"
	StatusDraw       = "draw"
)

const (
	HumanVsHumanMode    = "pvp"
	HumanVsComputerMode = "pvc"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Score - tally of finished rounds, kept across resets of the same session.
type Score struct {
	X    int `json:"x"`
	O    int `json:"o"`
	Ties int `json:"ties"`
}

// Game - a play session. ComputerMark and Turn are independent:
// the computer may own either mark regardless of which mark opens the round.
type Game struct {
	ID           string          `json:"id"`
	Board        tictactoe.Board `json:"board"`
	Mode         string          `json:"mode"`
	FirstMark    tictactoe.Mark  `json:"first_mark"`
	ComputerMark tictactoe.Mark  `json:"computer_mark,omitempty"`
	Turn         tictactoe.Mark  `json:"player_turn"`
	Status       string          `json:"status"`
	Winner       tictactoe.Mark  `json:"winner"`
	Score        Score           `json:"score"`
}

func NewGame(id, mode string, firstMark, computerMark tictactoe.Mark) (*Game, error) {
	if !firstMark.IsPlayer() {
		return nil, fmt.Errorf("%w: first mark %q", apperror.ErrInvalidMark, firstMark)
	}

	switch mode {
	case HumanVsHumanMode:
		computerMark = tictactoe.Empty
	case HumanVsComputerMode:
		if !computerMark.IsPlayer() {
			return nil, fmt.Errorf("%w: computer mark %q", apperror.ErrInvalidMark, computerMark)
		}
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMode, mode)
	}

	return &Game{
		ID:           id,
		Mode:         mode,
		FirstMark:    firstMark,
		ComputerMark: computerMark,
		Turn:         firstMark,
		Status:       StatusInProgress,
	}, nil
}

// MakeTurn - puts the mark into the cell and moves the game to its next state.
func (that *Game) MakeTurn(mark tictactoe.Mark, cell int) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != tictactoe.Empty {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = mark
	that.Turn = mark.Opponent()

	that.UpdateGameState()

	return nil
}

// UpdateGameState - feeds the board to the evaluator. The score is counted only on
// the transition out of StatusInProgress.
func (that *Game) UpdateGameState() {
	if !that.IsOngoing() {
		return
	}

	switch outcome := tictactoe.Evaluate(that.Board); outcome.Result {
	// one player wins
	case tictactoe.Win:
		that.Winner = outcome.Winner
		that.Turn = tictactoe.Empty

		if outcome.Winner == tictactoe.X {
			that.Status = StatusWonByX
			that.Score.X++
		} else {
			that.Status = StatusWonByO
			that.Score.O++
		}
	// tie
	case tictactoe.Draw:
		that.Status = StatusDraw
		that.Turn = tictactoe.Empty
		that.Score.Ties++
	// game continue
	default:
	}
}

// Reset - starts a new round in the same session, the score is kept.
func (that *Game) Reset() {
	that.Board = tictactoe.Board{}
	that.Turn = that.FirstMark
	that.Winner = tictactoe.Empty
	that.Status = StatusInProgress
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusInProgress
}

func (that *Game) IsFinished() bool {
	switch that.Status {
	case StatusWonByX, StatusWonByO, StatusDraw:
		return true
	default:
		return false
	}
}

func (that *Game) IsWithComputer() bool {
	return that.Mode == HumanVsComputerMode
}

func (that *Game) IsComputerTurn() bool {
	return that.IsWithComputer() && that.IsOngoing() && that.Turn == that.ComputerMark
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsOngoing():
		return nil
	case that.IsFinished():
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
