package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrInvalidMode     = errors.New("invalid game mode")
	ErrInvalidMark     = errors.New("invalid mark")
	ErrNotComputerTurn = errors.New("it's not the computer's turn")
	ErrGameNotFound    = errors.New("game not found")
)
