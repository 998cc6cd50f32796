package websocket

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// clientErrors - failures caused by the request, reported back verbatim.
var clientErrors = []error{
	errGameIDRequired,
	errCellRequired,
	apperror.ErrGameNotFound,
	apperror.ErrGameFinished,
	apperror.ErrNotYourTurn,
	apperror.ErrCellOccupied,
	apperror.ErrInvalidCell,
	apperror.ErrInvalidMode,
	apperror.ErrInvalidMark,
	tictactoe.ErrInvalidBoard,
}

func (that *Server) handleNewGame(ctx context.Context, payload *Payload) (*Payload, error) {
	mode := payload.Mode
	if mode == "" {
		mode = entity.HumanVsComputerMode
	}

	first := payload.First
	if first == tictactoe.Empty {
		first = tictactoe.X
	}

	computer := payload.Computer
	if computer == tictactoe.Empty {
		computer = that.computerMark
	}

	game, err := that.uGame.NewGame(ctx, mode, first, computer)
	if err != nil {
		return nil, err
	}

	return &Payload{GameID: game.ID, Game: game}, nil
}

func (that *Server) handleGameState(ctx context.Context, payload *Payload) (*Payload, error) {
	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	game, err := that.uGame.GetGame(ctx, payload.GameID)
	if err != nil {
		return nil, err
	}

	return &Payload{GameID: game.ID, Game: game}, nil
}

func (that *Server) handleGameTurn(ctx context.Context, payload *Payload) (*Payload, error) {
	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	if payload.Cell == nil {
		return nil, errCellRequired
	}

	game, err := that.uGame.MakeTurn(ctx, payload.GameID, *payload.Cell)
	if err != nil {
		return nil, err
	}

	that.logger.Debug("turn played", "gameID", game.ID, "cell", *payload.Cell, "status", game.Status)

	return &Payload{GameID: game.ID, Game: game}, nil
}

func (that *Server) handleGameReset(ctx context.Context, payload *Payload) (*Payload, error) {
	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	game, err := that.uGame.Reset(ctx, payload.GameID)
	if err != nil {
		return nil, err
	}

	return &Payload{GameID: game.ID, Game: game}, nil
}

// clientError - the text sent to the client. Unexpected failures are logged and hidden.
func (that *Server) clientError(action string, err error) string {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return err.Error()
		}
	}

	that.logger.Error("failed to process message", "action", action, "error", err)

	return "internal error"
}
