package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	MakeTurn(game *entity.Game) (int, error)
}

type GameManager struct {
	logger     *slog.Logger
	gameRepo   gameRepo
	botService botService

	locks gameLocks
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, botService botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:   gameRepo,
		botService: botService,
	}
}

// NewGame - creates a session. When the computer opens, its first move is already on the board.
func (that *GameManager) NewGame(ctx context.Context, mode string, firstMark, computerMark tictactoe.Mark) (*entity.Game, error) {
	game, err := entity.NewGame(pkg.GenerateGameID(), mode, firstMark, computerMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.playComputer(game); err != nil {
		return nil, err
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game created", "gameID", game.ID, "mode", game.Mode, "computer", game.ComputerMark)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn - plays the human move for the mark whose turn it is. Against the computer
// the reply is played in the same call unless the human move ended the round.
func (that *GameManager) MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	unlock := that.locks.lock(id)
	defer unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if game.IsComputerTurn() {
		return game, apperror.ErrNotYourTurn
	}

	if err = game.MakeTurn(game.Turn, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.playComputer(game); err != nil {
		return nil, err
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	if game.IsFinished() {
		log.Info("game finished", "status", game.Status, "winner", game.Winner)
	}

	return game, nil
}

// Reset - starts the next round of the session, keeping the score.
func (that *GameManager) Reset(ctx context.Context, id string) (*entity.Game, error) {
	unlock := that.locks.lock(id)
	defer unlock()

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	game.Reset()

	if err = that.playComputer(game); err != nil {
		return nil, err
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	unlock := that.locks.lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}

// Evaluate - stateless outcome of a board supplied by the caller.
func (that *GameManager) Evaluate(board tictactoe.Board) (tictactoe.Outcome, error) {
	if err := board.Validate(); err != nil {
		return tictactoe.Outcome{}, err
	}

	return tictactoe.Evaluate(board), nil
}

// SuggestMove - stateless optimal move for maximizing with toMove to play.
func (that *GameManager) SuggestMove(board tictactoe.Board, toMove, maximizing tictactoe.Mark) (int, error) {
	cell, err := tictactoe.SelectMove(board, toMove, maximizing)
	if err != nil {
		return 0, fmt.Errorf("failed to select move: %w", err)
	}

	return cell, nil
}

func (that *GameManager) playComputer(game *entity.Game) error {
	if !game.IsComputerTurn() {
		return nil
	}

	cell, err := that.botService.MakeTurn(game)
	if err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("computer moved", "gameID", game.ID, "cell", cell)

	return nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
