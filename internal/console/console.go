package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	commandQuit     = "q"
	commandNewRound = "n"
)

var errUnknownCommand = errors.New("unknown command")

type botService interface {
	MakeTurn(game *entity.Game) (int, error)
}

// Console - line oriented game loop for a terminal. One session, many rounds.
type Console struct {
	logger *slog.Logger
	in     *bufio.Scanner
	out    io.Writer
	view   *view

	bot       botService
	game      *entity.Game
	moveDelay time.Duration
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, bot botService, game *entity.Game, moveDelay time.Duration) *Console {
	return &Console{
		logger:    logger.With("component", "console"),
		in:        bufio.NewScanner(in),
		out:       out,
		view:      newView(out),
		bot:       bot,
		game:      game,
		moveDelay: moveDelay,
	}
}

// Run - reads commands until q, end of input or ctx is done.
func (that *Console) Run(ctx context.Context) error {
	if err := that.playComputer(ctx); err != nil {
		return err
	}

	that.print(that.view.render(that.game))

	for that.in.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		command := strings.ToLower(strings.TrimSpace(that.in.Text()))
		if command == commandQuit {
			that.print(that.view.farewell(that.game.Score))
			return nil
		}

		if err := that.execute(ctx, command); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			if !isPlayerError(err) {
				return err
			}

			that.print(that.view.problem(err))

			continue
		}

		that.print(that.view.render(that.game))
	}

	if err := that.in.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

func (that *Console) execute(ctx context.Context, command string) error {
	if command == commandNewRound {
		that.game.Reset()
		return that.playComputer(ctx)
	}

	number, err := strconv.Atoi(command)
	if err != nil || number < 1 || number > 9 {
		return fmt.Errorf("%w: %q, type 1-9, n or q", errUnknownCommand, command)
	}

	if that.game.IsComputerTurn() {
		return apperror.ErrNotYourTurn
	}

	if err = that.game.MakeTurn(that.game.Turn, number-1); err != nil {
		return err
	}

	return that.playComputer(ctx)
}

// playComputer - lets the computer answer after the configured pause.
func (that *Console) playComputer(ctx context.Context) error {
	if !that.game.IsComputerTurn() {
		return nil
	}

	if that.moveDelay > 0 {
		that.print(that.view.render(that.game))

		timer := time.NewTimer(that.moveDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	cell, err := that.bot.MakeTurn(that.game)
	if err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("computer moved", "cell", cell)

	return nil
}

func (that *Console) print(text string) {
	if _, err := fmt.Fprintln(that.out, text); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func isPlayerError(err error) bool {
	return errors.Is(err, errUnknownCommand) ||
		errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrGameFinished) ||
		errors.Is(err, apperror.ErrNotYourTurn)
}
