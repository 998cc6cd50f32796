package service

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var (
	botSearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tictactoe_bot_search_duration_seconds",
		Help:    "Time spent selecting the computer's move",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
	})

	botMovesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tictactoe_bot_moves_total",
		Help: "Moves played by the computer by mark",
	}, []string{"mark"})
)

type BotService interface {
	MakeTurn(game *entity.Game) (int, error)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn - plays the optimal move for the computer's mark and returns the chosen cell.
func (that *botService) MakeTurn(game *entity.Game) (int, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return 0, err
	}

	if !game.IsComputerTurn() {
		return 0, apperror.ErrNotComputerTurn
	}

	start := time.Now()
	cell, err := tictactoe.SelectMove(game.Board, game.Turn, game.ComputerMark)
	botSearchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		return 0, fmt.Errorf("failed to select move: %w", err)
	}

	if err = game.MakeTurn(game.ComputerMark, cell); err != nil {
		return 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	botMovesTotal.WithLabelValues(string(game.ComputerMark)).Inc()

	return cell, nil
}
