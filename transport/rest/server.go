package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const shutdownTimeout = 5 * time.Second

type uGame interface {
	NewGame(ctx context.Context, mode string, firstMark, computerMark tictactoe.Mark) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error)
	Reset(ctx context.Context, id string) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error

	Evaluate(board tictactoe.Board) (tictactoe.Outcome, error)
	SuggestMove(board tictactoe.Board, toMove, maximizing tictactoe.Mark) (int, error)
}

type Server struct {
	logger *slog.Logger
	uGame  uGame

	// computerMark - used when a new game does not name the computer's mark.
	computerMark tictactoe.Mark
}

func New(logger *slog.Logger, uGame uGame, computerMark tictactoe.Mark) *Server {
	return &Server{
		logger:       logger.With("component", "rest"),
		uGame:        uGame,
		computerMark: computerMark,
	}
}

// Router - all HTTP routes of the service.
func (that *Server) Router() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/ping", pingHandler).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	v1 := router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/evaluate", that.handleEvaluate).Methods(http.MethodPost)
	v1.HandleFunc("/move", that.handleMove).Methods(http.MethodPost)
	v1.HandleFunc("/games", that.handleNewGame).Methods(http.MethodPost)
	v1.HandleFunc("/games/{gameID}", that.handleGetGame).Methods(http.MethodGet)
	v1.HandleFunc("/games/{gameID}", that.handleDeleteGame).Methods(http.MethodDelete)
	v1.HandleFunc("/games/{gameID}/turn", that.handleTurn).Methods(http.MethodPost)
	v1.HandleFunc("/games/{gameID}/reset", that.handleReset).Methods(http.MethodPost)

	return router
}

// Start - starts HTTP server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
