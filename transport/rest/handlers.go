package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var (
	errBadRequestBody = errors.New("invalid request body")
	errCellRequired   = errors.New("cell is required")
	errBoardRequired  = fmt.Errorf("%w: board is required", tictactoe.ErrInvalidBoard)
)

var resultNames = map[tictactoe.Result]string{
	tictactoe.Undetermined: "undetermined",
	tictactoe.Win:          "win",
	tictactoe.Draw:         "draw",
}

type evaluateRequest struct {
	Board *tictactoe.Board `json:"board"`
}

type evaluateResponse struct {
	Result string         `json:"result"`
	Winner tictactoe.Mark `json:"winner,omitempty"`
}

type moveRequest struct {
	Board  *tictactoe.Board `json:"board"`
	ToMove tictactoe.Mark   `json:"to_move"`
	// Computer - the mark to optimize for, defaults to ToMove.
	Computer tictactoe.Mark `json:"computer,omitempty"`
}

type moveResponse struct {
	Cell int `json:"cell"`
}

type newGameRequest struct {
	Mode     string         `json:"mode"`
	First    tictactoe.Mark `json:"first"`
	Computer tictactoe.Mark `json:"computer"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	if req.Board == nil {
		that.writeError(w, errBoardRequired)
		return
	}

	outcome, err := that.uGame.Evaluate(*req.Board)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, evaluateResponse{
		Result: resultNames[outcome.Result],
		Winner: outcome.Winner,
	})
}

func (that *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	if req.Board == nil {
		that.writeError(w, errBoardRequired)
		return
	}

	if req.Computer == tictactoe.Empty {
		req.Computer = req.ToMove
	}

	cell, err := that.uGame.SuggestMove(*req.Board, req.ToMove, req.Computer)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, moveResponse{Cell: cell})
}

func (that *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	req := newGameRequest{
		Mode:     entity.HumanVsComputerMode,
		First:    tictactoe.X,
		Computer: that.computerMark,
	}
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	game, err := that.uGame.NewGame(r.Context(), req.Mode, req.First, req.Computer)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.GetGame(r.Context(), mux.Vars(r)["gameID"])
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.uGame.DeleteGame(r.Context(), mux.Vars(r)["gameID"]); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, err)
		return
	}

	if req.Cell == nil {
		that.writeError(w, errCellRequired)
		return
	}

	game, err := that.uGame.MakeTurn(r.Context(), mux.Vars(r)["gameID"], *req.Cell)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.Reset(r.Context(), mux.Vars(r)["gameID"])
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errBadRequestBody, err)
	}

	return nil
}

// statusCode - maps domain errors to HTTP status codes.
func statusCode(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	case errors.Is(err, tictactoe.ErrTerminalBoard):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errBadRequestBody),
		errors.Is(err, errCellRequired),
		errors.Is(err, tictactoe.ErrInvalidBoard),
		errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidMode),
		errors.Is(err, apperror.ErrInvalidMark):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (that *Server) writeError(w http.ResponseWriter, err error) {
	code := statusCode(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
		message = http.StatusText(code)
	}

	that.writeJSON(w, code, errorResponse{Error: message})
}

func (that *Server) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
