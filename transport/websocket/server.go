package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	shutdownTimeout = 5 * time.Second
	writeTimeout    = 10 * time.Second
)

type uGame interface {
	NewGame(ctx context.Context, mode string, firstMark, computerMark tictactoe.Mark) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error)
	Reset(ctx context.Context, id string) (*entity.Game, error)
}

type handlerFunc func(ctx context.Context, payload *Payload) (*Payload, error)

type Server struct {
	logger   *slog.Logger
	uGame    uGame
	upgrader websocket.Upgrader

	// computerMark - used when game:new does not name the computer's mark.
	computerMark tictactoe.Mark

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame, computerMark tictactoe.Mark) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		computerMark: computerMark,
	}

	server.handlers = map[string]handlerFunc{
		actionGameNew:   server.handleNewGame,
		actionGameState: server.handleGameState,
		actionGameTurn:  server.handleGameTurn,
		actionGameReset: server.handleGameReset,
	}

	return server
}

// Router - the /ws endpoint.
func (that *Server) Router(ctx context.Context) http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveWS(ctx, w, r)
	}).Methods(http.MethodGet)

	return router
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Router(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
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

func (that *Server) serveWS(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	// Hijacked connections are not closed by http.Server.Shutdown.
	stop := context.AfterFunc(ctx, func() {
		deadline := time.Now().Add(time.Second)
		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown")
		_ = conn.WriteControl(websocket.CloseMessage, msg, deadline)
		_ = conn.Close()
	})
	defer stop()

	log.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	if err = that.handleMessages(ctx, conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.ReadMessage()
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || ctx.Err() != nil {
			log.Info("WebSocket connection closed")
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		response := that.processMessage(ctx, data)

		if err = conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
			return fmt.Errorf("failed to set write deadline: %w", err)
		}

		if err = conn.WriteJSON(response); err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}
	}
}

// processMessage - routes one client message to its handler and builds the reply.
func (that *Server) processMessage(ctx context.Context, data []byte) *Message {
	log := that.logger.With("method", "processMessage")

	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		log.Warn("failed to unmarshal message", "error", err)
		return newMessage(actionError, &Payload{Error: errMalformedMessage.Error()})
	}

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Warn("unknown action", "action", message.Action)
		return newMessage(actionError, &Payload{Error: fmt.Sprintf("%s: %q", errUnknownAction, message.Action)})
	}

	var request Payload
	if len(message.Payload) > 0 {
		if err := json.Unmarshal(message.Payload, &request); err != nil {
			log.Warn("failed to unmarshal payload", "action", message.Action, "error", err)
			return newMessage(message.Action, &Payload{Error: fmt.Sprintf("%s: %v", errMalformedMessage, err)})
		}
	}

	response, err := handler(ctx, &request)
	if err != nil {
		return newMessage(message.Action, &Payload{Error: that.clientError(message.Action, err)})
	}

	return newMessage(message.Action, response)
}
