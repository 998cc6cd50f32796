package websocket

import (
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	actionGameNew   = "game:new"
	actionGameState = "game:state"
	actionGameTurn  = "game:turn"
	actionGameReset = "game:reset"
	actionError     = "error"
)

var (
	errMalformedMessage = errors.New("malformed message")
	errUnknownAction    = errors.New("unknown action")
	errGameIDRequired   = errors.New("game_id is required")
	errCellRequired     = errors.New("cell is required")
)

// Message - envelope of every frame in both directions.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload - request fields sent by the client and the reply sent back.
type Payload struct {
	GameID   string         `json:"game_id,omitempty"`
	Mode     string         `json:"mode,omitempty"`
	First    tictactoe.Mark `json:"first,omitempty"`
	Computer tictactoe.Mark `json:"computer,omitempty"`
	Cell     *int           `json:"cell,omitempty"`

	Game  *entity.Game `json:"game,omitempty"`
	Error string       `json:"error,omitempty"`
}

func newMessage(action string, payload *Payload) *Message {
	raw, err := json.Marshal(payload)
	if err != nil {
		raw, _ = json.Marshal(Payload{Error: "failed to encode payload"})
	}

	return &Message{
		Action:  action,
		Payload: raw,
	}
}
