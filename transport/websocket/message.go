package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const (
	actionGameNew   = "game:new"
	actionGameJoin  = "game:join"
	actionGameLeave = "game:leave"
	actionGameTurn  = "game:turn"
	actionGameReset = "game:reset"
	actionGameState = "game:state"
	actionGameMove  = "game:move"
	actionError     = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is the body of every message in both directions.
type Payload struct {
	GameID string        `json:"game_id,omitempty"`
	Color  *entity.Color `json:"color,omitempty"`
	Row    *int          `json:"row,omitempty"`
	Column *int          `json:"column,omitempty"`

	Game  *entity.Game `json:"game,omitempty"`
	Move  *entity.Move `json:"move,omitempty"`
	Error string       `json:"error,omitempty"`
}

func newMessage(action string, payload Payload) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Message{Action: action, Payload: body})
}
