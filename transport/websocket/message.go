package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const (
	actionGameStart    = "game:start"
	actionGameTurn     = "game:turn"
	actionGameTick     = "game:tick"
	actionGameFinished = "game:finished"
	actionRecordsList  = "records:list"
	actionNotify       = "notify"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload - the union of every request and response body. Row and Col are pointers because 0 is a valid cell.
type Payload struct {
	PlayerOne string `json:"player_one,omitempty"`
	PlayerTwo string `json:"player_two,omitempty"`
	Size      int    `json:"size,omitempty"`
	Row       *int   `json:"row,omitempty"`
	Col       *int   `json:"col,omitempty"`
	Top       int    `json:"top,omitempty"`

	Game    *entity.GameSession `json:"game,omitempty"`
	Outcome *entity.MoveOutcome `json:"outcome,omitempty"`
	GameID  string              `json:"game_id,omitempty"`
	Elapsed *int                `json:"elapsed,omitempty"`
	Records []*entity.Record    `json:"records,omitempty"`
	Error   string              `json:"error,omitempty"`
}
