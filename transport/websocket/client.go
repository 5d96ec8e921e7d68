package websocket

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const writeTimeout = 5 * time.Second

// client - one connection. It is also the presenter of the connection's GameManager, so pushes
// arrive both from the read loop and from tracker goroutines; writes are serialized by mu.
type client struct {
	conn    *websocket.Conn
	logger  *slog.Logger
	manager GameManager

	mu sync.Mutex
}

func newClient(conn *websocket.Conn, logger *slog.Logger) *client {
	return &client{
		conn:   conn,
		logger: logger.With("component", "websocket_client"),
	}
}

func (that *client) GameStarted(session *entity.GameSession) {
	that.send(actionGameStart, Payload{Game: session})
}

func (that *client) BoardChanged(session *entity.GameSession) {
	that.send(actionGameTurn, Payload{Game: session})
}

func (that *client) ElapsedChanged(gameID string, elapsed int) {
	that.send(actionGameTick, Payload{GameID: gameID, Elapsed: &elapsed})
}

func (that *client) GameFinished(outcome entity.MoveOutcome) {
	that.send(actionGameFinished, Payload{GameID: outcome.GameID, Outcome: &outcome})
}

func (that *client) Notify(err error) {
	that.send(actionNotify, Payload{Error: err.Error()})
}

func (that *client) sendError(action, reason string) {
	that.send(action, Payload{Error: reason})
}

func (that *client) send(action string, payload Payload) {
	if err := that.sendMessage(action, payload); err != nil {
		that.logger.Warn("failed to send message", "action", action, "error", err)
	}
}

func (that *client) sendMessage(action string, payload Payload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response, err := json.Marshal(Message{
		Action:  action,
		Payload: payloadJSON,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if err = that.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.conn.WriteMessage(websocket.TextMessage, response); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
