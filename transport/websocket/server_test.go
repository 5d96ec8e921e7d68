package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

type fixture struct {
	conn    *websocket.Conn
	clock   *clock.Mock
	records repository.RecordRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	mockClock := clock.NewMock()

	records, err := repository.NewFileRecordRepository(filepath.Join(t.TempDir(), "records.csv"))
	require.NoError(t, err)

	server := New(logger, func(presenter usecase.Presenter) GameManager {
		return usecase.NewGameManager(logger, records, nil, presenter, mockClock, usecase.Options{})
	}, 3)

	ctx, cancel := context.WithCancel(context.Background())
	httpServer := httptest.NewServer(server.Handler(ctx))

	url := "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		httpServer.Close()
	})

	return &fixture{conn: conn, clock: mockClock, records: records}
}

func (that *fixture) send(t *testing.T, action string, payload any) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	require.NoError(t, that.conn.WriteJSON(Message{Action: action, Payload: body}))
}

// read - returns the next message with the given action, skipping the others.
func (that *fixture) read(t *testing.T, action string) Payload {
	t.Helper()

	require.NoError(t, that.conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	for {
		var msg Message
		require.NoError(t, that.conn.ReadJSON(&msg))

		if msg.Action != action {
			continue
		}

		var payload Payload
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))

		return payload
	}
}

func (that *fixture) move(t *testing.T, row, col int) {
	t.Helper()

	that.send(t, actionGameTurn, map[string]int{"row": row, "col": col})
}

func TestServer_FullGame(t *testing.T) {
	f := newFixture(t)

	// Given: a started game
	f.send(t, actionGameStart, map[string]any{"player_one": "Alice1", "player_two": "Bob22"})

	started := f.read(t, actionGameStart)
	require.NotNil(t, started.Game)
	assert.Equal(t, "Alice1", started.Game.Players[0].Name)
	assert.Equal(t, entity.MarkX, started.Game.Players[0].Mark)
	assert.Equal(t, 3, started.Game.Board.Size)
	gameID := started.Game.ID

	// When: three seconds pass and X fills the top row
	for _, cell := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		f.move(t, cell[0], cell[1])
		f.read(t, actionGameTurn)
	}

	for second := 1; second <= 3; second++ {
		f.clock.Add(time.Second)

		tick := f.read(t, actionGameTick)
		require.NotNil(t, tick.Elapsed)
		assert.Equal(t, gameID, tick.GameID)
		assert.Equal(t, second, *tick.Elapsed)
	}

	f.move(t, 0, 2)

	// Then: the final board and the win are pushed
	board := f.read(t, actionGameTurn)
	require.NotNil(t, board.Game)
	assert.Equal(t, entity.MarkX, board.Game.Board.At(0, 2))
	assert.Equal(t, entity.StatusFinished, board.Game.Status)

	finished := f.read(t, actionGameFinished)
	require.NotNil(t, finished.Outcome)
	assert.Equal(t, entity.OutcomeWon, finished.Outcome.Kind)
	assert.Equal(t, "Alice1", finished.Outcome.Player.Name)
	assert.Equal(t, 3, finished.Outcome.Elapsed)

	// And: the win is recorded
	require.Eventually(t, func() bool {
		records, err := f.records.List(context.Background())
		return err == nil && len(records) == 1
	}, 5*time.Second, 10*time.Millisecond)

	f.send(t, actionRecordsList, map[string]int{"top": 5})

	list := f.read(t, actionRecordsList)
	require.Len(t, list.Records, 1)
	assert.Equal(t, "Alice1", list.Records[0].PlayerName)
	assert.Equal(t, 3, list.Records[0].ElapsedSeconds)

	// And: the finished game refuses further moves
	f.move(t, 2, 2)

	refused := f.read(t, actionGameTurn)
	assert.NotEmpty(t, refused.Error)
}

func TestServer_OccupiedCell(t *testing.T) {
	f := newFixture(t)

	f.send(t, actionGameStart, map[string]any{"player_one": "Alice1", "player_two": "Bob22"})
	f.read(t, actionGameStart)

	f.move(t, 1, 1)
	f.read(t, actionGameTurn)

	// When: O plays the same cell
	f.move(t, 1, 1)

	// Then: the move is rejected and O keeps the turn
	rejected := f.read(t, actionGameTurn)
	require.NotNil(t, rejected.Outcome)
	assert.Equal(t, entity.OutcomeRejected, rejected.Outcome.Kind)
	assert.Equal(t, "Bob22", rejected.Outcome.Player.Name)
	assert.NotEmpty(t, rejected.Error)
}

func TestServer_Errors(t *testing.T) {
	f := newFixture(t)

	t.Run("invalid username", func(t *testing.T) {
		f.send(t, actionGameStart, map[string]any{"player_one": "Al", "player_two": "Bob22"})

		response := f.read(t, actionGameStart)

		assert.Nil(t, response.Game)
		assert.Contains(t, response.Error, "invalid username")
	})

	t.Run("even board", func(t *testing.T) {
		f.send(t, actionGameStart, map[string]any{"player_one": "Alice1", "player_two": "Bob22", "size": 4})

		response := f.read(t, actionGameStart)

		assert.Nil(t, response.Game)
		assert.NotEmpty(t, response.Error)
	})

	t.Run("move without game", func(t *testing.T) {
		f.move(t, 0, 0)

		response := f.read(t, actionGameTurn)

		assert.NotEmpty(t, response.Error)
	})

	t.Run("move without cell", func(t *testing.T) {
		f.send(t, actionGameTurn, map[string]int{"row": 1})

		response := f.read(t, actionGameTurn)

		assert.Equal(t, "row and col are required", response.Error)
	})

	t.Run("unknown action", func(t *testing.T) {
		f.send(t, "game:undo", map[string]int{})

		response := f.read(t, "game:undo")

		assert.Equal(t, "unknown action", response.Error)
	})

	t.Run("empty records", func(t *testing.T) {
		f.send(t, actionRecordsList, nil)

		response := f.read(t, actionRecordsList)

		assert.Empty(t, response.Records)
		assert.Empty(t, response.Error)
	})
}
