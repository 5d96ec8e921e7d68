package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

// Record is one line of the win-time leaderboard. Draws never produce a record.
type Record struct {
	PlayerName     string    `json:"player_name"`
	ElapsedSeconds int       `json:"elapsed_seconds"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewRecord(playerName string, elapsedSeconds int) *Record {
	return &Record{
		PlayerName:     playerName,
		ElapsedSeconds: elapsedSeconds,
		CreatedAt:      time.Now().UTC(),
	}
}

func (that *Record) Validate() error {
	if that.PlayerName == "" {
		return fmt.Errorf("%w: empty player name", apperror.ErrInvalidRecord)
	}

	if that.ElapsedSeconds <= 0 {
		return fmt.Errorf("%w: elapsed seconds must be positive, got %d", apperror.ErrInvalidRecord, that.ElapsedSeconds)
	}

	return nil
}
