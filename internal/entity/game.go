package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// GameSession is the state of one game. A new game replaces the whole value.
type GameSession struct {
	ID        string     `json:"id"`
	Board     *Board     `json:"board"`
	Players   [2]*Player `json:"players"`
	Turn      int        `json:"turn"`
	Status    string     `json:"status"`
	Winner    *Player    `json:"winner,omitempty"`
	Elapsed   int        `json:"elapsed"`
	StartedAt time.Time  `json:"started_at"`
}

// NewGameSession - creates an ongoing session; the first player plays X.
func NewGameSession(id string, board *Board, playerOne, playerTwo string) *GameSession {
	return &GameSession{
		ID:    id,
		Board: board,
		Players: [2]*Player{
			{Name: playerOne, Mark: MarkX},
			{Name: playerTwo, Mark: MarkO},
		},
		Turn:      0,
		Status:    StatusOngoing,
		StartedAt: time.Now().UTC(),
	}
}

func (that *GameSession) CurrentPlayer() *Player {
	return that.Players[that.Turn]
}

// PassTurn - hands the move to the other player.
func (that *GameSession) PassTurn() {
	that.Turn = 1 - that.Turn
}

// Finish - marks the session terminal. A nil winner means a draw.
func (that *GameSession) Finish(winner *Player, elapsed int) {
	that.Status = StatusFinished
	that.Winner = winner
	that.Elapsed = elapsed
}

func (that *GameSession) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *GameSession) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *GameSession) IsDraw() bool {
	return that.IsFinished() && that.Winner == nil
}

func (that *GameSession) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// Snapshot - returns a deep copy safe to hand to another goroutine.
func (that *GameSession) Snapshot() *GameSession {
	snapshot := *that
	snapshot.Board = that.Board.Clone()

	for i, player := range that.Players {
		p := *player
		snapshot.Players[i] = &p

		if that.Winner == player {
			snapshot.Winner = &p
		}
	}

	return &snapshot
}

type OutcomeKind string

const (
	OutcomeRejected OutcomeKind = "rejected"
	OutcomeContinue OutcomeKind = "continue"
	OutcomeWon      OutcomeKind = "won"
	OutcomeDrawn    OutcomeKind = "drawn"
)

// MoveOutcome reports what a move did. Player is the next player for OutcomeContinue,
// the winner for OutcomeWon, the player whose move was refused for OutcomeRejected,
// and nil for OutcomeDrawn.
type MoveOutcome struct {
	Kind    OutcomeKind `json:"kind"`
	GameID  string      `json:"game_id"`
	Row     int         `json:"row"`
	Col     int         `json:"col"`
	Player  *Player     `json:"player,omitempty"`
	Elapsed int         `json:"elapsed"`
}

func (that MoveOutcome) IsTerminal() bool {
	return that.Kind == OutcomeWon || that.Kind == OutcomeDrawn
}
