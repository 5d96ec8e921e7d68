package usecase

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

type recordRepo interface {
	Append(ctx context.Context, record *entity.Record) error
	List(ctx context.Context) ([]*entity.Record, error)
	Top(ctx context.Context, limit int) ([]*entity.Record, error)
}

type snapshotWriter interface {
	Write(ctx context.Context, session *entity.GameSession) error
}

// Presenter observes a GameManager. Every session it receives is a private copy.
// ElapsedChanged and Notify may be called from background goroutines; implementations
// must not block and must not call back into the GameManager.
type Presenter interface {
	GameStarted(session *entity.GameSession)
	BoardChanged(session *entity.GameSession)
	ElapsedChanged(gameID string, elapsed int)
	GameFinished(outcome entity.MoveOutcome)
	Notify(err error)
}

type noopPresenter struct{}

func (noopPresenter) GameStarted(*entity.GameSession)  {}
func (noopPresenter) BoardChanged(*entity.GameSession) {}
func (noopPresenter) ElapsedChanged(string, int)       {}
func (noopPresenter) GameFinished(entity.MoveOutcome)  {}
func (noopPresenter) Notify(error)                     {}
