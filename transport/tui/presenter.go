package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const eventBuffer = 64

type tickMsg struct {
	gameID  string
	elapsed int
}

type notifyMsg struct {
	err error
}

// Presenter - forwards what happens off the UI goroutine (tracker ticks, persistence failures)
// into the bubbletea program. Session changes are read by the model right after each key press,
// so the remaining callbacks have nothing to deliver.
type Presenter struct {
	events chan tea.Msg
}

func NewPresenter() *Presenter {
	return &Presenter{
		events: make(chan tea.Msg, eventBuffer),
	}
}

func (that *Presenter) GameStarted(*entity.GameSession)  {}
func (that *Presenter) BoardChanged(*entity.GameSession) {}
func (that *Presenter) GameFinished(entity.MoveOutcome)  {}

func (that *Presenter) ElapsedChanged(gameID string, elapsed int) {
	that.push(tickMsg{gameID: gameID, elapsed: elapsed})
}

func (that *Presenter) Notify(err error) {
	that.push(notifyMsg{err: err})
}

// push never blocks; a full buffer drops the event.
func (that *Presenter) push(msg tea.Msg) {
	select {
	case that.events <- msg:
	default:
	}
}

// wait - a command that delivers the next event to Update.
func (that *Presenter) wait() tea.Cmd {
	return func() tea.Msg {
		return <-that.events
	}
}
