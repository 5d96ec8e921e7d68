package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

type GameManager interface {
	StartGame(playerOne, playerTwo string, size int) (*entity.GameSession, error)
	Restart() (*entity.GameSession, error)
	MakeMove(row, col int) (entity.MoveOutcome, error)
	Session() (*entity.GameSession, error)
	Leaderboard(ctx context.Context, limit int) ([]*entity.Record, error)
}

type Options struct {
	PlayerOne   string
	PlayerTwo   string
	BoardSize   int
	Leaderboard int
}

type screen int

const (
	screenForm screen = iota
	screenBoard
	screenRecords
)

type recordsMsg struct {
	records []*entity.Record
	err     error
}

type Model struct {
	manager   GameManager
	presenter *Presenter
	opts      Options

	screen  screen
	form    gameForm
	session *entity.GameSession
	row     int
	col     int
	banner  string
	err     error
	records []*entity.Record

	width    int
	height   int
	quitting bool
}

func NewModel(manager GameManager, presenter *Presenter, opts Options) Model {
	return Model{
		manager:   manager,
		presenter: presenter,
		opts:      opts,
		screen:    screenForm,
		form:      newGameForm(opts),
		width:     80,
		height:    24,
	}
}

// Run - blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, logger *slog.Logger, manager GameManager, presenter *Presenter, opts Options) error {
	log := logger.With("component", "tui")

	program := tea.NewProgram(NewModel(manager, presenter, opts), tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run terminal UI: %w", err)
	}

	log.Info("terminal UI closed")

	return nil
}

func (m Model) Init() tea.Cmd {
	return m.presenter.wait()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.session != nil && m.session.ID == msg.gameID && m.session.IsOngoing() {
			m.session.Elapsed = msg.elapsed
		}
		return m, m.presenter.wait()

	case notifyMsg:
		m.err = msg.err
		return m, m.presenter.wait()

	case recordsMsg:
		m.records = msg.records
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch m.screen {
		case screenForm:
			return m.updateForm(msg)
		case screenBoard:
			return m.updateBoard(msg)
		case screenRecords:
			return m.updateRecords(msg)
		}
	}

	return m, nil
}

func (m *Model) startSession(session *entity.GameSession) {
	m.session = session
	m.screen = screenBoard
	m.row = session.Board.Size / 2
	m.col = session.Board.Size / 2
	m.err = nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := m.session.Board.Size - 1

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		m.row = max(0, m.row-1)
	case "down", "j":
		m.row = min(last, m.row+1)
	case "left", "h":
		m.col = max(0, m.col-1)
	case "right", "l":
		m.col = min(last, m.col+1)

	case "enter", " ":
		return m.place()

	case "n":
		session, err := m.manager.Restart()
		if err != nil {
			m.err = err
			return m, nil
		}

		m.banner = ""
		m.startSession(session)

	case "esc":
		m.form = newGameForm(m.opts)
		m.screen = screenForm

	case "r":
		m.screen = screenRecords
		m.records = nil
		return m, m.loadRecords()
	}

	return m, nil
}

func (m Model) place() (tea.Model, tea.Cmd) {
	outcome, err := m.manager.MakeMove(m.row, m.col)
	if errors.Is(err, apperror.ErrGameFinished) {
		m.err = errors.New("game over, press n for a new game")
		return m, nil
	}
	if err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil

	switch outcome.Kind {
	case entity.OutcomeRejected:
		m.err = fmt.Errorf("%w, %s keeps the turn", apperror.ErrCellOccupied, outcome.Player.Name)
		return m, nil
	case entity.OutcomeWon:
		m.banner = fmt.Sprintf("%s (%s) wins in %ds", outcome.Player.Name, outcome.Player.Mark, outcome.Elapsed)
	case entity.OutcomeDrawn:
		m.banner = fmt.Sprintf("Draw after %ds", outcome.Elapsed)
	default:
		m.banner = ""
	}

	session, err := m.manager.Session()
	if err != nil {
		m.err = err
		return m, nil
	}

	if outcome.IsTerminal() && session.ID != outcome.GameID {
		m.startSession(session)
		return m, nil
	}

	m.session = session

	return m, nil
}

func (m Model) loadRecords() tea.Cmd {
	manager, limit := m.manager, m.opts.Leaderboard

	return func() tea.Msg {
		records, err := manager.Leaderboard(context.Background(), limit)
		return recordsMsg{records: records, err: err}
	}
}

func (m Model) updateRecords(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "r", "esc", "b":
		m.screen = screenBoard
		m.err = nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenBoard:
		return m.viewBoard()
	case screenRecords:
		return m.viewRecords()
	default:
		return m.viewForm()
	}
}

func (m Model) viewBoard() string {
	var b strings.Builder

	session := m.session

	b.WriteString(titleStyle.Render(fmt.Sprintf("Tic-Tac-Toe %dx%d", session.Board.Size, session.Board.Size)))
	b.WriteString("\n\n")

	for row := 0; row < session.Board.Size; row++ {
		cells := make([]string, 0, session.Board.Size)

		for col := 0; col < session.Board.Size; col++ {
			cells = append(cells, m.renderCell(row, col))
		}

		b.WriteString(strings.Join(cells, ""))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if m.banner != "" {
		b.WriteString(bannerStyle.Render(m.banner))
		b.WriteString("\n")
	}

	b.WriteString(statusBarStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(m.viewError())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("arrows/hjkl: move  enter/space: place  n: new game  r: records  esc: players  q: quit"))

	return b.String()
}

func (m Model) status() string {
	session := m.session

	if session.IsFinished() {
		return fmt.Sprintf("%s vs %s  finished in %ds", session.Players[0].Name, session.Players[1].Name, session.Elapsed)
	}

	current := session.CurrentPlayer()

	return fmt.Sprintf("%s vs %s  turn: %s (%s)  time: %ds",
		session.Players[0].Name, session.Players[1].Name, current.Name, current.Mark, session.Elapsed)
}

func (m Model) renderCell(row, col int) string {
	mark := m.session.Board.At(row, col)

	symbol := string(entity.EmptyFiller)
	if mark != entity.MarkEmpty {
		symbol = string(mark)
	}

	if row == m.row && col == m.col {
		return cursorStyle.Render(symbol)
	}

	switch mark {
	case entity.MarkX:
		symbol = markXStyle.Render(symbol)
	case entity.MarkO:
		symbol = markOStyle.Render(symbol)
	default:
		symbol = dimStyle.Render(symbol)
	}

	return cellStyle.Render(symbol)
}

func (m Model) viewRecords() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Fastest wins"))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
	case m.records == nil:
		b.WriteString(dimStyle.Render("loading..."))
		b.WriteString("\n")
	case len(m.records) == 0:
		b.WriteString(dimStyle.Render("no records yet"))
		b.WriteString("\n")
	}

	for i, record := range m.records {
		fmt.Fprintf(&b, "%3d. %-24s %5ds\n", i+1, record.PlayerName, record.ElapsedSeconds)
	}

	b.WriteString("\n")
	b.WriteString(m.viewError())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("r/esc: back  q: quit"))

	return b.String()
}

func (m Model) viewError() string {
	if m.err == nil {
		return ""
	}

	return errorStyle.Render(m.err.Error())
}
