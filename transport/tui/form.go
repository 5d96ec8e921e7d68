package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// form field indices
const (
	fieldPlayerOne = iota
	fieldPlayerTwo
	fieldSize
	fieldCount
)

type gameForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

func newGameForm(opts Options) gameForm {
	placeholders := [fieldCount]string{"blank for a random name", "blank for a random name", "3"}
	values := [fieldCount]string{opts.PlayerOne, opts.PlayerTwo, strconv.Itoa(opts.BoardSize)}

	var f gameForm
	for i := range f.inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 40
		input.SetValue(values[i])
		f.inputs[i] = input
	}

	f.inputs[fieldSize].CharLimit = 2
	f.inputs[fieldPlayerOne].Focus()

	return f
}

func (f *gameForm) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
	f.inputs[f.focus].CursorEnd()
}

func (f *gameForm) values() (string, string, int, error) {
	raw := strings.TrimSpace(f.inputs[fieldSize].Value())

	size, err := strconv.Atoi(raw)
	if err != nil {
		return "", "", 0, fmt.Errorf("board size %q is not a number", raw)
	}

	return strings.TrimSpace(f.inputs[fieldPlayerOne].Value()), strings.TrimSpace(f.inputs[fieldPlayerTwo].Value()), size, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab", "down":
		m.form.move(1)
		return m, nil

	case "shift+tab", "up":
		m.form.move(-1)
		return m, nil

	case "enter":
		if m.form.focus != fieldSize {
			m.form.move(1)
			return m, nil
		}

		return m.submitForm()
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)

	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	playerOne, playerTwo, size, err := m.form.values()
	if err != nil {
		m.err = err
		return m, nil
	}

	session, err := m.manager.StartGame(playerOne, playerTwo, size)
	if err != nil {
		m.err = err
		return m, nil
	}

	m.startSession(session)

	return m, nil
}

func (m Model) viewForm() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("39")).
		Padding(1, 2).
		Width(60)

	labels := [fieldCount]string{"Player X:", "Player O:", "Size:"}

	var rows []string
	for i, input := range m.form.inputs {
		rows = append(rows, fieldLabel(labels[i], i == m.form.focus)+"  "+input.View())
	}

	sizeHint := fmt.Sprintf("odd, %d..%d", entity.MinBoardSize, entity.MaxBoardSize)

	content := fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s\n%s",
		titleStyle.Render("New Game"),
		strings.Join(rows, "\n\n"),
		dimStyle.Render(sizeHint),
		m.viewError(),
		helpStyle.Render("Enter: next/start  Tab: next field  Esc: quit"),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(content))
}

func fieldLabel(label string, focused bool) string {
	style := lipgloss.NewStyle().Width(10)
	if focused {
		style = style.Bold(true).Foreground(lipgloss.Color("39"))
	} else {
		style = style.Foreground(lipgloss.Color("252"))
	}

	return style.Render(label)
}
