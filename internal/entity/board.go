package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

const (
	MinBoardSize     = 3
	MaxBoardSize     = 15
	DefaultBoardSize = 3

	// EmptyFiller is how an empty cell is rendered in snapshots and plain-text views.
	EmptyFiller = '.'
)

type Mark string

const (
	MarkEmpty Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

// Opponent - returns the mark of the other player.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return MarkEmpty
	}
}

func (that Mark) IsPlayable() bool {
	return that == MarkX || that == MarkO
}

// Board is an N x N grid of marks. Cells are write-once until a new board replaces it.
type Board struct {
	Size  int      `json:"size"`
	Cells [][]Mark `json:"cells"`
}

// ValidateSize - checks that size is odd and within [MinBoardSize, MaxBoardSize].
func ValidateSize(size int) error {
	if size < MinBoardSize || size > MaxBoardSize {
		return fmt.Errorf("%w: %d is out of range [%d, %d]", apperror.ErrInvalidSize, size, MinBoardSize, MaxBoardSize)
	}

	if size%2 == 0 {
		return fmt.Errorf("%w: %d is even", apperror.ErrInvalidSize, size)
	}

	return nil
}

// NewBoard - creates an empty board of the given size.
func NewBoard(size int) (*Board, error) {
	if err := ValidateSize(size); err != nil {
		return nil, err
	}

	cells := make([][]Mark, size)
	for row := range cells {
		cells[row] = make([]Mark, size)
	}

	return &Board{Size: size, Cells: cells}, nil
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.Size && col >= 0 && col < that.Size
}

// At - returns the mark at row, col. Out-of-range coordinates read as empty.
func (that *Board) At(row, col int) Mark {
	if !that.InBounds(row, col) {
		return MarkEmpty
	}

	return that.Cells[row][col]
}

func (that *Board) IsFull() bool {
	for _, row := range that.Cells {
		for _, cell := range row {
			if cell == MarkEmpty {
				return false
			}
		}
	}

	return true
}

// Clone - returns a deep copy that shares no cells with the original.
func (that *Board) Clone() *Board {
	cells := make([][]Mark, len(that.Cells))
	for row := range that.Cells {
		cells[row] = append([]Mark(nil), that.Cells[row]...)
	}

	return &Board{Size: that.Size, Cells: cells}
}

// Render - serializes the grid as rows of space-separated symbols.
func (that *Board) Render(filler rune) string {
	var sb strings.Builder

	for _, row := range that.Cells {
		for col, cell := range row {
			if col > 0 {
				sb.WriteByte(' ')
			}

			if cell == MarkEmpty {
				sb.WriteRune(filler)
				continue
			}

			sb.WriteString(string(cell))
		}

		sb.WriteByte('\n')
	}

	return sb.String()
}
