package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

type Result int

const (
	ResultContinue Result = iota
	ResultWin
	ResultDraw
)

func (that Result) String() string {
	switch that {
	case ResultWin:
		return "win"
	case ResultDraw:
		return "draw"
	default:
		return "continue"
	}
}

// ApplyMove - places mark at row, col and reports whether the move won, drew or the game continues.
// An occupied cell returns ErrCellOccupied and leaves the board untouched.
func ApplyMove(board *entity.Board, row, col int, mark entity.Mark) (Result, error) {
	if err := validateMove(board, row, col, mark); err != nil {
		return ResultContinue, fmt.Errorf("invalid move: %w", err)
	}

	board.Cells[row][col] = mark

	if CheckWinner(board, row, col, mark) {
		return ResultWin, nil
	}

	if board.IsFull() {
		return ResultDraw, nil
	}

	return ResultContinue, nil
}

// validateMove - checks if the move is valid.
func validateMove(board *entity.Board, row, col int, mark entity.Mark) error {
	if !mark.IsPlayable() {
		return fmt.Errorf("%w: mark %q", apperror.ErrInvalidCell, mark)
	}

	if !board.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) on a %dx%d board", apperror.ErrInvalidCell, row, col, board.Size, board.Size)
	}

	if board.Cells[row][col] != entity.MarkEmpty {
		return apperror.ErrCellOccupied
	}

	return nil
}

// CheckWinner - reports whether a line through row, col is completely filled with mark.
// Only the lines through the last move can have been completed by it.
func CheckWinner(board *entity.Board, row, col int, mark entity.Mark) bool {
	if !mark.IsPlayable() || !board.InBounds(row, col) {
		return false
	}

	size := board.Size

	if lineFilled(size, mark, func(i int) entity.Mark { return board.Cells[row][i] }) {
		return true
	}

	if lineFilled(size, mark, func(i int) entity.Mark { return board.Cells[i][col] }) {
		return true
	}

	if row == col && lineFilled(size, mark, func(i int) entity.Mark { return board.Cells[i][i] }) {
		return true
	}

	if row+col == size-1 && lineFilled(size, mark, func(i int) entity.Mark { return board.Cells[i][size-1-i] }) {
		return true
	}

	return false
}

func lineFilled(size int, mark entity.Mark, at func(i int) entity.Mark) bool {
	for i := 0; i < size; i++ {
		if at(i) != mark {
			return false
		}
	}

	return true
}
