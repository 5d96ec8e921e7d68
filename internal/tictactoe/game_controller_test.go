package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T, size int) *entity.Board {
	t.Helper()

	board, err := entity.NewBoard(size)
	require.NoError(t, err)

	return board
}

// boardFromRows builds a board from rows such as "X.O"; '.' is an empty cell.
func boardFromRows(t *testing.T, rows ...string) *entity.Board {
	t.Helper()

	board := newBoard(t, len(rows))
	for r, row := range rows {
		require.Len(t, row, len(rows))
		for c, ch := range row {
			if ch != '.' {
				board.Cells[r][c] = entity.Mark(string(ch))
			}
		}
	}

	return board
}

func validSizes() []int {
	var sizes []int
	for size := entity.MinBoardSize; size <= entity.MaxBoardSize; size += 2 {
		sizes = append(sizes, size)
	}

	return sizes
}

func TestApplyMove(t *testing.T) {
	t.Run("Continue", func(t *testing.T) {
		// Given: an empty board
		board := newBoard(t, 3)

		// When: X plays the centre
		result, err := ApplyMove(board, 1, 1, entity.MarkX)

		// Then: the mark is placed and the game continues
		require.NoError(t, err)
		assert.Equal(t, ResultContinue, result)
		assert.Equal(t, entity.MarkX, board.At(1, 1))
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where (0, 0) belongs to X
		board := boardFromRows(t,
			"X..",
			".O.",
			"...",
		)
		before := board.Clone()

		// When: O tries to play the same cell
		result, err := ApplyMove(board, 0, 0, entity.MarkO)

		// Then: ErrCellOccupied is returned and no cell changed
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, ResultContinue, result)
		assert.Equal(t, before, board)
	})

	t.Run("Occupied cell is never overwritten on any board", func(t *testing.T) {
		for _, size := range validSizes() {
			board := newBoard(t, size)
			_, err := ApplyMove(board, size/2, size-1, entity.MarkO)
			require.NoError(t, err)
			before := board.Clone()

			_, err = ApplyMove(board, size/2, size-1, entity.MarkX)

			require.ErrorIs(t, err, apperror.ErrCellOccupied, "size %d", size)
			require.Equal(t, before, board, "size %d", size)
		}
	})

	t.Run("Invalid cell", func(t *testing.T) {
		board := newBoard(t, 3)

		for _, cell := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {20, 20}} {
			_, err := ApplyMove(board, cell[0], cell[1], entity.MarkX)

			assert.ErrorIs(t, err, apperror.ErrInvalidCell, "cell %v", cell)
		}
	})

	t.Run("Empty mark is rejected", func(t *testing.T) {
		board := newBoard(t, 3)

		_, err := ApplyMove(board, 0, 0, entity.MarkEmpty)

		require.ErrorIs(t, err, apperror.ErrInvalidCell)
		assert.Equal(t, newBoard(t, 3), board)
	})

	t.Run("Win", func(t *testing.T) {
		// Given: X holds two cells of the top row
		board := boardFromRows(t,
			"XX.",
			"OO.",
			"...",
		)

		// When: X completes the row
		result, err := ApplyMove(board, 0, 2, entity.MarkX)

		// Then: the move wins
		require.NoError(t, err)
		assert.Equal(t, ResultWin, result)
	})

	t.Run("Draw", func(t *testing.T) {
		// Given: one empty cell left and no line available
		board := boardFromRows(t,
			"XOX",
			"XOO",
			"OX.",
		)

		// When: X fills the last cell
		result, err := ApplyMove(board, 2, 2, entity.MarkX)

		// Then: the board is full without a winning line
		require.NoError(t, err)
		assert.Equal(t, ResultDraw, result)
	})

	t.Run("Win on the last cell is a win, not a draw", func(t *testing.T) {
		board := boardFromRows(t,
			"XOX",
			"OXO",
			"OX.",
		)

		result, err := ApplyMove(board, 2, 2, entity.MarkX)

		require.NoError(t, err)
		assert.Equal(t, ResultWin, result)
	})
}

func TestCheckWinner(t *testing.T) {
	t.Run("Row", func(t *testing.T) {
		for _, size := range validSizes() {
			board := newBoard(t, size)
			row := size - 1

			var result Result
			for col := 0; col < size; col++ {
				var err error
				result, err = ApplyMove(board, row, col, entity.MarkX)
				require.NoError(t, err)
			}

			assert.Equal(t, ResultWin, result, "size %d", size)
			assert.True(t, CheckWinner(board, row, size-1, entity.MarkX), "size %d", size)
		}
	})

	t.Run("Column", func(t *testing.T) {
		for _, size := range validSizes() {
			board := newBoard(t, size)

			for row := 0; row < size; row++ {
				_, err := ApplyMove(board, row, 0, entity.MarkO)
				require.NoError(t, err)
			}

			assert.True(t, CheckWinner(board, size-1, 0, entity.MarkO), "size %d", size)
			assert.False(t, CheckWinner(board, size-1, 0, entity.MarkX), "size %d", size)
		}
	})

	t.Run("Main diagonal", func(t *testing.T) {
		for _, size := range validSizes() {
			board := newBoard(t, size)

			for i := 0; i < size; i++ {
				_, err := ApplyMove(board, i, i, entity.MarkX)
				require.NoError(t, err)
			}

			assert.True(t, CheckWinner(board, size-1, size-1, entity.MarkX), "size %d", size)
		}
	})

	t.Run("Anti-diagonal", func(t *testing.T) {
		for _, size := range validSizes() {
			board := newBoard(t, size)

			for i := 0; i < size; i++ {
				_, err := ApplyMove(board, i, size-1-i, entity.MarkO)
				require.NoError(t, err)
			}

			assert.True(t, CheckWinner(board, size-1, 0, entity.MarkO), "size %d", size)
		}
	})

	t.Run("Completed diagonal is not credited to a move off the diagonal", func(t *testing.T) {
		// Given: X owns the main diagonal and plays an unrelated cell
		board := boardFromRows(t,
			"X.O",
			".XO",
			"..X",
		)
		board.Cells[2][0] = entity.MarkX

		// Then: only lines through (2, 0) are evaluated
		assert.False(t, CheckWinner(board, 2, 0, entity.MarkX))
		assert.True(t, CheckWinner(board, 2, 2, entity.MarkX))
	})

	t.Run("Partial line", func(t *testing.T) {
		board := boardFromRows(t,
			"XX.",
			"...",
			"...",
		)

		assert.False(t, CheckWinner(board, 0, 1, entity.MarkX))
	})

	t.Run("Out of range or empty mark", func(t *testing.T) {
		board := newBoard(t, 3)

		assert.False(t, CheckWinner(board, 3, 3, entity.MarkX))
		assert.False(t, CheckWinner(board, 0, 0, entity.MarkEmpty))
	})
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "win", ResultWin.String())
	assert.Equal(t, "draw", ResultDraw.String())
	assert.Equal(t, "continue", ResultContinue.String())
}
