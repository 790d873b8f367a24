package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	t.Run("Builds a board from valid cells", func(t *testing.T) {
		// Given: nine cells in the 0..2 domain
		cells := []int{1, 2, 0, 0, 1, 0, 0, 0, 2}

		// When: parsing the board
		board, err := ParseBoard(cells)

		// Then: every cell keeps its position
		require.NoError(t, err)
		assert.Equal(t, Board{MarkX, MarkO, EmptyCell, EmptyCell, MarkX, EmptyCell, EmptyCell, EmptyCell, MarkO}, board)
	})

	t.Run("Rejects a board with the wrong number of cells", func(t *testing.T) {
		// Given: eight cells
		cells := []int{0, 0, 0, 0, 0, 0, 0, 0}

		// When: parsing the board
		_, err := ParseBoard(cells)

		// Then: it is malformed input
		require.ErrorIs(t, err, apperror.ErrBoardSize)
		assert.ErrorIs(t, err, apperror.ErrMalformedInput)
	})

	t.Run("Rejects a nil board", func(t *testing.T) {
		_, err := ParseBoard(nil)

		assert.ErrorIs(t, err, apperror.ErrBoardSize)
	})

	t.Run("Rejects out of domain cell values", func(t *testing.T) {
		for _, value := range []int{-1, 3, 42} {
			// Given: a board with one bad value
			cells := []int{0, 0, 0, 0, value, 0, 0, 0, 0}

			// When: parsing the board
			_, err := ParseBoard(cells)

			// Then: it is malformed input
			require.ErrorIs(t, err, apperror.ErrInvalidCell, "value %d", value)
			assert.Contains(t, err.Error(), "cell 4")
		}
	})
}

func TestParseTurn(t *testing.T) {
	turn, err := ParseTurn(0)
	require.NoError(t, err)
	assert.Equal(t, MarkX, turn.Mark())

	turn, err = ParseTurn(1)
	require.NoError(t, err)
	assert.Equal(t, MarkO, turn.Mark())

	_, err = ParseTurn(2)
	require.ErrorIs(t, err, apperror.ErrInvalidTurn)

	_, err = ParseTurn(-1)
	assert.ErrorIs(t, err, apperror.ErrMalformedInput)
}

func TestBoard_EmptyCells(t *testing.T) {
	t.Run("Empty board lists center, corners, then edges", func(t *testing.T) {
		var board Board

		assert.Equal(t, []int{4, 0, 2, 6, 8, 1, 3, 5, 7}, board.EmptyCells())
	})

	t.Run("Occupied cells are skipped", func(t *testing.T) {
		// Given: X in the center and O in the top-left corner
		board := Board{MarkO, EmptyCell, EmptyCell, EmptyCell, MarkX, EmptyCell, EmptyCell, EmptyCell, EmptyCell}

		// When: listing empty cells
		cells := board.EmptyCells()

		// Then: the order is preserved without the occupied cells
		assert.Equal(t, []int{2, 6, 8, 1, 3, 5, 7}, cells)
	})

	t.Run("Full board has no empty cells", func(t *testing.T) {
		board := Board{MarkX, MarkO, MarkX, MarkX, MarkO, MarkO, MarkO, MarkX, MarkX}

		assert.Empty(t, board.EmptyCells())
		assert.True(t, board.IsFull())
	})
}

func TestBoard_Count(t *testing.T) {
	board := Board{MarkX, MarkO, MarkX, EmptyCell, MarkO, EmptyCell, EmptyCell, EmptyCell, MarkX}

	assert.Equal(t, 3, board.Count(MarkX))
	assert.Equal(t, 2, board.Count(MarkO))
	assert.Equal(t, 4, board.Count(EmptyCell))
	assert.False(t, board.IsFull())
}

func TestBoard_Formatting(t *testing.T) {
	board := Board{MarkX, MarkO, EmptyCell, EmptyCell, MarkX, EmptyCell, EmptyCell, EmptyCell, MarkO}

	assert.Equal(t, "120010002", board.Key())
	assert.Equal(t, "XO./.X./..O", board.String())
	assert.Equal(t, []int{1, 2, 0, 0, 1, 0, 0, 0, 2}, board.Ints())
}

func TestCell_Opponent(t *testing.T) {
	assert.Equal(t, MarkO, MarkX.Opponent())
	assert.Equal(t, MarkX, MarkO.Opponent())
}

func TestWinCombos(t *testing.T) {
	// every cell belongs to at least two lines and the center to four
	seen := map[int]int{}
	for _, combo := range WinCombos() {
		for _, i := range combo {
			seen[i]++
		}
	}

	require.Len(t, seen, BoardSize)
	assert.Equal(t, 4, seen[4])
	assert.Equal(t, 3, seen[0])
	assert.Equal(t, 2, seen[1])
}

func TestFixedTables_ReturnCopies(t *testing.T) {
	// Given: copies of both tables with their first entries rewritten
	order := PreferenceOrder()
	order[0], order[1] = order[1], order[0]

	combos := WinCombos()
	combos[0] = [3]int{3, 4, 5}

	// Then: the package tables are untouched
	assert.Equal(t, [BoardSize]int{4, 0, 2, 6, 8, 1, 3, 5, 7}, PreferenceOrder())
	assert.Equal(t, [3]int{0, 1, 2}, WinCombos()[0])
	assert.Equal(t, []int{4, 0, 2, 6, 8, 1, 3, 5, 7}, Board{}.EmptyCells())
}
