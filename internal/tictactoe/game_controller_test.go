package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	e = entity.EmptyCell
	x = entity.MarkX
	o = entity.MarkO
)

func TestCheckOutcome(t *testing.T) {
	t.Run("Winner X", func(t *testing.T) {
		// Given: a board where X owns the left column
		board := entity.Board{x, o, e, x, o, e, x, e, e}

		// When: checking the outcome
		outcome := CheckOutcome(board)

		// Then: X should be declared the winner
		assert.Equal(t, entity.OutcomeXWins, outcome)
	})

	t.Run("Winner O on a diagonal", func(t *testing.T) {
		board := entity.Board{x, x, o, e, o, x, o, e, e}

		assert.Equal(t, entity.OutcomeOWins, CheckOutcome(board))
	})

	t.Run("Ongoing game", func(t *testing.T) {
		// Given: a board with no complete line and empty cells left
		board := entity.Board{x, o, x, e, o, e, x, e, e}

		// When: checking the outcome
		outcome := CheckOutcome(board)

		// Then: the game should continue
		assert.Equal(t, entity.OutcomeNone, outcome)
		assert.False(t, outcome.IsDecided())
	})

	t.Run("Draw", func(t *testing.T) {
		// Given: a full board with no complete line
		board := entity.Board{o, x, o, o, x, x, x, o, x}

		// When: checking the outcome
		outcome := CheckOutcome(board)

		// Then: the game should be declared a draw
		assert.Equal(t, entity.OutcomeDraw, outcome)
	})

	t.Run("Win on the last cell is a win, not a draw", func(t *testing.T) {
		board := entity.Board{x, o, x, o, x, o, o, x, x}

		assert.Equal(t, entity.OutcomeXWins, CheckOutcome(board))
	})

	t.Run("First complete line in table order wins", func(t *testing.T) {
		// Given: an impossible board with an X row above an O row
		board := entity.Board{x, x, x, o, o, o, e, e, e}

		// When: checking the outcome
		outcome := CheckOutcome(board)

		// Then: the top row is found first
		assert.Equal(t, entity.OutcomeXWins, outcome)
	})
}

func TestWinners(t *testing.T) {
	t.Run("No winners", func(t *testing.T) {
		assert.Empty(t, Winners(entity.Board{}))
	})

	t.Run("Two lines of the same mark count once", func(t *testing.T) {
		board := entity.Board{x, x, x, o, x, o, o, o, x}

		assert.Equal(t, []entity.Cell{x}, Winners(board))
	})

	t.Run("Both marks", func(t *testing.T) {
		board := entity.Board{x, x, x, o, o, o, e, e, e}

		assert.ElementsMatch(t, []entity.Cell{x, o}, Winners(board))
	})
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name  string
		turn  int
		cells []int
		err   error
	}{
		{name: "empty board, X to move", turn: 0, cells: []int{0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{name: "one X, O to move", turn: 1, cells: []int{0, 0, 0, 0, 1, 0, 0, 0, 0}},
		{name: "mid game, X to move", turn: 0, cells: []int{1, 2, 0, 0, 1, 0, 0, 0, 2}},
		{name: "short board", turn: 0, cells: []int{0, 0, 0}, err: apperror.ErrBoardSize},
		{name: "long board", turn: 0, cells: make([]int, 10), err: apperror.ErrBoardSize},
		{name: "bad cell", turn: 0, cells: []int{0, 0, 0, 0, 3, 0, 0, 0, 0}, err: apperror.ErrInvalidCell},
		{name: "bad turn", turn: 2, cells: []int{0, 0, 0, 0, 0, 0, 0, 0, 0}, err: apperror.ErrInvalidTurn},
		{name: "O moved first", turn: 0, cells: []int{0, 0, 0, 0, 2, 0, 0, 0, 0}, err: apperror.ErrMarkCount},
		{name: "X moved twice", turn: 1, cells: []int{1, 0, 0, 0, 1, 0, 0, 0, 0}, err: apperror.ErrMarkCount},
		{name: "O to move on empty board", turn: 1, cells: []int{0, 0, 0, 0, 0, 0, 0, 0, 0}, err: apperror.ErrTurnMismatch},
		{name: "X to move after X", turn: 0, cells: []int{0, 0, 0, 0, 1, 0, 0, 0, 0}, err: apperror.ErrTurnMismatch},
		{name: "both players won", turn: 1, cells: []int{1, 1, 1, 2, 2, 2, 1, 0, 0}, err: apperror.ErrMultipleWinners},
		{name: "X already won", turn: 1, cells: []int{1, 1, 1, 0, 2, 0, 0, 0, 2}, err: apperror.ErrGameFinished},
		{name: "O already won", turn: 0, cells: []int{2, 1, 1, 0, 2, 1, 0, 0, 2}, err: apperror.ErrGameFinished},
		{name: "draw", turn: 1, cells: []int{2, 1, 2, 2, 1, 1, 1, 2, 1}, err: apperror.ErrBoardFull},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// When: validating the state
			err := Validate(tc.turn, tc.cells)

			// Then: the specific check fails, or none does
			if tc.err == nil {
				require.NoError(t, err)
				assert.True(t, IsValid(tc.turn, tc.cells))
				return
			}

			require.ErrorIs(t, err, tc.err)
			assert.False(t, IsValid(tc.turn, tc.cells))
		})
	}
}

func TestValidate_Categories(t *testing.T) {
	assert.ErrorIs(t, Validate(0, []int{0}), apperror.ErrMalformedInput)
	assert.ErrorIs(t, Validate(1, make([]int, 9)), apperror.ErrUnreachableState)
	assert.ErrorIs(t, Validate(1, []int{1, 1, 1, 2, 2, 2, 1, 0, 0}), apperror.ErrUnreachableState)
	assert.ErrorIs(t, Validate(1, []int{2, 1, 2, 2, 1, 1, 1, 2, 1}), apperror.ErrGameFinished)
}

func TestValidateState_DoesNotMutateBoard(t *testing.T) {
	board := entity.Board{x, o, e, e, x, e, e, e, o}
	before := board

	require.NoError(t, ValidateState(board, entity.TurnX))
	assert.Equal(t, before, board)
}
