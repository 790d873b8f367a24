package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

type Cell int

const (
	EmptyCell Cell = iota
	MarkX
	MarkO
)

type Turn int

const (
	TurnX Turn = iota
	TurnO
)

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeXWins
	OutcomeOWins
	OutcomeDraw
)

const BoardSize = 9

// Board - cells in row-major order:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Board [BoardSize]Cell

var (
	winCombos = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}

	preferenceOrder = [BoardSize]int{4, 0, 2, 6, 8, 1, 3, 5, 7}
)

// WinCombos - rows, then columns, then diagonals. Returns a copy.
func WinCombos() [8][3]int {
	return winCombos
}

// PreferenceOrder - center, corners, edges. Ties between equally scored moves go to the earlier cell.
// Returns a copy.
func PreferenceOrder() [BoardSize]int {
	return preferenceOrder
}

func (c Cell) IsValid() bool {
	return c == EmptyCell || c == MarkX || c == MarkO
}

func (c Cell) String() string {
	switch c {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	case EmptyCell:
		return "."
	default:
		return "?"
	}
}

// Opponent - returns the other player's mark.
func (c Cell) Opponent() Cell {
	if c == MarkX {
		return MarkO
	}
	return MarkX
}

func (t Turn) IsValid() bool {
	return t == TurnX || t == TurnO
}

// Mark - the mark placed by the player whose turn it is.
func (t Turn) Mark() Cell {
	if t == TurnO {
		return MarkO
	}
	return MarkX
}

func (t Turn) String() string {
	return t.Mark().String()
}

func (o Outcome) IsDecided() bool {
	return o != OutcomeNone
}

func (o Outcome) String() string {
	switch o {
	case OutcomeXWins:
		return "x_wins"
	case OutcomeOWins:
		return "o_wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "none"
	}
}

// ParseBoard - builds a board from raw cell values, rejecting wrong sizes and unknown values.
func ParseBoard(cells []int) (Board, error) {
	var board Board

	if len(cells) != BoardSize {
		return board, fmt.Errorf("%w: got %d", apperror.ErrBoardSize, len(cells))
	}

	for i, value := range cells {
		cell := Cell(value)
		if !cell.IsValid() {
			return board, fmt.Errorf("%w: cell %d has value %d", apperror.ErrInvalidCell, i, value)
		}
		board[i] = cell
	}

	return board, nil
}

func ParseTurn(value int) (Turn, error) {
	turn := Turn(value)
	if !turn.IsValid() {
		return turn, fmt.Errorf("%w: %d", apperror.ErrInvalidTurn, value)
	}
	return turn, nil
}

func (that Board) Count(mark Cell) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}
	return count
}

func (that Board) IsFull() bool {
	return that.Count(EmptyCell) == 0
}

// EmptyCells - returns the empty cell indices in PreferenceOrder.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for _, i := range preferenceOrder {
		if that[i] == EmptyCell {
			cells = append(cells, i)
		}
	}
	return cells
}

func (that Board) Ints() []int {
	cells := make([]int, BoardSize)
	for i, cell := range that {
		cells[i] = int(cell)
	}
	return cells
}

// Key - compact form such as "120000000", used for cache keys and logs.
func (that Board) Key() string {
	var sb strings.Builder
	sb.Grow(BoardSize)
	for _, cell := range that {
		sb.WriteString(strconv.Itoa(int(cell)))
	}
	return sb.String()
}

func (that Board) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sb.WriteString(that[row*3+col].String())
		}
		if row < 2 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
