package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// CheckOutcome - returns the mark of the first complete line, a draw for a full board, or none.
func CheckOutcome(board entity.Board) entity.Outcome {
	for _, combo := range entity.WinCombos() {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return outcomeFor(a)
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return entity.OutcomeNone
	}

	return entity.OutcomeDraw
}

// Winners - every distinct mark that owns at least one complete line.
func Winners(board entity.Board) []entity.Cell {
	var winners []entity.Cell

	for _, combo := range entity.WinCombos() {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a == entity.EmptyCell || a != b || b != c {
			continue
		}

		if len(winners) == 0 || winners[0] != a {
			winners = append(winners, a)
		}
		if len(winners) > 1 {
			break
		}
	}

	return winners
}

// ValidateState - checks that the position can arise from alternating play with X first
// and that there is still a move to make.
func ValidateState(board entity.Board, turn entity.Turn) error {
	if !turn.IsValid() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidTurn, turn)
	}

	xCount := board.Count(entity.MarkX)
	oCount := board.Count(entity.MarkO)

	if oCount > xCount || xCount-oCount > 1 {
		return fmt.Errorf("%w: x=%d o=%d", apperror.ErrMarkCount, xCount, oCount)
	}

	switch turn {
	case entity.TurnX:
		if xCount != oCount {
			return fmt.Errorf("%w: X to move with x=%d o=%d", apperror.ErrTurnMismatch, xCount, oCount)
		}
	case entity.TurnO:
		if xCount != oCount+1 {
			return fmt.Errorf("%w: O to move with x=%d o=%d", apperror.ErrTurnMismatch, xCount, oCount)
		}
	}

	if len(Winners(board)) > 1 {
		return apperror.ErrMultipleWinners
	}

	switch outcome := CheckOutcome(board); outcome {
	case entity.OutcomeXWins, entity.OutcomeOWins:
		return fmt.Errorf("%w: %s", apperror.ErrGameFinished, outcome)
	case entity.OutcomeDraw:
		return apperror.ErrBoardFull
	default:
		return nil
	}
}

// Validate - the full check over raw input: shape, domains, reachability, terminal state.
func Validate(turn int, cells []int) error {
	board, err := entity.ParseBoard(cells)
	if err != nil {
		return err
	}

	playerTurn, err := entity.ParseTurn(turn)
	if err != nil {
		return err
	}

	return ValidateState(board, playerTurn)
}

func IsValid(turn int, cells []int) bool {
	return Validate(turn, cells) == nil
}

func outcomeFor(mark entity.Cell) entity.Outcome {
	if mark == entity.MarkX {
		return entity.OutcomeXWins
	}
	return entity.OutcomeOWins
}
