package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// Sentinel - returned by Decide whenever no move can be computed.
const Sentinel = -1

// Decide - returns the best cell (0..8) for the player to move, or Sentinel when the input is
// malformed, unreachable by alternating play, or already finished.
func Decide(turn int, cells []int) int {
	decision, err := Explain(turn, cells)
	if err != nil {
		return Sentinel
	}
	return decision.Move
}

// Explain - same as Decide, but reports why no move was produced and the search details.
// The returned decision always carries Move == Sentinel on error.
func Explain(turn int, cells []int) (*entity.Decision, error) {
	decision := &entity.Decision{
		Board: append([]int(nil), cells...),
		Turn:  turn,
		Move:  Sentinel,
	}

	board, err := entity.ParseBoard(cells)
	if err != nil {
		decision.Reason = err.Error()
		return decision, err
	}

	playerTurn, err := entity.ParseTurn(turn)
	if err != nil {
		decision.Reason = err.Error()
		return decision, err
	}

	if err = ValidateState(board, playerTurn); err != nil {
		decision.Reason = err.Error()
		return decision, err
	}

	result := Search(board, playerTurn.Mark())
	decision.Score = result.Score
	decision.Nodes = result.Nodes

	if result.Move == NoMove {
		decision.Reason = apperror.ErrNoMove.Error()
		return decision, apperror.ErrNoMove
	}

	decision.Move = result.Move

	return decision, nil
}
