package tictactoe

import "github.com/rocketscienceinc/tictactoe-ai/internal/entity"

const (
	// NoMove - the search reached a decided position and has nothing to play.
	NoMove = -1

	winScore = 10
)

type SearchResult struct {
	Score int
	Move  int
	Nodes int
}

type searcher struct {
	board entity.Board
	nodes int
}

// Search - exhaustive minimax from the mover's point of view. X maximizes, O minimizes.
// A win at depth d scores 10-d for X and -10+d for O, a draw scores 0.
// The board is copied, the caller's value is never touched.
func Search(board entity.Board, mover entity.Cell) SearchResult {
	s := &searcher{board: board}

	score, move := s.minimax(mover, 0)

	return SearchResult{Score: score, Move: move, Nodes: s.nodes}
}

func (that *searcher) minimax(mover entity.Cell, depth int) (int, int) {
	that.nodes++

	switch CheckOutcome(that.board) {
	case entity.OutcomeXWins:
		return winScore - depth, NoMove
	case entity.OutcomeOWins:
		return -winScore + depth, NoMove
	case entity.OutcomeDraw:
		return 0, NoMove
	}

	maximizing := mover == entity.MarkX

	bestScore, bestMove := winScore+1, NoMove
	fastestWin := -winScore + depth + 1
	if maximizing {
		bestScore = -winScore - 1
		fastestWin = winScore - depth - 1
	}

	for _, cell := range that.board.EmptyCells() {
		score := that.probe(cell, mover, depth)

		// strict comparison keeps the earlier cell on ties
		if bestMove == NoMove || (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore, bestMove = score, cell
		}

		if bestScore == fastestWin {
			break
		}
	}

	return bestScore, bestMove
}

// probe - plays cell for mover, scores the reply and takes the mark back.
func (that *searcher) probe(cell int, mover entity.Cell, depth int) int {
	that.board[cell] = mover
	defer func() { that.board[cell] = entity.EmptyCell }()

	score, _ := that.minimax(mover.Opponent(), depth+1)

	return score
}
