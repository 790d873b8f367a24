package enumerate

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/render"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
)

// BoardCount - 3^9, every assignment of empty/X/O to the nine cells.
const BoardCount = 19683

var turns = [...]entity.Turn{entity.TurnX, entity.TurnO}

// Case - a valid (board, turn) pair and the move chosen for it.
type Case struct {
	Board entity.Board
	Turn  entity.Turn
	Move  int
}

// All - decides every board for both turns and keeps the ones with a move.
// Boards are visited with cell 0 as the most significant digit, X to move before O;
// the result order does not depend on the number of workers.
func All(ctx context.Context, workers int) ([]Case, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	chunk := (BoardCount + workers - 1) / workers
	parts := make([][]Case, workers)

	group, groupCtx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		w := w
		from, to := w*chunk, min((w+1)*chunk, BoardCount)

		group.Go(func() error {
			cases, err := decideRange(groupCtx, from, to)
			if err != nil {
				return err
			}
			parts[w] = cases
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("failed to enumerate boards: %w", err)
	}

	var all []Case
	for _, part := range parts {
		all = append(all, part...)
	}

	return all, nil
}

func decideRange(ctx context.Context, from, to int) ([]Case, error) {
	var cases []Case

	for code := from; code < to; code++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		board := BoardAt(code)
		for _, turn := range turns {
			move := tictactoe.Decide(int(turn), board.Ints())
			if move == tictactoe.Sentinel {
				continue
			}

			cases = append(cases, Case{Board: board, Turn: turn, Move: move})
		}
	}

	return cases, nil
}

// BoardAt - the board whose base-3 digits spell code, cell 0 first.
func BoardAt(code int) entity.Board {
	var board entity.Board
	for i := entity.BoardSize - 1; i >= 0; i-- {
		board[i] = entity.Cell(code % 3)
		code /= 3
	}
	return board
}

// WriteUmm - writes one umm line per case, last case first.
func WriteUmm(w io.Writer, cases []Case) error {
	writer := bufio.NewWriter(w)

	for i := len(cases) - 1; i >= 0; i-- {
		c := cases[i]
		if _, err := writer.WriteString(render.Umm(c.Board, c.Turn, c.Move) + "\n"); err != nil {
			return fmt.Errorf("failed to write case %d: %w", i, err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush cases: %w", err)
	}

	return nil
}
