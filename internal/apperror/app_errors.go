package apperror

import (
	"errors"
	"fmt"
)

// top-level categories, every specific error below wraps one of them.
var (
	ErrMalformedInput   = errors.New("malformed input")
	ErrUnreachableState = errors.New("unreachable state")
	ErrGameFinished     = errors.New("game is already finished")
	ErrNoMove           = errors.New("search returned no move")
)

var (
	ErrBoardSize   = fmt.Errorf("%w: board must have exactly 9 cells", ErrMalformedInput)
	ErrInvalidCell = fmt.Errorf("%w: invalid cell value", ErrMalformedInput)
	ErrInvalidTurn = fmt.Errorf("%w: invalid turn", ErrMalformedInput)

	ErrMarkCount       = fmt.Errorf("%w: mark counts do not alternate", ErrUnreachableState)
	ErrTurnMismatch    = fmt.Errorf("%w: it's not this player's turn", ErrUnreachableState)
	ErrMultipleWinners = fmt.Errorf("%w: both players have a line", ErrUnreachableState)

	ErrBoardFull = fmt.Errorf("%w: board is full", ErrGameFinished)
)
