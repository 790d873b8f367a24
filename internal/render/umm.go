package render

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	ummBase   = "동탄"
	ummTick   = "어"
	ummChosen = "엄"
)

// Umm - encodes a board, the turn and the chosen move as one "umm" line.
// Cell n (1-based) becomes base + n ticks + a mark suffix + "?", followed by the move
// framed by ticks on both sides and a terminator that names the mover.
func Umm(board entity.Board, turn entity.Turn, move int) string {
	var sb strings.Builder

	for i, cell := range board {
		sb.WriteString(ummBase)
		sb.WriteString(strings.Repeat(ummTick, i+1))
		sb.WriteString(markSuffix(cell))
		sb.WriteByte('?')
	}

	ticks := strings.Repeat(ummTick, max(move, 0))
	sb.WriteString(ticks)
	sb.WriteString(ummChosen)
	sb.WriteString(ticks)

	if turn == entity.TurnX {
		sb.WriteString(ummTick + ".")
	} else {
		sb.WriteString(ummTick + "..")
	}

	return sb.String()
}

func markSuffix(cell entity.Cell) string {
	switch cell {
	case entity.MarkX:
		return ","
	case entity.MarkO:
		return ",,"
	default:
		return ""
	}
}
