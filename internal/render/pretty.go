package render

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	chosenColor = "2"
	rowDivider  = "---+---+---"
)

// Pretty - a 3x3 grid for terminals with the chosen move highlighted.
// Pass a negative move to render the board alone.
func Pretty(output *termenv.Output, board entity.Board, move int) string {
	rows := make([]string, 0, 5)

	for row := 0; row < 3; row++ {
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			i := row*3 + col
			cells[col] = board[i].String()
			if i == move {
				cells[col] = output.String("*").Bold().Foreground(output.Color(chosenColor)).String()
			}
		}

		rows = append(rows, " "+strings.Join(cells, " | "))
		if row < 2 {
			rows = append(rows, rowDivider)
		}
	}

	return strings.Join(rows, "\n")
}
