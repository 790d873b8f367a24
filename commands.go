package main

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-ai/internal"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/enumerate"
	"github.com/rocketscienceinc/tictactoe-ai/internal/render"
	"github.com/rocketscienceinc/tictactoe-ai/internal/tictactoe"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and WebSocket servers",
	RunE: func(*cobra.Command, []string) error {
		if err := app.RunApp(logger, conf); err != nil {
			return fmt.Errorf("app run failed: %w", err)
		}
		return nil
	},
}

func newDecideCmd() *cobra.Command {
	var (
		turn   int
		board  []int
		pretty bool
		umm    bool
	)

	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Print the best cell (0-8) for the player to move, or -1",
		Example: `  tictactoe-ai decide --turn 0 --board 0,0,0,0,0,0,0,0,0
  tictactoe-ai decide --turn 1 --board 0,0,0,0,1,0,0,0,0 --pretty`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			decision, err := tictactoe.Explain(turn, board)
			if err != nil {
				logger.Debug("no move", "error", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, decision.Move)

			if err != nil || (!pretty && !umm) {
				return nil
			}

			parsed, _ := entity.ParseBoard(board)
			if pretty {
				fmt.Fprintln(out, render.Pretty(termenv.NewOutput(out), parsed, decision.Move))
			}
			if umm {
				fmt.Fprintln(out, render.Umm(parsed, entity.Turn(turn), decision.Move))
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&turn, "turn", 0, "player to move: 0 for X, 1 for O")
	cmd.Flags().IntSliceVar(&board, "board", make([]int, entity.BoardSize), "nine cells, 0 empty, 1 X, 2 O")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "also draw the board with the chosen cell")
	cmd.Flags().BoolVar(&umm, "umm", false, "also print the umm encoding")

	return cmd
}

func newEnumerateCmd() *cobra.Command {
	var (
		workers int
		output  string
	)

	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "Decide every valid position and write the umm lines, last case first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("workers") {
				workers = conf.Enumerate.Workers
			}
			if !cmd.Flags().Changed("output") {
				output = conf.Enumerate.Output
			}

			cases, err := enumerate.All(cmd.Context(), workers)
			if err != nil {
				return err
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			if err = writeAndClose(file, cases); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			logger.Info("enumeration written", "cases", len(cases), "output", output)

			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers, 0 uses every CPU")
	cmd.Flags().StringVar(&output, "output", "case.umm", "file to write")

	return cmd
}

// writeAndClose - the close error is reported when the write itself succeeded.
func writeAndClose(w io.WriteCloser, cases []enumerate.Case) error {
	if err := enumerate.WriteUmm(w, cases); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
