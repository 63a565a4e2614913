package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-rat/internal/config"
	"github.com/vovakirdan/snake-rat/internal/core"
	"github.com/vovakirdan/snake-rat/internal/games/snakerat"
)

var (
	flagSimSteps int
	flagSimMoves string
	flagSimBoard bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game and print its states",
	Long: `Run the game without a terminal UI, one loop iteration per step,
and print the state after each one. Useful to reproduce a game from a seed.

--moves is read one character per step; steps past its end are timeouts:
  u d l r  - steer up, down, left, right
  n        - restart (only after death)
  .        - timeout, the snake keeps its heading

Examples:
  snakerat sim --seed 1 --moves rrdd --steps 6
  snakerat sim --seed 7 --steps 100 --board`,
	Args: cobra.NoArgs,
	Run:  runSimCmd,
}

func init() {
	simCmd.Flags().IntVar(&flagSimSteps, "steps", 20, "Number of loop iterations to run")
	simCmd.Flags().StringVar(&flagSimMoves, "moves", "", "Input script, one character per step")
	simCmd.Flags().BoolVar(&flagSimBoard, "board", false, "Print the board after the last step")
}

func runSimCmd(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if err := runSim(cmd.OutOrStdout(), cfg, flagSeed, flagSimSteps, flagSimMoves, flagSimBoard); err != nil {
		fail("%v", err)
	}
}

// runSim plays steps iterations of a seeded game and writes each state to w.
func runSim(w io.Writer, cfg config.SnakeRatConfig, seed int64, steps int, moves string, board bool) error {
	script := []rune(moves)
	if len(script) > steps {
		steps = len(script)
	}

	rc := core.DefaultConfig()
	rc.Seed = seed
	game := snakerat.New(cfg)
	game.Reset(rc)
	fmt.Fprintf(w, "start\n%s", game.DebugState())

	for i := 0; i < steps; i++ {
		r := '.'
		if i < len(script) {
			r = script[i]
		}
		frame, err := simFrame(r)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}

		res := game.Step(frame)
		label := ""
		if res.Restarted {
			label = " (restart)"
		}
		fmt.Fprintf(w, "step %d [%c]%s\n%s", i+1, r, label, game.DebugState())
	}

	if board {
		snap := game.Snapshot()
		area := snakerat.BoardRect(snap.GridSize)
		scr := core.NewScreen(area.W, area.H)
		snakerat.RenderSnapshot(scr, snap)
		for y := 0; y < scr.Height(); y++ {
			fmt.Fprintln(w, strings.TrimRight(scr.Row(y), " "))
		}
	}
	return nil
}

// simFrame converts one script character to an input frame.
func simFrame(r rune) (core.InputFrame, error) {
	frame := core.NewInputFrame()
	switch r {
	case 'u', 'U':
		frame.Set(core.ActionUp)
	case 'd', 'D':
		frame.Set(core.ActionDown)
	case 'l', 'L':
		frame.Set(core.ActionLeft)
	case 'r', 'R':
		frame.Set(core.ActionRight)
	case 'n', 'N':
		frame.Set(core.ActionRestart)
	case '.':
	default:
		return frame, fmt.Errorf("unknown move %q", r)
	}
	return frame, nil
}
