package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-rat/internal/config"
	"github.com/vovakirdan/snake-rat/internal/core"
	"github.com/vovakirdan/snake-rat/internal/games/snakerat"
	"github.com/vovakirdan/snake-rat/internal/platform/tui"
	"github.com/vovakirdan/snake-rat/internal/storage"
)

var (
	flagLogPath string
	flagPlayer  string
	flagNoSave  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Steer (moves at once)
  N/R          - New game (after death)
  Ctrl+S       - Save a screenshot to ~/.snakerat/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at normal speed, speeds up as you score
  normal - Start 30% of the way to top speed
  hard   - Start 70% of the way to top speed
  fixed  - Constant speed (the default: one move every 200ms)

Examples:
  snakerat play
  snakerat play --difficulty easy
  snakerat play --seed 42 --log /tmp/snakerat.log
  snakerat play --config ./big-field.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write game events to this file")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name to save scores under (default: $USER)")
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record scores")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := openEventLog(flagLogPath)
	if err != nil {
		fail("cannot open log file: %v", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: cfg.TickInterval(),
		Seed:         flagSeed,
	}

	var saver tui.ScoreSaver
	if !flagNoSave {
		store, storeErr := storage.Open(flagDBPath)
		if storeErr != nil {
			logger.Warn("playing without saving scores", "error", storeErr)
		} else {
			defer store.Close()
			saver = store
		}
	}

	model := tui.NewModel(snakerat.New(cfg), saver, rc).
		WithLogger(logger).
		WithPacer(config.NewDifficultyManager(cfg.Difficulty)).
		WithPlayer(playerName(flagPlayer))

	if err := tui.Run(model); err != nil {
		fail("%v", err)
	}
}

// openEventLog returns a logfmt logger writing to path, or a discard
// logger when path is empty. The terminal belongs to the game.
func openEventLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Formatter:       log.LogfmtFormatter,
		Level:           log.DebugLevel,
		Prefix:          "snakerat",
	})
	return logger, func() { f.Close() }, nil
}

// playerName picks the name scores are saved under.
func playerName(flag string) string {
	if flag != "" {
		return flag
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "player"
}
