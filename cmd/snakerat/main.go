// snakerat is a terminal snake game: steer the snake, eat the rats, avoid
// the walls and your own tail.
//
// Usage:
//
//	snakerat [play]          - Play in this terminal
//	snakerat scores          - Show high scores
//	snakerat serve           - Start SSH server for remote play
//	snakerat config          - Print the effective configuration
//	snakerat sim             - Run a headless game and print its states
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.snakerat/scores.db)
//	--config <path>      - Load a custom config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-rat/internal/config"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakerat",
	Short: "SNAKE-rat - feed the snake in your terminal",
	Long: `SNAKE-rat is a terminal snake game on a 20x20 field.

The snake moves one cell every 200ms, or at once when you steer it.
Each rat it eats makes it one segment longer and scores a point.
Hitting a wall or its own body kills it; press N to start over.

Available commands:
  play     - Play in this terminal (default)
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration
  sim      - Run a headless game for debugging

Examples:
  snakerat
  snakerat play --difficulty hard
  snakerat scores --tui
  snakerat serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snakerat/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig loads the game configuration and applies --difficulty.
func loadConfig() (config.SnakeRatConfig, error) {
	cfg, err := config.LoadSnakeRat(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplySnakeRatPreset(&cfg, preset)
	return cfg, nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
