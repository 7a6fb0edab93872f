// breakout plays caption breakout in the terminal: the caption is laid out
// as text and every visible character is a brick.
//
// Usage:
//
//	breakout                 - Play with the configured caption
//	breakout play            - Same as above
//	breakout config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--caption <text>      - Override the caption
//	--log-file <path>     - Log destination (default: ~/.breakout/breakout.log)
//	--debug               - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the engine to register it
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagCaption    string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Caption Breakout - knock down the text on your screen",
	Long: `Caption Breakout turns a caption into a wall of bricks. Every visible
character is a brick; clear them all before your lives run out.

Controls:
  Mouse           - Move the paddle
  Click/Space     - Launch the ball, or start over after the game ends
  Left/Right, A/D - Nudge the paddle
  P/Esc           - Pause
  Ctrl+S          - Save a screenshot
  Q/Ctrl+C        - Quit

Examples:
  breakout
  breakout --difficulty hard
  breakout --caption "Hello, terminal"
  breakout --config ./my-breakout.yaml --seed 42
  breakout config > ~/.breakout/configs/breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagCaption, "caption", "", "Caption text to play (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (default ~/.breakout/breakout.log)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
