// orbit is a TUI gravity hopper: launch between planets in your terminal,
// ride their gravity, and chain ring pickups into combos.
//
// Usage:
//
//	orbit play               - Play the game
//	orbit menu               - Start the interactive menu
//	orbit serve              - Start SSH server for remote play
//	orbit scores             - Show best runs
//	orbit list               - List available games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.orbit/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/avoronov/tui-orbit/internal/games/orbit"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "orbit",
	Short: "Orbit Hopper - planet-to-planet arcade flight in your terminal",
	Long: `Orbit Hopper is a terminal arcade game. Walk around spinning planets,
pick a launch power, and jump: your surface speed is carried into flight,
bending your trajectory around gravity wells. Collect rings to build
combos before the timer runs out, and never drift past the world's edge.

Available commands:
  play     - Play the game
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  scores   - View best runs
  list     - List available games

Examples:
  orbit play
  orbit play --difficulty hard
  orbit serve --ssh :2222
  orbit scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.orbit/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
