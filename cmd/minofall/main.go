// minofall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	minofall play            - Play locally
//	minofall serve           - Start SSH server for remote play
//	minofall scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.minofall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/voskhod/minofall/internal/game"
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
	Use:   "minofall",
	Short: "Minofall - A falling-block puzzle in your terminal",
	Long: `Minofall is a terminal falling-block puzzle game: steer and spin
the falling piece, stack it on the pile, and keep going.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  minofall play
  minofall play --gravity 800ms
  minofall serve --ssh :2222
  minofall scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.minofall/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
