// flapgate is a terminal obstacle game: flap through the gaps, don't hit
// anything, chase the best score.
//
// Usage:
//
//	flapgate play            - Play in the local terminal
//	flapgate scores          - Show the leaderboard
//	flapgate serve           - Start an SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.flapgate/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "flapgate",
	Short: "FlapGate - flap through the gaps in your terminal",
	Long: `FlapGate is a terminal game: a body falls under gravity, flaps upward
when you hit space, and must pass through gaps in scrolling obstacles.

Available commands:
  play     - Play in the local terminal
  scores   - View the leaderboard
  serve    - Start an SSH server for remote play

Examples:
  flapgate play
  flapgate play --difficulty hard
  flapgate scores
  flapgate serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flapgate/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
