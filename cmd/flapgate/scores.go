package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkazanov/flapgate/internal/platform/tui"
	"github.com/pkazanov/flapgate/internal/storage"
)

const (
	gameID    = "flapgate"
	gameTitle = "FlapGate"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display recorded scores.

By default an interactive scoreboard opens; --plain prints the top 10
to stdout instead.

Examples:
  flapgate scores
  flapgate scores --plain`,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as plain text")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if !flagPlain {
		width, height := terminalSize()
		return tui.RunScoreboard(store, gameID, gameTitle, width, height)
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", gameTitle)

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flapgate play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("\nBest: %d\n", best)
	}

	return nil
}
