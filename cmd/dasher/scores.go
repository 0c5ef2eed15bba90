package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dasher/internal/config"
	"github.com/vovakirdan/tui-dasher/internal/games/dasher"
	"github.com/vovakirdan/tui-dasher/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs and the win/loss totals.
Wins rank above losses; ties go to the longer distance, then the faster run.

Examples:
  dasher scores
  dasher scores --limit 5`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadDasher(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	game := dasher.New(cfg)
	gameID := game.ID()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("Best Runs - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'dasher' to set the first one!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-10s  %-8s  %s\n", "Rank", "Result", "Distance", "Time", "Date")
	fmt.Printf("  %-4s  %-7s  %-10s  %-8s  %s\n", "----", "------", "--------", "----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-7s  %-10d  %-8s  %s\n",
			i+1, r.Outcome, r.Score, fmt.Sprintf("%.2fs", r.Elapsed), dateStr)
	}

	fmt.Println()
	sum, err := store.Summary(gameID)
	if err != nil {
		return
	}
	fmt.Printf("Runs: %d  Wins: %d  Losses: %d  Best: %d\n", sum.Runs, sum.Wins, sum.Losses, sum.BestScore)
	if sum.FastestWin > 0 {
		fmt.Printf("Fastest win: %.2fs\n", sum.FastestWin)
	}
}
