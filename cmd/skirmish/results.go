package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmfed/skirmish/internal/platform/tui"
	"github.com/dmfed/skirmish/internal/storage"
)

var flagPlain bool

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Browse recorded match history",
	Long: `Display the recorded match history.

By default an interactive table opens; --plain prints the most recent
matches to stdout instead.

Examples:
  skirmish results
  skirmish results --plain`,
	Run: runResults,
}

func init() {
	resultsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print to stdout instead of the interactive table")
}

func runResults(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printResults(store)
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing history: %v\n", err)
		os.Exit(1)
	}
}

func printResults(store *storage.Store) {
	matches, err := store.RecentMatches(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skirmish play' to record the first one!")
		return
	}

	fmt.Printf("  %-16s  %-10s  %-10s  %-7s  %-8s  %-7s  %s\n",
		"Date", "Scenario", "Seed", "Players", "Ticks", "Winner", "Result")
	fmt.Printf("  %-16s  %-10s  %-10s  %-7s  %-8s  %-7s  %s\n",
		"----", "--------", "----", "-------", "-----", "------", "------")

	for _, rec := range matches {
		winner := "-"
		if rec.Winner >= 0 {
			winner = fmt.Sprintf("p%d", rec.Winner)
		}
		fmt.Printf("  %-16s  %-10s  %-10d  %-7d  %-8d  %-7s  %s\n",
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.Scenario,
			rec.Seed,
			rec.Players,
			rec.Ticks,
			winner,
			rec.EndReason,
		)
	}
}
