package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/froggit/internal/storage"
)

var (
	flagJournalLimit int
	flagJournalClear bool
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show the events kept in a journal file",
	Long: `Displays the most recent events and a summary of a session journal
written with 'froggit play --journal <path>'.

A journal file is a diagnostic record kept outside normal play. Without
--journal every session journal lives in memory and ends with the session,
and the game never restores progress from a file.

Examples:
  froggit play --journal ~/.froggit/journal.db
  froggit journal --journal ~/.froggit/journal.db
  froggit journal --journal ~/.froggit/journal.db --clear`,
	Args: cobra.NoArgs,
	RunE: runJournal,
}

func init() {
	journalCmd.Flags().IntVarP(&flagJournalLimit, "limit", "n", 20, "Number of events to show (-1 for all)")
	journalCmd.Flags().BoolVar(&flagJournalClear, "clear", false, "Delete every recorded event")
}

func runJournal(cmd *cobra.Command, args []string) error {
	if flagJournal == "" {
		return errors.New("--journal <path> is required; an in-memory journal ends with its session")
	}

	journal, err := storage.Open(flagJournal)
	if err != nil {
		return err
	}
	defer journal.Close()

	if flagJournalClear {
		if err := journal.Clear(); err != nil {
			return err
		}
		fmt.Println("Journal cleared.")
		return nil
	}

	entries, err := journal.Events(flagJournalLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No events recorded yet.")
		return nil
	}

	fmt.Printf("  %-6s  %-8s  %-8s  %-7s  %-5s  %s\n", "Tick", "Event", "Cause", "Cell", "Lives", "Time")
	fmt.Printf("  %-6s  %-8s  %-8s  %-7s  %-5s  %s\n", "----", "-----", "-----", "----", "-----", "----")
	for _, e := range entries {
		cell := fmt.Sprintf("%d,%d", e.Col, e.Row)
		fmt.Printf("  %-6d  %-8s  %-8s  %-7s  %-5d  %s\n",
			e.Tick, e.Kind, e.Cause, cell, e.Lives, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	sum, err := journal.Summary()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Games: %d  Hops: %d  Exits: %d  Deaths: %d  Continues: %d\n",
		sum.Starts, sum.Hops, sum.Captures, sum.Deaths, sum.Continues)
	for _, cause := range sum.Causes() {
		fmt.Printf("  %s: %d\n", cause, sum.DeathsByCause[cause])
	}
	return nil
}
