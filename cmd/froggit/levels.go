package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [dir]",
	Short: "List levels",
	Long: `Shows the bundled levels, or the level files found under a directory.

Examples:
  froggit levels
  froggit levels ./levels`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	var descs []levels.Descriptor
	if len(args) == 1 {
		all, err := levels.NewLoader(args[0]).LoadAll()
		if err != nil {
			return err
		}
		descs = all
	} else {
		for _, id := range levels.BundledIDs() {
			d, err := levels.LoadBundled(id)
			if err != nil {
				return err
			}
			descs = append(descs, d)
		}
	}

	if len(descs) == 0 {
		fmt.Println("No levels found.")
		return nil
	}

	maxIDLen := 2 // "ID" header
	for _, d := range descs {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Size", "Exits", "Name")
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "--", "----", "-----", "----")
	for _, d := range descs {
		size := fmt.Sprintf("%dx%d", d.Cols(), d.Rows())
		fmt.Printf("  %-*s  %-7s  %-5d  %s\n", maxIDLen, d.ID, size, d.Exits(), d.Name)
	}

	fmt.Println()
	fmt.Println("Run 'froggit play <id>' to play a level.")
	return nil
}
