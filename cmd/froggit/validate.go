package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|id>...",
	Short: "Check level files",
	Long: `Parses each level and checks it against the object catalog: grid size,
start cell, lane types, catalog images and at least one capturable exit.

Examples:
  froggit validate ./levels/canal.yaml
  froggit validate river --catalog ./objects.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&flagCatalog, "catalog", "", "Path to an object catalog YAML")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	failed := 0
	for _, ref := range args {
		if err := validateLevel(ref, cat); err != nil {
			fmt.Printf("  FAIL  %s: %v\n", ref, err)
			failed++
			continue
		}
		fmt.Printf("  ok    %s\n", ref)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d levels invalid", failed, len(args))
	}
	return nil
}

// validateLevel loads a level reference and checks it. Parse errors and
// rule violations are both reported.
func validateLevel(ref string, cat levels.Catalog) error {
	d, err := levels.Open(ref)
	if err != nil {
		return err
	}
	err = levels.Validate(d, cat)
	var verr levels.ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("%s (%s)", verr.Message, verr.Code)
	}
	return err
}
