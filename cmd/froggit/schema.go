package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the level file JSON Schema",
	Long: `Writes the JSON Schema of the level descriptor to stdout, for editor
completion and validation of YAML level files.

Examples:
  froggit schema > froggit-level.schema.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := levels.SchemaJSON()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}
