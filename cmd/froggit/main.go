// froggit is a lane-crossing arcade game for the terminal and the desktop.
//
// Usage:
//
//	froggit play [level]       - Play a bundled level or a level file
//	froggit levels [dir]       - List bundled levels or the levels in a directory
//	froggit list               - List available frontends
//	froggit validate <file>... - Check level files against the object catalog
//	froggit schema             - Print the JSON Schema of the level format
//	froggit journal            - Show the events kept in a --journal file
//
// Global flags:
//
//	--config <path>    - Game config YAML (default: ~/.froggit/configs/froggit.yaml)
//	--fps <rate>       - Override the tick rate
//	--lives <n>        - Override the number of lives
//	--mute             - Disable sound
//	--journal <path>   - Keep a diagnostic journal file (default: in memory only)
//	--log-file <path>  - Write logs to a file
//	--log-level <lvl>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/froggit/internal/config"

	// Import frontends to register them
	_ "github.com/vovakirdan/froggit/internal/platform/gui"
	_ "github.com/vovakirdan/froggit/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLives    int
	flagMute     bool
	flagJournal  string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "froggit",
	Short: "Froggit - hop the frog across roads and rivers",
	Long: `Froggit is a lane-crossing arcade game. Guide the frog over busy roads
and across the river on drifting logs into every exit of the hedge.

Available commands:
  play      - Play a level
  levels    - List levels
  list      - Show available frontends
  validate  - Check level files
  schema    - Print the level file JSON Schema
  journal   - Show a journal file

Examples:
  froggit play
  froggit play river
  froggit play ./my-level.yaml --watch
  froggit play --frontend gui --lives 5
  froggit validate levels/*.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (frames per second)")
	rootCmd.PersistentFlags().IntVar(&flagLives, "lives", 0, "Lives override")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagJournal, "journal", "", "Keep the session journal in a SQLite file for diagnostics (default: in memory only)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(journalCmd)
}

// loadConfig reads the game config and applies the command line overrides.
func loadConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Runtime.TickRate = flagFPS
	}
	if flagLives > 0 {
		cfg.Frog.Lives = flagLives
	}
	if flagMute {
		cfg.Runtime.Audio = false
	}
	return cfg, nil
}

// newLogger builds the logger for a command. Without --log-file, logs go
// to stderr when console is true and are discarded otherwise, so they do
// not tear the terminal frontend.
func newLogger(console bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	closer := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	case console:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "froggit",
		ReportTimestamp: true,
	})
	return logger, closer, nil
}
