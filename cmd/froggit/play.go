package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/froggit/internal/audio"
	"github.com/vovakirdan/froggit/internal/core"
	"github.com/vovakirdan/froggit/internal/games/froggit"
	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
	"github.com/vovakirdan/froggit/internal/levelwatch"
	"github.com/vovakirdan/froggit/internal/registry"
	"github.com/vovakirdan/froggit/internal/storage"
)

var (
	flagFrontend string
	flagWatch    bool
	flagCatalog  string
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing a level. The argument is a bundled level ID or a path to a
level file; without it the level named in the config is played.

Controls:
  Arrows/WASD  - Hop
  S/Enter      - Start
  C            - Continue after a death or a captured exit
  P/Esc        - Pause
  R            - Play again (after the game is over)
  Q/Ctrl+C     - Quit

Examples:
  froggit play
  froggit play river
  froggit play ./levels/canal.yaml --watch
  froggit play easy --frontend gui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Frontend to play in (see 'froggit list')")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level file when it changes")
	playCmd.Flags().StringVar(&flagCatalog, "catalog", "", "Path to an object catalog YAML")
}

// loadCatalog returns the catalog given by --catalog or the bundled one.
func loadCatalog() (levels.Catalog, error) {
	if flagCatalog != "" {
		return levels.LoadCatalog(flagCatalog)
	}
	return levels.DefaultCatalog()
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q, run 'froggit list' to see available frontends", flagFrontend)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagFrontend != "tui")
	if err != nil {
		return err
	}
	defer closeLog()

	ref := cfg.Runtime.Level
	if len(args) == 1 {
		ref = args[0]
	}
	desc, err := levels.Open(ref)
	if err != nil {
		return err
	}
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	sounder, closeAudio := audio.Open(cfg.Runtime.Audio, logger)
	defer closeAudio()

	game, err := froggit.New(desc, cat, froggit.Options{
		Config:  cfg,
		Sounder: sounder,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	// Get terminal size for the frontend
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	session := registry.NewSession(game, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Runtime.TickRate,
	}, logger)

	// Open the session journal; the game still works without it
	journal, err := storage.Open(flagJournal)
	if err != nil {
		logger.Warn("session journal disabled", "err", err)
	} else {
		defer journal.Close()
		session.Journal = journal
		if journal.Persistent() {
			logger.Info("diagnostic journal file", "path", flagJournal)
		}
	}

	if flagWatch {
		if desc.FilePath == "" {
			return fmt.Errorf("--watch needs a level file, %q is a bundled level", ref)
		}
		watcher, err := levelwatch.New(desc.FilePath, levelwatch.DefaultDebounce)
		if err != nil {
			return err
		}
		defer watcher.Close()
		session.Reloads = watcher.Updates
		logger.Info("watching level file", "path", watcher.Path())
	}

	fe, err := registry.Create(flagFrontend)
	if err != nil {
		return err
	}

	logger.Info("starting", "level", desc.ID, "frontend", fe.ID(), "lives", cfg.Frog.Lives)
	return fe.Run(session)
}
