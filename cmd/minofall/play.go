package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/voskhod/minofall/internal/config"
	"github.com/voskhod/minofall/internal/core"
	"github.com/voskhod/minofall/internal/game"
	"github.com/voskhod/minofall/internal/platform/tui"
	"github.com/voskhod/minofall/internal/storage"
)

var (
	flagConfig  string
	flagGravity time.Duration
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Minofall",
	Long: `Start the shell at the title screen and play.

Controls (defaults, configurable via YAML):
  h / l        - Move left / right
  g / s        - Spin clockwise / counter-clockwise
  j            - Hard drop
  Esc x3       - Quit (three rapid presses)
  Ctrl+C       - Quit

Examples:
  minofall play
  minofall play --gravity 800ms
  minofall play --config ./my-minofall.yaml
  minofall play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().DurationVar(&flagGravity, "gravity", 0, "Gravity interval override (e.g. 800ms; 0 = from config)")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Path to a debug log file (disabled if empty)")
}

func runPlay(cmd *cobra.Command, args []string) {
	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Gravity tuning applies to sessions created after this point.
	gravity := appCfg.Gravity.Interval()
	if flagGravity > 0 {
		gravity = flagGravity
	}
	game.SetGravityInterval(gravity)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger := log.New(io.Discard)
	if flagLogFile != "" {
		if f, logErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); logErr == nil {
			logger = log.NewWithOptions(f, log.Options{ReportTimestamp: true})
			defer f.Close()
		} else {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", logErr)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	keys := tui.NewKeyMap(appCfg.Keys)
	runErr := tui.Run(store, keys, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
