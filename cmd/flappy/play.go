package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/platform"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game on the selected terminal backend.

Controls:
  P          - Start a new run (menu and game over screen)
  Space      - Flap
  Q          - Quit (menu and game over screen)
  Ctrl+C     - Abort at any time

Examples:
  flappy play
  flappy play --backend tcell
  flappy play --seed 7 --db ""
  flappy play --config ./my-flappy.yaml --log-file /tmp/flappy.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := logging.New(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)

	host, err := registry.Create(flagBackend)
	if err != nil {
		logCloser.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'flappy backends' to see available backends.")
		os.Exit(1)
	}

	warnSmallTerminal(cfg, logger)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "backend", host.Name(), "seed", seed, "tick_rate", cfg.Timing.TickRate)

	// Continue without storage if it cannot be opened - game still works
	var saver platform.ScoreSaver
	store := openLedger(logger)
	if store != nil {
		saver = store
	}

	session := platform.NewSession(cfg, rand.New(rand.NewSource(seed)), saver, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := host.Run(ctx, session)
	stop()

	// Close resources before potential exit
	if store != nil {
		store.Close()
	}
	logger.Info("stopped", "runs_saved", session.Saved())
	logCloser.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadConfig resolves the configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.FlappyConfig, string, error) {
	cfg, source, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	if f := cmd.Flag("fps"); f != nil && f.Changed {
		cfg.Timing.TickRate = flagFPS
		if err := cfg.Validate(); err != nil {
			return cfg, source, fmt.Errorf("--fps: %w", err)
		}
	}
	return cfg, source, nil
}

// openLedger opens the score database, or returns nil when it is
// disabled or unavailable.
func openLedger(logger *log.Logger) *storage.Store {
	if flagDBPath == "" {
		logger.Info("score ledger disabled")
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// warnSmallTerminal reports a terminal too small to show the whole field.
// The game still runs; rows and columns beyond the terminal are cut off.
func warnSmallTerminal(cfg config.FlappyConfig, logger *log.Logger) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	if w < cfg.Screen.Width || h < cfg.Screen.Height {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs %dx%d\n",
			w, h, cfg.Screen.Width, cfg.Screen.Height)
		logger.Warn("terminal too small", "width", w, "height", h,
			"need_width", cfg.Screen.Width, "need_height", cfg.Screen.Height)
	}
}
