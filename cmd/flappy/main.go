// flappy is a Flappy Bird-style game for the terminal.
//
// Usage:
//
//	flappy                   - Play (same as flappy play)
//	flappy play              - Play the game
//	flappy scores            - Show the score ledger
//	flappy config            - Print the effective configuration
//	flappy backends          - List terminal backends
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--seed <value>       - Set RNG seed for reproducible gap placement
//	--db <path>          - Set database path (default: ~/.flappy/scores.db, empty disables)
//	--config <path>      - Load configuration from a YAML file
//	--backend <name>     - Terminal backend: tea or tcell (default: tea)
//	--log-file <path>    - Write logs to a file (default: no logging)
//	--log-level <level>  - Log level: debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import hosts to register them
	_ "github.com/vovakirdan/tui-flappy/internal/platform/tcellhost"
	_ "github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

const (
	defaultDBPath  = "~/.flappy/scores.db"
	defaultBackend = "tea"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagBackend  string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - steer a bird through the walls in your terminal",
	Long: `Flappy is a terminal Flappy Bird. Flap through the gap in each wall;
every wall you pass narrows the next gap.

Available commands:
  play      - Play the game (default)
  scores    - View the score ledger
  config    - Print the effective configuration
  backends  - List terminal backends

Examples:
  flappy
  flappy play --backend tcell
  flappy --seed 42 --fps 30
  flappy scores --limit 5`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second), overrides config")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database (empty disables)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", defaultBackend, "Terminal backend (see 'flappy backends')")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(backendsCmd)
}
