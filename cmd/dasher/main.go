// dasher is a side-scrolling runner played in the terminal.
//
// Usage:
//
//	dasher                   - Play a run
//	dasher scores            - Show the best runs and win/loss totals
//	dasher config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--config <path>      - Load a custom YAML config
//	--db <path>          - Set database path (default: ~/.dasher/runs.db)
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagDBPath   string
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
	Use:   "dasher",
	Short: "Dapper Dasher - jump the nebulae, reach the finish line",
	Long: `Dapper Dasher is a terminal side-scroller. Jump over three drifting
nebulae while the skyline scrolls past; touch one and the run is over,
clear all three and you win.

Controls:
  Space/Up/W  - Jump (only from the ground)
  P/Esc       - Pause
  R           - Run again (after a win or loss)
  Q/Ctrl+C    - Quit

Examples:
  dasher
  dasher --fps 30
  dasher --config ./my-dasher.yaml
  dasher scores
  dasher config > ~/.dasher/configs/dasher.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dasher/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
