package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dasher/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default configuration as YAML.

With --config, the file is loaded and validated first, so this doubles
as a config checker.

Examples:
  dasher config > ~/.dasher/configs/dasher.yaml
  dasher config --config ./my-dasher.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagConfig != "" {
		if _, err := config.LoadDasher(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%s is valid\n", flagConfig)
		return
	}
	os.Stdout.Write(config.DefaultYAML())
}
