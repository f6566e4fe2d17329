package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after applying the config file,
.env and TETCOLOR_* environment variables, and global flags.

Redirect the output to start a config of your own:
  tetcolor config > ~/.tetcolor/tetcolor.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
