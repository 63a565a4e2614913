package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the config
file search, --config and --difficulty have been applied.

The output is valid YAML and can be saved as a starting point:
  snakerat config > ~/.snakerat/configs/snakerat.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	data, err := cfg.Marshal()
	if err != nil {
		fail("%v", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
}
