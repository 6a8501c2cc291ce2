package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the default configuration as YAML. Save it to
~/.runner/configs/runner.yaml or ./configs/runner.yaml and edit it to tune
the game; keys left out keep their defaults.

With --resolved, print the configuration the game would actually use after
applying --config and --difficulty.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if !flagResolved {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
