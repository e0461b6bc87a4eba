package main

import (
	"github.com/spf13/cobra"

	"dodge/internal/game"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a round would use, after applying the config
file search order (--config, ~/.dodge/config.yaml, ./configs/dodge.yaml,
built-in defaults), as YAML.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out, err := game.MarshalConfig(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
