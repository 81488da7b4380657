package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ballcatch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration ballcatch would play with, after applying
--config and --difficulty, as YAML. Save it under
~/.ballcatch/configs/catch.yaml to make it the default.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
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
	},
}
