package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/grubdash/database/seeders"
)

// grubdash seed:show: print the collections the stores would start with.
var seedShowCmd = &cobra.Command{
	Use:   "seed:show",
	Short: "Print the seed dishes and orders as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		data, err := seeders.Load(cfg.Seed.File)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	},
}
