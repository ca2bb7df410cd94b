package main

import (
	"github.com/spf13/cobra"

	"techdaily/internal/app"
)

var rebuildIndexCmd = &cobra.Command{
	Use:   "rebuild-index",
	Short: "Regenerates index.html from the pages already on disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return app.NewAutomator(cfg).RebuildIndex()
	},
}

func init() {
	rootCmd.AddCommand(rebuildIndexCmd)
}
