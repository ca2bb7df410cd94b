package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"techdaily/internal/app"
)

// fetch-news is a standalone utility: the headlines it prints are not fed
// into article generation.
var fetchNewsCmd = &cobra.Command{
	Use:   "fetch-news",
	Short: "Fetches current technology headlines and prints them",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		headlines, err := app.NewAutomator(cfg).FetchTechNews(cmd.Context())
		if err != nil {
			return err
		}

		for _, h := range headlines {
			fmt.Printf("%s (%s)\n", h.Title, h.Source.Name)
			if h.Description != "" {
				fmt.Printf("  %s\n", h.Description)
			}
			fmt.Printf("  %s\n", h.URL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchNewsCmd)
}
