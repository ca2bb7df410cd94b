package main

import (
	"github.com/spf13/cobra"

	"techdaily/internal/app"
)

var (
	cfgFile string
	siteDir string
)

var rootCmd = &cobra.Command{
	Use:   "techdaily",
	Short: "Generates and publishes one TechDaily article per run",
	Long: `techdaily runs the full publishing pipeline once: generate a new
article page, occasionally refresh the stylesheet, rebuild the index, and
commit and push the result. It is meant to be invoked by a scheduler (cron,
CI job); any failure aborts the run with a non-zero exit status.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.ValidateForRun(); err != nil {
			return err
		}
		return app.NewAutomator(cfg).Run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./techdaily.yaml)")
	rootCmd.PersistentFlags().StringVar(&siteDir, "site", "", "site repository directory (overrides config)")
}

func loadConfig() (app.Config, error) {
	cfg, err := app.LoadConfig(cfgFile)
	if err != nil {
		return app.Config{}, err
	}
	if siteDir != "" {
		cfg.SiteDir = siteDir
	}
	return cfg, nil
}
