package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Secrets may live in a local .env during development; absence is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
