// Package main provides the entry point for the Chakra Report CLI and HTTP
// API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chakra_report",
	Short: "Soulful Chakra Report server",
	Long:  "Chakra Report turns a 50-question behaviour questionnaire into a personalized, downloadable PDF report via REST API or one-shot CLI generation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
