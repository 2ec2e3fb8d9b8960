// Package main provides the entry point for the intern-match HTTP API server
// and its offline engine commands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Internship matching and scoring engine",
	Long:  "match_agent scores candidate profiles for completeness, searches the internship posting catalog, and generates AI-ranked recommendations via REST API or offline commands.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
