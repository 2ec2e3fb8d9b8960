package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/intern-match/internal/scoring"
	"github.com/jonathan/intern-match/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score <profile.json>",
	Short: "Score a profile file for completeness",
	Long:  `Compute the completeness score and category breakdown for a profile JSON file, without a server or database.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}

	result := scoring.ComputeScore(types.DecodeProfile(data))

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	cmd.Println(string(out))
	return nil
}
