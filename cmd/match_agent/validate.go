package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/intern-match/internal/schemas"
)

var validateSchemaName string

var validateCmd = &cobra.Command{
	Use:   "validate <document.json>",
	Short: "Validate a document against a shipped schema",
	Long:  `Validate a JSON document against one of the shipped schemas (profile or posting).`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateSchemaName, "schema", "profile", "Schema to validate against: profile or posting")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var schemaPath string
	switch validateSchemaName {
	case "profile":
		schemaPath = schemas.ProfileSchemaPath
	case "posting":
		schemaPath = schemas.JobPostingSchemaPath
	default:
		return fmt.Errorf("unknown schema %q (want profile or posting)", validateSchemaName)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	if err := schemas.ValidateDocument(schemaPath, data); err != nil {
		return err
	}

	cmd.Println("valid")
	return nil
}
