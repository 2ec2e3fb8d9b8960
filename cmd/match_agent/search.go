package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/intern-match/internal/matching"
	"github.com/jonathan/intern-match/internal/suggest"
	"github.com/jonathan/intern-match/internal/types"
)

var (
	searchJobQuery      string
	searchLocationQuery string
	searchJobTypes      []string
	searchLocations     []string
)

var searchCmd = &cobra.Command{
	Use:   "search <postings.json>",
	Short: "Search a posting catalog file",
	Long:  `Run the search contract over a JSON file containing an array of job postings, without a server or database.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchJobQuery, "query", "", "Job search term")
	searchCmd.Flags().StringVar(&searchLocationQuery, "location", "", "Location search term")
	searchCmd.Flags().StringSliceVar(&searchJobTypes, "job-type", nil, "Job type facet selection (repeatable)")
	searchCmd.Flags().StringSliceVar(&searchLocations, "location-facet", nil, "Location facet selection (repeatable)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read postings file: %w", err)
	}

	var postings []types.JobPosting
	if err := json.Unmarshal(data, &postings); err != nil {
		return fmt.Errorf("failed to parse postings file: %w", err)
	}

	engine := matching.NewEngine(matching.WithSuggester(suggest.NewLocal(postings)))
	result := engine.Search(cmd.Context(), postings,
		types.SearchQuery{JobQuery: searchJobQuery, LocationQuery: searchLocationQuery},
		types.FacetFilters{JobTypes: searchJobTypes, Locations: searchLocations},
	)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	cmd.Println(string(out))
	return nil
}
