package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openlexica/lexa-cli/internal/core/domain"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Look up a word",
	Long: `Runs a ranked prefix search against the local dictionary index,
then reorders the candidates with a fuzzy match on the typed query.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errNotConfigured
	}

	results, err := searchService.Search(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputEntriesJSON(cmd, results)
	}

	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	for i, entry := range results {
		printEntry(cmd, i+1, entry)
	}
	return nil
}

func outputEntriesJSON(cmd *cobra.Command, results []domain.DictionaryEntry) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printEntry(cmd *cobra.Command, rank int, entry domain.DictionaryEntry) {
	cmd.Printf("  [%d] %s", rank, entry.Word)
	if entry.IPA != "" {
		cmd.Printf("  /%s/", entry.IPA)
	}
	cmd.Println()
	if entry.Definition != "" {
		cmd.Printf("      %s\n", entry.Definition)
	}
}
