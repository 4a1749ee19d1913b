package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openlexica/lexa-cli/internal/core/domain"
)

// DatasetImporter loads entries into the local dataset in bulk.
type DatasetImporter interface {
	InsertEntries(ctx context.Context, entries []domain.DictionaryEntry) error
	Count(ctx context.Context) (int64, error)
}

// importEntry is the JSON shape accepted by the import command.
type importEntry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	IPA        string `json:"ipa"`
	IPAAlt     string `json:"ipa_alt"`
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import entries from a JSON file into the local dataset",
	Long: `Reads a JSON array of {word, definition, ipa, ipa_alt} objects and
appends them to the local dictionary. Intended for custom word lists.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if datasetImporter == nil {
		return errNotConfigured
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	var raw []importEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing import file: %w", err)
	}

	entries := make([]domain.DictionaryEntry, 0, len(raw))
	for _, e := range raw {
		if e.Word == "" {
			return fmt.Errorf("%w: entry with empty word", domain.ErrInvalidInput)
		}
		entries = append(entries, domain.DictionaryEntry{
			Word:       e.Word,
			Definition: e.Definition,
			IPA:        e.IPA,
			IPAAlt:     e.IPAAlt,
		})
	}

	if err := datasetImporter.InsertEntries(cmd.Context(), entries); err != nil {
		return fmt.Errorf("importing entries: %w", err)
	}

	total, err := datasetImporter.Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("counting entries: %w", err)
	}

	cmd.Printf("Imported %d entries (%d total).\n", len(entries), total)
	return nil
}
