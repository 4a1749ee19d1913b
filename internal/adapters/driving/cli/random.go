package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openlexica/lexa-cli/internal/core/domain"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Show a random word from the dictionary",
	Args:  cobra.NoArgs,
	RunE:  runRandom,
}

func init() {
	rootCmd.AddCommand(randomCmd)
}

func runRandom(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errNotConfigured
	}

	entry, err := searchService.Random(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Println("The dictionary is empty. Run 'lexa update' to download the dataset.")
			return nil
		}
		return fmt.Errorf("picking a random word: %w", err)
	}

	printEntry(cmd, 1, *entry)
	return nil
}
