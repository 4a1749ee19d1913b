package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openlexica/lexa-cli/internal/core/ports/driving"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check dataset freshness and download a replacement if stale",
	Long: `Evaluates the local dataset's age against the weekly freshness
threshold. When the dataset is stale and the network is reachable, a new
copy is downloaded and swapped in atomically.`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	if freshnessService == nil {
		return errNotConfigured
	}

	outcome, err := freshnessService.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("freshness check: %w", err)
	}

	switch outcome {
	case driving.OutcomeSeeded:
		cmd.Println("First run: freshness record created. The dataset will be checked next week.")
	case driving.OutcomeOffline:
		cmd.Println("Offline: dataset check deferred.")
	case driving.OutcomeFresh:
		cmd.Println("Dataset is up to date.")
	case driving.OutcomeUpdated:
		cmd.Println("Dataset updated.")
	case driving.OutcomeFailed:
		cmd.Println("Dataset update failed; the existing dataset stays in place.")
	}
	return nil
}
