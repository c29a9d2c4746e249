package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexfreq-cli/internal/adapters/driven/storage/sqlite"
)

var runsLimitFlag int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List past analysis runs",
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&runsLimitFlag, "limit", 10, "maximum number of runs to show")
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, _ []string) error {
	store := runStore
	if store == nil {
		var err error
		store, err = sqlite.NewRunStore("")
		if err != nil {
			return fmt.Errorf("open run history: %w", err)
		}
		defer store.Close()
	}

	runs, err := store.List(context.Background(), runsLimitFlag)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		cmd.Printf("%s  %s  %d processed, %d skipped, %d artifacts\n",
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.InputDir,
			len(run.Processed),
			len(run.Skipped),
			run.Artifacts,
		)
	}
	return nil
}
