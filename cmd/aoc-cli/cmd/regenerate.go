package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"aocsync/internal/application/commands"
	"aocsync/internal/domain"
)

var regenerateYear int

var regenerateCmd = &cobra.Command{
	Use:   "regenerate",
	Short: "Regenerate the dispatch files from the solution packages on disk",
	Long: `Rewrite the year dispatch files and main.go from the day packages
currently on disk. Nothing is downloaded and no solution file is touched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRegenerateCommand(GetWorkspace(), domain.Year(regenerateYear)).Execute(context.Background())
		if err != nil {
			return err
		}

		for _, y := range result.Years {
			fmt.Println(y.Message)
		}
		fmt.Println(result.Root.Message)
		return nil
	},
}

func init() {
	regenerateCmd.Flags().IntVarP(&regenerateYear, "year", "y", 0, "only this year (default: every year)")
	rootCmd.AddCommand(regenerateCmd)
}
