package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"aocsync/internal/adapters/tui/views"
	"aocsync/internal/application/commands"
	"aocsync/internal/domain"
)

var statusYear int

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which days have an input and a solution",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		years, err := commands.NewStatusCommand(GetWorkspace().Store, domain.Year(statusYear)).Execute(context.Background())
		if err != nil {
			return err
		}
		if len(years) == 0 {
			fmt.Println("No years yet: run aoc-cli download")
			return nil
		}

		fmt.Println(views.RenderDayHeader())
		for _, y := range years {
			fmt.Println(views.RenderYearRow(y, 0))
		}
		fmt.Println()
		fmt.Println(views.RenderLegend())
		return nil
	},
}

func init() {
	statusCmd.Flags().IntVarP(&statusYear, "year", "y", 0, "only this year (default: every year)")
	rootCmd.AddCommand(statusCmd)
}
