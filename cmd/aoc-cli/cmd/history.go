package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"aocsync/internal/adapters/sqlite"
	"aocsync/internal/application/commands"
	"aocsync/internal/domain"
)

var historyYear int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past input downloads",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := sqlite.OpenLedger(GetWorkspace().Store.Root())
		if err != nil {
			return err
		}
		defer ledger.Close()

		records, err := commands.NewHistoryCommand(ledger, domain.Year(historyYear)).Execute(context.Background())
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No downloads recorded")
			return nil
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("FETCHED", "YEAR", "DAY", "BYTES", "SHA256", "RUN")
		for _, r := range records {
			size := fmt.Sprint(r.Bytes)
			if r.Overwritten {
				size += " (overwrote)"
			}
			t.Row(
				r.FetchedAt.Local().Format(time.DateTime),
				fmt.Sprint(r.Year),
				fmt.Sprint(r.Day),
				size,
				fmt.Sprintf("%.12s", r.SHA256),
				fmt.Sprintf("%.8s", r.RunID),
			)
		}
		fmt.Println(t)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyYear, "year", "y", 0, "only this year (default: every year)")
	rootCmd.AddCommand(historyCmd)
}
