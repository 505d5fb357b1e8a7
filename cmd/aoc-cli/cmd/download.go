package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"aocsync/internal/adapters/web"
	"aocsync/internal/application"
	"aocsync/internal/application/commands"
	"aocsync/internal/config"
	"aocsync/internal/domain"
)

var (
	downloadYear int
	downloadDay  int
	downloadFrom int
	downloadTo   int
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download missing inputs and bring the code up to date",
	Long: `Download every missing input of a year, in day order, then create
the solution package of each downloaded day and regenerate the dispatch
files. Inputs already on disk are never downloaded again.

A failed download stops the command. Inputs saved before the failure are
kept and scaffolded, so running the command again resumes where it stopped.

Examples:
  aoc-cli download                 # every day of the current event
  aoc-cli download --year 2022
  aoc-cli download --year 2022 --day 7
  aoc-cli download --year 2022 --from 10 --to 15`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := requestedDays(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		ws := GetWorkspace()
		fetcher := web.NewClient(config.BaseURL())

		var opts []commands.DownloadOption
		if ledger := openLedger(); ledger != nil {
			defer ledger.Close()
			opts = append(opts, commands.WithLedger(ledger))
		}

		return application.WithConfig(GetConfigStore(), ws.Log, func(cfg *domain.Config) error {
			result, err := commands.NewDownloadCommand(ws, fetcher, cfg, domain.Year(downloadYear), days, opts...).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(result.Message)
			return nil
		})
	},
}

// requestedDays turns the day flags into a range
func requestedDays(cmd *cobra.Command) (domain.DayRange, error) {
	if cmd.Flags().Changed("day") {
		day := domain.Day(downloadDay)
		if err := application.ValidateDay(day); err != nil {
			return domain.DayRange{}, err
		}
		return domain.SingleDay(day), nil
	}

	days := domain.DayRange{First: domain.Day(downloadFrom), Last: domain.Day(downloadTo)}
	if err := application.ValidateDayRange(days); err != nil {
		return domain.DayRange{}, err
	}
	return days, nil
}

func init() {
	downloadCmd.Flags().IntVarP(&downloadYear, "year", "y", 0, "event year (default: current event)")
	downloadCmd.Flags().IntVarP(&downloadDay, "day", "d", 0, "single day to download")
	downloadCmd.Flags().IntVar(&downloadFrom, "from", int(domain.FirstDay), "first day of the range")
	downloadCmd.Flags().IntVar(&downloadTo, "to", int(domain.LastDay), "last day of the range")
	downloadCmd.MarkFlagsMutuallyExclusive("day", "from")
	downloadCmd.MarkFlagsMutuallyExclusive("day", "to")
	rootCmd.AddCommand(downloadCmd)
}
