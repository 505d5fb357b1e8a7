package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aocsync/internal/adapters/watcher"
	"aocsync/internal/application/commands"
	"aocsync/internal/domain"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the dispatch files whenever a day package is added or removed",
	Long: `Watch the workspace and regenerate the dispatch files of a year when
one of its day packages appears or disappears, then regenerate main.go.
Edits inside existing solution files do not trigger anything.

Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		ws := GetWorkspace()
		w, err := watcher.New(ws.Store.Root())
		if err != nil {
			return err
		}
		if err := w.Start(); err != nil {
			return err
		}
		defer w.Stop()

		fmt.Printf("Watching %s\n", ws.Store.Root())
		return watchLoop(ctx, ws, w, watchDebounce)
	},
}

// watchLoop batches changes arriving within debounce of each other into one
// regeneration
func watchLoop(ctx context.Context, ws commands.Workspace, w *watcher.Watcher, debounce time.Duration) error {
	pending := make(map[domain.Year]bool)
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case change, ok := <-w.Changes():
			if !ok {
				return nil
			}
			ws.Log.Debug("workspace changed", zap.String("path", change.Path), zap.Int("year", int(change.Year)))
			if !change.YearRemoved {
				pending[change.Year] = true
			}
			fire = time.After(debounce)

		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			ws.Log.Warn("watch error", zap.Error(err))

		case <-fire:
			fire = nil
			regenerate(ctx, ws, pending)
			clear(pending)
		}
	}
}

func regenerate(ctx context.Context, ws commands.Workspace, pending map[domain.Year]bool) {
	years := make([]domain.Year, 0, len(pending))
	for y := range pending {
		years = append(years, y)
	}
	slices.Sort(years)

	for _, year := range years {
		res, err := commands.NewRegenerateYearCommand(ws, year).Execute(ctx)
		if err != nil {
			ws.Log.Error("cannot regenerate year aggregator", zap.Int("year", int(year)), zap.Error(err))
			continue
		}
		fmt.Println(res.Message)
	}

	res, err := commands.NewRegenerateRootCommand(ws).Execute(ctx)
	if err != nil {
		ws.Log.Error("cannot regenerate top-level aggregator", zap.Error(err))
		return
	}
	fmt.Println(res.Message)
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "wait this long for more changes before regenerating")
	rootCmd.AddCommand(watchCmd)
}
