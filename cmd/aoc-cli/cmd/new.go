package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"aocsync/internal/adapters/tomlconfig"
	"aocsync/internal/application/commands"
	"aocsync/internal/domain"
)

var newModule string

var newCmd = &cobra.Command{
	Use:   "new [dir]",
	Short: "Create a new workspace",
	Long: `Create a new workspace directory with a go.mod, an empty .aoc.toml
and a main.go that dispatches to every year.

The directory must not exist yet.

Examples:
  aoc-cli new
  aoc-cli new puzzles --module github.com/elf/puzzles`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := domain.DefaultWorkspaceDir
		if len(args) == 1 {
			dir = args[0]
		}
		root, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", dir, err)
		}

		initCmd := commands.NewNewWorkspaceCommand(newWorkspace(root), tomlconfig.NewStore(root), newModule)
		result, err := initCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		fmt.Println("Next: aoc-cli set-credential <session cookie>")
		return nil
	},
}

func init() {
	newCmd.Flags().StringVarP(&newModule, "module", "m", domain.DefaultModulePath, "module path of the workspace")
	rootCmd.AddCommand(newCmd)
}
