package cmd

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"aocsync/internal/application"
	"aocsync/internal/application/commands"
	"aocsync/internal/domain"
)

var copyCredential bool

var setCredentialCmd = &cobra.Command{
	Use:   "set-credential <session>",
	Short: "Store the session cookie used to download inputs",
	Long: `Store the value of the "session" cookie of a logged-in browser
in the workspace config. Downloads fail until it is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := GetWorkspace()
		return application.WithConfig(GetConfigStore(), ws.Log, func(cfg *domain.Config) error {
			if err := commands.NewSetCredentialCommand(cfg, args[0]).Execute(context.Background()); err != nil {
				return err
			}
			fmt.Println("Session credential saved")
			return nil
		})
	},
}

var showCredentialCmd = &cobra.Command{
	Use:   "show-credential",
	Short: "Print the stored session cookie",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws := GetWorkspace()
		return application.WithConfig(GetConfigStore(), ws.Log, func(cfg *domain.Config) error {
			session, err := commands.NewShowCredentialCommand(cfg).Execute(context.Background())
			if err != nil {
				return err
			}

			if copyCredential {
				if err := clipboard.WriteAll(session); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				fmt.Println("Session credential copied to clipboard")
				return nil
			}

			fmt.Println(session)
			return nil
		})
	},
}

func init() {
	showCredentialCmd.Flags().BoolVarP(&copyCredential, "copy", "c", false, "copy to the clipboard instead of printing")
	rootCmd.AddCommand(setCredentialCmd)
	rootCmd.AddCommand(showCredentialCmd)
}
