package cli

import (
	"github.com/spf13/cobra"
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "telegram-quizy",
		Short: "Academic quiz bot for Telegram with a monthly leaderboard",
	}

	cmd.AddCommand(newStartCmd())
	cmd.AddCommand(newMigrateCmd())
	return cmd
}
