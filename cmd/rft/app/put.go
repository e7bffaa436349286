package app

import (
	"github.com/monshunter/rft/pkg/transfer"
	"github.com/spf13/cobra"
)

var putCmd = &cobra.Command{
	Use:   "put [user@]host|alias[:port] dir file...",
	Short: "Send files to a remote directory",
	Long: `Send one or more local files to a directory on the remote host.
Files that are missing, unreadable, or directories are reported and
skipped; they never abort the rest of the batch.`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransfer(transfer.ModePut, args)
	},
}

func init() {
	rootCmd.AddCommand(putCmd)
}
