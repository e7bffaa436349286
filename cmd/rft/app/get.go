package app

import (
	"github.com/monshunter/rft/pkg/transfer"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [user@]host|alias[:port] dir file...",
	Short: "Retrieve files from a remote directory",
	Long: `Retrieve one or more files from a directory on the remote host into
the current working directory. Files missing on the remote side are
reported by name; the rest of the batch still transfers.`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransfer(transfer.ModeGet, args)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
