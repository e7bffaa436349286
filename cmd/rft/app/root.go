package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/monshunter/rft/pkg/exitcode"
	"github.com/monshunter/rft/pkg/log"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "rft",
	Short: "rft - Batched file transfer over a pre-authenticated sftp session",
	Long: `rft transfers files between the local host and a remote host through
an sftp-style client, assuming passwordless authentication is already
configured. It retrieves (get) or sends (put) whole batches in one
session and can compare (cmp) a remote file against a local copy.

Exit codes are uniform across client implementations so scheduled jobs
can dispatch on them.`,
	// Runtime failures surface as one diagnostic line plus the exit
	// code; only malformed invocations get the usage block, printed
	// explicitly below.
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set log modes based on flags
		if verbose {
			log.SetVerbose(true)
		}
		if quiet {
			log.SetQuiet(true)
		}
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Enable quiet mode (minimal output)")
}

// Run adds all child commands to the root command and sets flags, this is the entry point called by main.go
func Run() error {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return nil
	}
	var xerr *exitcode.Error
	if errors.As(err, &xerr) {
		return err
	}
	return classifyCommandError(cmd, err)
}

// classifyCommandError maps cobra's own errors onto the exit-code
// contract: unknown subcommands get their own code, everything else is a
// usage error and gets the failing command's usage block.
func classifyCommandError(cmd *cobra.Command, err error) *exitcode.Error {
	if strings.HasPrefix(err.Error(), "unknown command") {
		return exitcode.Errorf(exitcode.BadCommand, "%v", err)
	}
	fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	return exitcode.Errorf(exitcode.Usage, "%v", err)
}
