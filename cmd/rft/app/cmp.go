package app

import (
	"path"

	"github.com/monshunter/rft/pkg/compare"
	"github.com/monshunter/rft/pkg/config"
	"github.com/monshunter/rft/pkg/exitcode"
	"github.com/monshunter/rft/pkg/fileval"
	"github.com/monshunter/rft/pkg/hostspec"
	"github.com/monshunter/rft/pkg/scratch"
	"github.com/monshunter/rft/pkg/transfer"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cmpSummary bool
	cmpWidth   int
)

var cmpCmd = &cobra.Command{
	Use:   "cmp [user@]host|alias[:port] dir file [localfile]",
	Short: "Compare a remote file against a local copy",
	Long: `Retrieve dir/file from the remote host into a scratch location and
compare it byte for byte against localfile (default: file's base name in
the current directory). Identical files produce no output. Differing
files are either summarized (-s) or shown side by side through sdiff.`,
	Args: cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := hostspec.Resolve(args[0], config.LoadAliases())
		if err != nil {
			return exitcode.Errorf(exitcode.Usage, "%v", err)
		}
		dir, file := args[1], args[2]

		localFile := path.Base(file)
		if len(args) == 4 {
			localFile = args[3]
		}
		if status := fileval.Check(afero.NewOsFs(), localFile); status != fileval.Valid {
			return exitcode.Errorf(exitcode.NoLocalFile, "cannot compare %s: %s", localFile, status)
		}

		sd, err := scratch.New()
		if err != nil {
			return exitcode.Errorf(exitcode.Scratch, "%v", err)
		}
		defer sd.Release()
		sd.TrapSignals()
		defer sd.StopTrap()

		c := compare.New(transfer.NewSession(target, sd), dir, file, localFile)
		c.Summary = cmpSummary
		c.Width = cmpWidth
		return c.Run()
	},
}

func init() {
	cmpCmd.Flags().BoolVarP(&cmpSummary, "summary", "s", false, "Report a one-line notice instead of a diff")
	cmpCmd.Flags().IntVarP(&cmpWidth, "width", "w", 0, "Differ display width (default: terminal width)")
	rootCmd.AddCommand(cmpCmd)
}
