package app

import (
	"github.com/monshunter/rft/pkg/config"
	"github.com/monshunter/rft/pkg/exitcode"
	"github.com/monshunter/rft/pkg/fileval"
	"github.com/monshunter/rft/pkg/hostspec"
	"github.com/monshunter/rft/pkg/scratch"
	"github.com/monshunter/rft/pkg/transfer"
	"github.com/spf13/afero"
)

// runTransfer is the shared driver for get and put. Put filters the file
// list locally first; get queues names unfiltered because remote
// existence is unknowable here.
func runTransfer(mode transfer.Mode, args []string) error {
	target, err := hostspec.Resolve(args[0], config.LoadAliases())
	if err != nil {
		return exitcode.Errorf(exitcode.Usage, "%v", err)
	}
	dir := args[1]
	files := args[2:]

	if mode == transfer.ModePut {
		files = fileval.Filter(afero.NewOsFs(), files)
	}

	sd, err := scratch.New()
	if err != nil {
		return exitcode.Errorf(exitcode.Scratch, "%v", err)
	}
	defer sd.Release()
	sd.TrapSignals()
	defer sd.StopTrap()

	return transfer.NewSession(target, sd).Transfer(mode, dir, files)
}
