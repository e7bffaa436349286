// Package transfer orchestrates batched file transfers through an
// external sftp-style client. It hides the behavioral differences between
// the known client variants behind one normalized contract: uniform exit
// codes, uniform messages, and partial-failure reporting for multi-file
// batches.
package transfer

import (
	"strings"

	"github.com/monshunter/rft/pkg/envar"
	"github.com/monshunter/rft/pkg/exitcode"
	"github.com/monshunter/rft/pkg/hostspec"
	"github.com/monshunter/rft/pkg/log"
	"github.com/monshunter/rft/pkg/scratch"
)

// Session drives transfers against one resolved target. Invocations are
// strictly sequential: one client run is outstanding at a time.
type Session struct {
	Target  hostspec.Target
	Client  string
	Variant Variant
	Scratch *scratch.Dir

	// WorkDir is the directory retrieved files land in. Empty means the
	// caller's working directory; compare mode points it at a nested
	// scratch directory instead.
	WorkDir string

	// Quiet suppresses this package's own notices so a wrapping caller
	// can report in its own words.
	Quiet bool
}

// NewSession probes the installed client and binds it to the target.
func NewSession(target hostspec.Target, sd *scratch.Dir) *Session {
	client := envar.ClientPath()
	return &Session{
		Target:  target,
		Client:  client,
		Variant: DetectVariant(client),
		Scratch: sd,
	}
}

// Transfer runs one batch and returns nil on success or an
// exitcode.Error describing the normalized failure.
func (s *Session) Transfer(mode Mode, dir string, files []string) error {
	batch := BuildBatch(mode, s.Variant, dir, files)
	log.Debugf("Batch for %s (%s): %q", s.Target, s.Variant, batch)

	result, err := s.invoke(dir, batch)
	if err != nil {
		return exitcode.Errorf(exitcode.ClientFailure, "transfer client failed: %v", err)
	}

	outcome := Classify(s.Variant, result)
	return s.report(mode, dir, outcome)
}

// report turns a classified outcome into the caller-visible contract.
func (s *Session) report(mode Mode, dir string, outcome Outcome) error {
	switch outcome.Kind {
	case Success:
		if !s.Quiet {
			log.Infof("%s of %s:%s complete", mode, s.Target, dir)
		}
		return nil
	case AccessDenied:
		return exitcode.Errorf(exitcode.AccessDenied,
			"cannot access directory %s on %s", dir, s.Target)
	case Partial:
		if len(outcome.MissingFiles) > 0 {
			return exitcode.Errorf(exitcode.PartialTransfer,
				"not transferred: %s", strings.Join(outcome.MissingFiles, " "))
		}
		return exitcode.Errorf(exitcode.PartialTransfer,
			"%d file(s) denied by remote permissions", outcome.PermissionDenied)
	default:
		return exitcode.Errorf(exitcode.ClientFailure,
			"transfer client failed:\n%s", strings.TrimRight(outcome.RawDiag, "\n"))
	}
}
