// Package scratch manages the per-invocation scratch directory. The
// directory is created once before any fallible work begins and removed
// on every exit path, including interruption signals.
package scratch

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/monshunter/rft/pkg/log"
)

// osExit is a variable for os.Exit to make it mockable in tests
var osExit = os.Exit

// Dir is a scratch directory with guaranteed release.
type Dir struct {
	path    string
	release sync.Once
	signals chan os.Signal
}

// New creates the scratch directory.
func New() (*Dir, error) {
	path, err := os.MkdirTemp("", "rft-")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	return &Dir{path: path}, nil
}

// Path returns the scratch directory path.
func (d *Dir) Path() string {
	return d.path
}

// Sub creates and returns a nested scratch subdirectory. Retrieved files
// for compare land here, never in the caller's working directory.
func (d *Dir) Sub(name string) (string, error) {
	sub := filepath.Join(d.path, name)
	if err := os.Mkdir(sub, 0o700); err != nil {
		return "", fmt.Errorf("failed to create scratch subdirectory: %w", err)
	}
	return sub, nil
}

// Release removes the scratch directory. It is idempotent and never
// masks the caller's error: removal failures are logged, not returned.
func (d *Dir) Release() {
	d.release.Do(func() {
		if err := os.RemoveAll(d.path); err != nil {
			log.Warnf("Failed to remove scratch directory %s: %v", d.path, err)
		}
	})
}

// TrapSignals forwards interruption signals into the release path. The
// process exits with the conventional 128+signal code so the triggering
// condition stays visible to the caller.
func (d *Dir) TrapSignals() {
	d.signals = make(chan os.Signal, 1)
	signal.Notify(d.signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig, ok := <-d.signals
		if !ok {
			return
		}
		d.interrupted(sig)
	}()
}

// StopTrap ends signal forwarding, for the normal-completion path.
func (d *Dir) StopTrap() {
	if d.signals != nil {
		signal.Stop(d.signals)
		close(d.signals)
		d.signals = nil
	}
}

func (d *Dir) interrupted(sig os.Signal) {
	d.Release()
	code := 1
	if s, ok := sig.(syscall.Signal); ok {
		code = 128 + int(s)
	}
	osExit(code)
}
