package scratch

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReleaseRemovesDirectory(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	require.DirExists(t, d.Path())
	require.NoError(t, os.WriteFile(filepath.Join(d.Path(), "batch"), []byte("quit\n"), 0o600))

	d.Release()
	require.NoDirExists(t, d.Path())
}

func TestReleaseIsIdempotent(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	d.Release()
	d.Release()
	require.NoDirExists(t, d.Path())
}

func TestSubCreatesNestedDirectory(t *testing.T) {
	d, err := New()
	require.NoError(t, err)
	defer d.Release()

	sub, err := d.Sub("cmp")
	require.NoError(t, err)
	require.DirExists(t, sub)
	require.Equal(t, d.Path(), filepath.Dir(sub))
}

func TestInterruptReleasesAndPreservesSignalCode(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	exitCode := -1
	oldExit := osExit
	osExit = func(code int) { exitCode = code }
	defer func() { osExit = oldExit }()

	d.interrupted(syscall.SIGTERM)

	require.NoDirExists(t, d.Path())
	require.Equal(t, 128+int(syscall.SIGTERM), exitCode)
}

func TestStopTrapEndsForwarding(t *testing.T) {
	d, err := New()
	require.NoError(t, err)
	defer d.Release()

	d.TrapSignals()
	d.StopTrap()

	// A second StopTrap must not panic on the closed channel.
	d.StopTrap()
}
