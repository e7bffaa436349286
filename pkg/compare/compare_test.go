package compare

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/monshunter/rft/pkg/exitcode"
	"github.com/monshunter/rft/pkg/hostspec"
	"github.com/monshunter/rft/pkg/scratch"
	"github.com/monshunter/rft/pkg/transfer"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestSameContent(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "a", []byte("identical bytes"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "b", []byte("identical bytes"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "c", []byte("different bytes"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "d", []byte("short"), 0o644))

	same, err := sameContent(fsys, "a", "b")
	require.NoError(t, err)
	require.True(t, same)

	same, err = sameContent(fsys, "a", "c")
	require.NoError(t, err)
	require.False(t, same)

	same, err = sameContent(fsys, "a", "d")
	require.NoError(t, err)
	require.False(t, same, "size mismatch must short-circuit to different")

	_, err = sameContent(fsys, "a", "absent")
	require.Error(t, err)
}

// stubClient writes a fixed payload into its working directory when
// invoked in batch mode, mimicking a retrieve. The version probe reports
// OpenSSH and a clean run emits one diagnostic line.
func stubClient(t *testing.T, payload string) string {
	t.Helper()
	dir := t.TempDir()
	script := `#!/bin/sh
if [ "$1" = "-V" ]; then
  echo "OpenSSH_9.7p1"
  exit 0
fi
printf '%s' "` + payload + `" > remote.txt
echo "sftp> get remote.txt"
echo "Connecting..." >&2
`
	path := filepath.Join(dir, "sftp-stub")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func newComparer(t *testing.T, payload, localContent string) *Comparer {
	t.Helper()
	t.Setenv("RFT_CLIENT", stubClient(t, payload))

	sd, err := scratch.New()
	require.NoError(t, err)
	t.Cleanup(sd.Release)

	local := filepath.Join(t.TempDir(), "remote.txt")
	require.NoError(t, os.WriteFile(local, []byte(localContent), 0o644))

	sess := transfer.NewSession(hostspec.Target{Host: "h.example.com"}, sd)
	return New(sess, "/pub", "remote.txt", local)
}

func TestRunIdenticalFiles(t *testing.T) {
	c := newComparer(t, "same payload", "same payload")

	differInvoked := false
	c.differ = func(width int, local, remote string) error {
		differInvoked = true
		return nil
	}

	require.NoError(t, c.Run())
	require.False(t, differInvoked, "identical files must not invoke the differ")
}

func TestRunSummaryMismatch(t *testing.T) {
	c := newComparer(t, "remote payload", "local payload!")
	c.Summary = true

	differInvoked := false
	c.differ = func(width int, local, remote string) error {
		differInvoked = true
		return nil
	}

	err := c.Run()
	var xerr *exitcode.Error
	require.ErrorAs(t, err, &xerr)
	require.Equal(t, exitcode.CmpDiffer, xerr.Code)
	require.False(t, differInvoked, "summary mode must not invoke the differ")
}

func TestRunDetailedMismatchInvokesDiffer(t *testing.T) {
	c := newComparer(t, "remote payload", "local payload!")
	c.Width = 80

	var gotWidth int
	var gotLocal, gotRemote string
	c.differ = func(width int, local, remote string) error {
		gotWidth = width
		gotLocal = local
		gotRemote = remote
		return nil
	}

	require.NoError(t, c.Run(), "a shown diff reports success")
	require.Equal(t, 80, gotWidth)
	require.Equal(t, c.LocalFile, gotLocal)
	require.Contains(t, gotRemote, c.Session.Scratch.Path(),
		"retrieved copy must live under the scratch directory")
}

func TestRunRetrieveFailure(t *testing.T) {
	c := newComparer(t, "payload", "payload")
	// Point at a client that cannot be started at all.
	t.Setenv("RFT_CLIENT", filepath.Join(t.TempDir(), "absent"))
	c.Session.Client = filepath.Join(t.TempDir(), "absent")

	err := c.Run()
	var xerr *exitcode.Error
	require.ErrorAs(t, err, &xerr)
	require.Equal(t, exitcode.CmpRetrieve, xerr.Code)
}

func TestDisplayWidthPrefersFlag(t *testing.T) {
	c := &Comparer{Width: 100}
	require.Equal(t, 100, c.displayWidth())
}
