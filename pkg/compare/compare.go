// Package compare checks a remote file against a local copy. The remote
// file is retrieved into an isolated scratch location, compared byte for
// byte, and on mismatch either summarized or handed to an external
// side-by-side differ.
package compare

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/monshunter/rft/pkg/exitcode"
	"github.com/monshunter/rft/pkg/transfer"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// DefaultWidth is the differ display width when no flag is given and
// stdout is not a terminal.
const DefaultWidth = 130

// Comparer drives one compare operation.
type Comparer struct {
	Session   *transfer.Session
	Dir       string
	File      string
	LocalFile string
	Summary   bool
	Width     int
	Fs        afero.Fs

	// differ is swappable for tests; the default execs sdiff.
	differ func(width int, local, remote string) error
}

// New prepares a compare of dir/file on the session's target against
// localFile.
func New(session *transfer.Session, dir, file, localFile string) *Comparer {
	return &Comparer{
		Session:   session,
		Dir:       dir,
		File:      file,
		LocalFile: localFile,
		Fs:        afero.NewOsFs(),
		differ:    runSdiff,
	}
}

// Run retrieves the remote file and compares. A nil return means either
// the files matched or a detailed diff was already shown; summary-mode
// mismatches and retrieve failures come back as exitcode errors.
func (c *Comparer) Run() error {
	// Retrieve into a nested scratch directory so an existing local file
	// with the same name is never clobbered.
	work, err := c.Session.Scratch.Sub("cmp")
	if err != nil {
		return exitcode.Errorf(exitcode.Scratch, "%v", err)
	}
	c.Session.WorkDir = work
	c.Session.Quiet = true

	if err := c.Session.Transfer(transfer.ModeGet, c.Dir, []string{c.File}); err != nil {
		return exitcode.Errorf(exitcode.CmpRetrieve,
			"cannot retrieve %s:%s/%s", c.Session.Target, c.Dir, c.File)
	}
	retrieved := filepath.Join(work, path.Base(c.File))

	same, err := sameContent(c.Fs, c.LocalFile, retrieved)
	if err != nil {
		return exitcode.Errorf(exitcode.CmpRetrieve, "comparison failed: %v", err)
	}
	if same {
		return nil
	}

	remoteLabel := fmt.Sprintf("%s:%s/%s", c.Session.Target, c.Dir, c.File)
	if c.Summary {
		return exitcode.Errorf(exitcode.CmpDiffer,
			"files %s and %s differ", c.LocalFile, remoteLabel)
	}

	width := c.displayWidth()
	fmt.Printf("%-*s%s\n", width/2, c.LocalFile, remoteLabel)
	if err := c.differ(width, c.LocalFile, retrieved); err != nil {
		return err
	}
	// The differ's own output already informed the caller; a nonzero
	// code here would be redundant signaling.
	return nil
}

// displayWidth prefers the explicit flag, then the terminal width.
func (c *Comparer) displayWidth() int {
	if c.Width > 0 {
		return c.Width
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}

// sameContent reports whether two files are byte-identical. Sizes are
// checked first so large differing files short-circuit.
func sameContent(fsys afero.Fs, a, b string) (bool, error) {
	ia, err := fsys.Stat(a)
	if err != nil {
		return false, err
	}
	ib, err := fsys.Stat(b)
	if err != nil {
		return false, err
	}
	if ia.Size() != ib.Size() {
		return false, nil
	}

	fa, err := fsys.Open(a)
	if err != nil {
		return false, err
	}
	defer fa.Close()
	fb, err := fsys.Open(b)
	if err != nil {
		return false, err
	}
	defer fb.Close()

	bufA := make([]byte, 32*1024)
	bufB := make([]byte, 32*1024)
	for {
		na, errA := io.ReadFull(fa, bufA)
		nb, errB := io.ReadFull(fb, bufB)
		if !bytes.Equal(bufA[:na], bufB[:nb]) {
			return false, nil
		}
		if errA == io.EOF || errA == io.ErrUnexpectedEOF {
			return errB == io.EOF || errB == io.ErrUnexpectedEOF, nil
		}
		if errA != nil {
			return false, errA
		}
		if errB != nil {
			return false, errB
		}
	}
}
