// Package fileval classifies local files before they are queued for
// upload. Files that cannot be sent are reported and skipped; they never
// abort the batch.
package fileval

import (
	"os"

	"github.com/monshunter/rft/pkg/log"
	"github.com/spf13/afero"
)

// Status is the validation result for one candidate file.
type Status int

const (
	// Valid means the file exists, is a regular file, and is readable.
	Valid Status = iota
	// Missing means the file does not exist.
	Missing
	// IsDirectory means the path names a directory.
	IsDirectory
	// Unreadable means the file exists but cannot be opened for reading.
	Unreadable
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case Missing:
		return "no such file"
	case IsDirectory:
		return "is a directory"
	case Unreadable:
		return "not readable"
	default:
		return "unknown"
	}
}

// Check classifies name. The checks run in order: existence, directory,
// readability.
func Check(fsys afero.Fs, name string) Status {
	info, err := fsys.Stat(name)
	if err != nil {
		if os.IsNotExist(err) {
			return Missing
		}
		return Unreadable
	}
	if info.IsDir() {
		return IsDirectory
	}

	f, err := fsys.Open(name)
	if err != nil {
		return Unreadable
	}
	f.Close()
	return Valid
}

// Filter returns the names that may be sent, logging one skip notice per
// rejected file.
func Filter(fsys afero.Fs, names []string) []string {
	valid := make([]string, 0, len(names))
	for _, name := range names {
		status := Check(fsys, name)
		if status != Valid {
			log.Errorf("Skipping %s: %s", name, status)
			continue
		}
		valid = append(valid, name)
	}
	return valid
}
