// Package exitcode defines the process exit codes rft reports to its
// caller. Scheduled jobs dispatch on these, so they are a stable contract:
// the same condition yields the same code regardless of which transfer
// client variant produced it.
package exitcode

import "fmt"

const (
	// OK means the operation succeeded, including the case where a
	// detailed diff was already shown to the user.
	OK = 0
	// Usage means the command line was malformed (bad flags, wrong
	// argument count, malformed host specifier).
	Usage = 1
	// Scratch means the per-invocation scratch directory could not be
	// created.
	Scratch = 2
	// BadCommand means the command name was not recognized.
	BadCommand = 3
	// NoLocalFile means the local file for a compare could not be found.
	NoLocalFile = 4
	// AccessDenied means the transfer client could not access the remote
	// directory.
	AccessDenied = 5
	// PartialTransfer means some files in the batch were missing on the
	// remote side or denied by remote permissions.
	PartialTransfer = 6
	// CmpRetrieve means the retrieve step of a compare failed.
	CmpRetrieve = 7
	// CmpDiffer means the compared files differ and summary mode was
	// requested.
	CmpDiffer = 8
	// ClientFailure means the transfer client failed in a way rft does
	// not classify; the raw diagnostics are surfaced verbatim.
	ClientFailure = 9
)

// Error carries a normalized exit code together with the single
// diagnostic line shown to the caller.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Errorf creates an Error with a formatted message.
func Errorf(code int, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}
