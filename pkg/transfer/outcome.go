package transfer

import (
	"path"
	"regexp"
	"strings"
)

// Kind is the normalized result of a transfer, independent of which
// client variant produced it.
type Kind int

const (
	// Success means every file in the batch transferred.
	Success Kind = iota
	// Partial means the batch ran but some files were missing on the
	// remote side or denied by remote permissions.
	Partial
	// AccessDenied means the client could not access the remote
	// directory.
	AccessDenied
	// ClientError means the client failed in a way rft does not
	// classify; RawDiag holds the full capture.
	ClientError
)

// Outcome is the classified result surfaced to the caller.
type Outcome struct {
	Kind             Kind
	MissingFiles     []string
	PermissionDenied int
	RawDiag          string
}

// Diagnostic patterns, one set per client variant. Each is a contract
// with a known client's output format; unmatched text falls through to
// ClientError rather than a guessed interpretation.
var (
	// SSH.com sftp2: `a.txt (src): no such file or directory`
	sshcomMissingRe = regexp.MustCompile(`^(.+) \(src\): no such file`)
	// OpenSSH sftp: `File "/pub/a.txt" not found.`
	opensshMissingRe = regexp.MustCompile(`File "(.+?)" not found`)
	// OpenSSH sftp: `remote open("/pub/a.txt"): Permission denied`
	opensshDeniedRe = regexp.MustCompile(`Permission denied`)
)

// Classify maps a raw invocation result to a normalized Outcome. It is a
// pure function: the same Result always yields the same Outcome.
func Classify(v Variant, r Result) Outcome {
	if v == VariantSSHCom {
		return classifySSHCom(r)
	}
	return classifyOpenSSH(r)
}

// classifySSHCom dispatches on the client's exit status. This client
// reports missing sources with exit 6 regardless of how many files were
// affected, so the names come from the diagnostic text.
func classifySSHCom(r Result) Outcome {
	switch r.ExitStatus {
	case 0:
		return Outcome{Kind: Success}
	case 2:
		return Outcome{Kind: AccessDenied, RawDiag: r.Diag}
	case 6:
		var missing []string
		for _, line := range diagLines(r.Diag) {
			if m := sshcomMissingRe.FindStringSubmatch(line); m != nil {
				missing = append(missing, m[1])
			}
		}
		return Outcome{Kind: Partial, MissingFiles: missing, RawDiag: r.Diag}
	default:
		return Outcome{Kind: ClientError, RawDiag: r.Diag}
	}
}

// classifyOpenSSH cannot trust exit status 0: this client frequently
// reports success when some or all files failed, and swallows directory
// change failures entirely. Secondary inspection of both streams is
// mandatory.
func classifyOpenSSH(r Result) Outcome {
	if r.ExitStatus != 0 {
		return Outcome{Kind: ClientError, RawDiag: r.Diag}
	}

	lines := diagLines(r.Diag)
	// A clean run emits exactly one boilerplate diagnostic line.
	if len(lines) == 1 {
		return Outcome{Kind: Success}
	}

	// Routine progress is echoed on stdout even on failure, so its
	// absence means the client never actually connected.
	if strings.TrimSpace(r.Stdout) == "" {
		return Outcome{Kind: AccessDenied, RawDiag: r.Diag}
	}

	var missing []string
	denied := 0
	for _, line := range lines {
		if m := opensshMissingRe.FindStringSubmatch(line); m != nil {
			missing = append(missing, path.Base(m[1]))
			continue
		}
		if opensshDeniedRe.MatchString(line) {
			denied++
		}
	}

	if len(missing) > 0 || denied > 0 {
		return Outcome{
			Kind:             Partial,
			MissingFiles:     missing,
			PermissionDenied: denied,
			RawDiag:          r.Diag,
		}
	}
	// Extra diagnostic lines that match no known pattern are
	// informational notices already shown to the user.
	return Outcome{Kind: Success}
}

// diagLines splits a capture into non-empty lines.
func diagLines(capture string) []string {
	var lines []string
	for _, line := range strings.Split(capture, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
