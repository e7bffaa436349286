package transfer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Result is the raw outcome of one client invocation. It carries no
// interpretation; Classify consumes it exactly once.
type Result struct {
	ExitStatus int
	Stdout     string
	Diag       string
}

// invoke runs the transfer client in batch mode against the target and
// captures its output. The SSH.com client interleaves progress and errors
// on one stream, so both are captured into a single diagnostic buffer;
// OpenSSH keeps them separate and its stdout content is meaningful to the
// classifier even on failure.
func (s *Session) invoke(dir string, batch []string) (Result, error) {
	batchFile := filepath.Join(s.Scratch.Path(), "batch")
	script := strings.Join(batch, "\n") + "\n"
	if err := os.WriteFile(batchFile, []byte(script), 0o600); err != nil {
		return Result{}, fmt.Errorf("failed to write batch file: %w", err)
	}

	var args []string
	if s.Target.Port != 0 {
		args = append(args, "-P", strconv.Itoa(s.Target.Port))
	}

	var stdout, diag bytes.Buffer
	cmd := exec.Command(s.Client)
	switch s.Variant {
	case VariantSSHCom:
		args = append(args, "-B", batchFile, s.Target.String())
		cmd.Stdout = &diag
		cmd.Stderr = &diag
	default:
		args = append(args, "-b", batchFile, s.Target.String()+":"+dir)
		cmd.Stdout = &stdout
		cmd.Stderr = &diag
	}
	cmd.Args = append(cmd.Args, args...)
	cmd.Dir = s.WorkDir

	err := cmd.Run()
	exitStatus := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{}, fmt.Errorf("failed to run %s: %w", s.Client, err)
		}
		exitStatus = exitErr.ExitCode()
	}

	return Result{
		ExitStatus: exitStatus,
		Stdout:     stdout.String(),
		Diag:       diag.String(),
	}, nil
}
