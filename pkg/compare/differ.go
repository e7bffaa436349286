package compare

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// runSdiff delegates to the external side-by-side differ with its output
// passed through verbatim.
func runSdiff(width int, local, remote string) error {
	cmd := exec.Command("sdiff", "-w", strconv.Itoa(width), local, remote)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	// sdiff exits 1 when the files differ; that is the expected case.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return nil
	}
	return fmt.Errorf("failed to run sdiff: %w", err)
}
