package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/fnode/pkg/fnode"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation. It prompts the user to type the entry's name
// to confirm the overwrite.
type InteractiveApprover struct {
	in  io.Reader
	out io.Writer
}

// NewInteractiveApprover creates a new InteractiveApprover reading from stdin.
func NewInteractiveApprover() fnode.Approver {
	return &InteractiveApprover{in: os.Stdin, out: os.Stderr}
}

// newInteractiveApproverIO is the test seam for input/output injection.
func newInteractiveApproverIO(in io.Reader, out io.Writer) fnode.Approver {
	return &InteractiveApprover{in: in, out: out}
}

// RequestApproval prompts the user to type the entry name to confirm.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, name string) (bool, error) {
	fmt.Fprintf(a.out, "\n⚠  '%s' already exists and will be replaced.\n", name)
	fmt.Fprintf(a.out, "To confirm, type the name '%s' and press Enter: ", name)

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.in)
		input, err := reader.ReadString('\n')
		if err != nil && input == "" {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if input == name {
			fmt.Fprintln(a.out, "✓ Confirmed. Overwriting.")
			return true, nil
		}
		fmt.Fprintf(a.out, "✗ Input '%s' does not match '%s'. Operation cancelled.\n", input, name)
		return false, nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ fnode.Approver = (*InteractiveApprover)(nil)
