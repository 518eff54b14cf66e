package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/vvka-141/fnode/pkg/fnode"
)

// ForcedApprover implements the Approver interface for non-interactive
// approval. It announces the overwrite and proceeds, used when the
// --overwrite flag already expresses consent.
type ForcedApprover struct {
	verbose bool
}

// NewForcedApprover creates a new ForcedApprover.
func NewForcedApprover(verbose bool) fnode.Approver {
	return &ForcedApprover{verbose: verbose}
}

// RequestApproval announces the overwrite and approves.
func (a *ForcedApprover) RequestApproval(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if a.verbose {
		fmt.Fprintf(os.Stderr, "Overwriting '%s'\n", name)
	}
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ fnode.Approver = (*ForcedApprover)(nil)
