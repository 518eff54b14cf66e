package fnode

import "context"

// Approver decides whether a destructive operation on the named entry may
// proceed. Implementations range from auto-approval to interactive
// confirmation; name identifies the entry being clobbered.
type Approver interface {
	RequestApproval(ctx context.Context, name string) (bool, error)
}
