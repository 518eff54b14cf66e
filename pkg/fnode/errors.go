package fnode

import (
	"errors"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := node.Write(ctx, data, false)
//	if errors.Is(err, fnode.ErrConflict) {
//	    // Target already exists and overwrite was not requested.
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidArgument indicates a path argument could not be interpreted.
	ErrInvalidArgument = errors.New("invalid path argument")

	// ErrConflict indicates an operation contradicts the current filesystem
	// shape (write onto a folder, mkdir over a file, overwrite of a missing
	// file).
	ErrConflict = errors.New("conflicting filesystem shape")

	// ErrNotFile indicates a file-only operation was applied to a non-file.
	ErrNotFile = errors.New("not a file")

	// ErrNotFolder indicates a folder-only operation was applied to a
	// non-folder.
	ErrNotFolder = errors.New("not a folder")

	// ErrNoParent indicates the path has no representable parent
	// (filesystem root, bare drive letter).
	ErrNoParent = errors.New("no representable parent")

	// ErrInvariant indicates an internal identity invariant was violated,
	// e.g. a node missing from its own parent's children.
	ErrInvariant = errors.New("identity invariant violated")
)

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess       = 0  // Operation completed successfully
	ExitGeneralError  = 1  // Unknown or unclassified error
	ExitUsageError    = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic         = 3  // Internal panic (unexpected crash)
	ExitConfigError   = 10 // Invalid configuration or mode
	ExitBadArgument   = 11 // Path argument could not be interpreted
	ExitConflict      = 12 // Operation conflicts with the filesystem shape
	ExitNoParent      = 13 // Path has no representable parent
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInvalidArgument):
		return ExitBadArgument
	case errors.Is(err, ErrConflict),
		errors.Is(err, ErrNotFile),
		errors.Is(err, ErrNotFolder):
		return ExitConflict
	case errors.Is(err, ErrNoParent):
		return ExitNoParent
	}

	return ExitGeneralError
}
