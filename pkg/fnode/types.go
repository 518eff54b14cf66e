package fnode

import (
	"fmt"
	"time"
)

// Kind is the resolved kind of a filesystem entry.
//
// KindAbsent covers both "the entry does not exist" and "the entry could not
// be examined"; the two are collapsed at this layer on purpose.
type Kind int

const (
	// KindAbsent indicates the entry is missing or could not be examined.
	KindAbsent Kind = iota
	// KindFile indicates a regular file.
	KindFile
	// KindFolder indicates a directory.
	KindFolder
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindFolder:
		return "folder"
	default:
		return "absent"
	}
}

// Mode controls how the library reacts to malformed path arguments and
// structural conflicts.
//
//   - ModeStrict: any resolver problem or structural conflict is an error.
//   - ModeNormal: resolver problems and structural conflicts are errors;
//     missing entries still read as empty/absent rather than failing.
//   - ModeForgiving: resolver problems are logged as warnings and dropped;
//     structural conflicts remain errors.
//
// Structural conflicts (writing onto a folder, mkdir over a file) are caller
// logic errors and error out under every mode.
type Mode int

const (
	// ModeNormal is the default mode.
	ModeNormal Mode = iota
	// ModeStrict escalates every resolver problem and invariant violation.
	ModeStrict
	// ModeForgiving downgrades malformed path arguments to warnings.
	ModeForgiving
)

// String returns a string representation of the Mode.
func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeForgiving:
		return "forgiving"
	default:
		return "normal"
	}
}

// ParseMode parses a mode name as found in configuration files and
// environment variables. Unrecognized names return ErrInvalidConfig.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "strict":
		return ModeStrict, nil
	case "normal", "":
		return ModeNormal, nil
	case "forgiving":
		return ModeForgiving, nil
	default:
		return ModeNormal, fmt.Errorf("unknown mode %q: %w", s, ErrInvalidConfig)
	}
}

// DefaultMaxAge is the freshness window for cached node attributes.
const DefaultMaxAge = 1 * time.Second
