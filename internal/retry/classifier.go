package retry

import (
	"errors"
	"io/fs"
	"syscall"
)

// ErrorClassifier determines whether an error is transient (retryable) or
// fatal.
type ErrorClassifier interface {
	// IsTransient returns true if the error is temporary and the operation
	// should be retried.
	IsTransient(err error) bool
}

// OSErrorClassifier implements ErrorClassifier for local filesystem errors.
//
// Exactly two conditions are transient: the entry not being found and the
// resource being busy. Both are expected to resolve on immediate retry when
// another process is mid-rename or briefly holds a lock. Every other fault
// is persistent and not worth retrying.
type OSErrorClassifier struct{}

// NewOSErrorClassifier creates a new filesystem error classifier.
func NewOSErrorClassifier() *OSErrorClassifier {
	return &OSErrorClassifier{}
}

// IsTransient determines if an error is temporary and retryable.
func (c *OSErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, fs.ErrNotExist) {
		return true
	}
	if errors.Is(err, syscall.EBUSY) || errors.Is(err, syscall.EAGAIN) {
		return true
	}
	return false
}
