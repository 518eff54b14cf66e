package fnode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"config", fmt.Errorf("mode: %w", ErrInvalidConfig), ExitConfigError},
		{"bad argument", fmt.Errorf("arg: %w", ErrInvalidArgument), ExitBadArgument},
		{"conflict", fmt.Errorf("write: %w", ErrConflict), ExitConflict},
		{"not a file", fmt.Errorf("read: %w", ErrNotFile), ExitConflict},
		{"not a folder", fmt.Errorf("list: %w", ErrNotFolder), ExitConflict},
		{"no parent", fmt.Errorf("parent: %w", ErrNoParent), ExitNoParent},
		{"unclassified", errors.New("disk on fire"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeForError(tt.err))
		})
	}
}
