package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestRequirePath(t *testing.T) {
	cmd := &cobra.Command{
		Use: "stat <path>",
	}

	t.Run("returns error when no args", func(t *testing.T) {
		err := RequirePath(cmd, []string{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "missing required argument: <path>") {
			t.Errorf("expected error to contain 'missing required argument: <path>', got: %s", err.Error())
		}
		if !strings.Contains(err.Error(), "Example:") {
			t.Errorf("expected error to contain 'Example:', got: %s", err.Error())
		}
	})

	t.Run("returns nil when arg provided", func(t *testing.T) {
		err := RequirePath(cmd, []string{"./reports"})
		if err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("returns error when too many args", func(t *testing.T) {
		err := RequirePath(cmd, []string{"a", "b"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "accepts 1 arg") {
			t.Errorf("expected error to contain 'accepts 1 arg', got: %s", err.Error())
		}
	})
}

func TestOptionalPath(t *testing.T) {
	cmd := &cobra.Command{
		Use: "ls [path]",
	}

	t.Run("accepts no args", func(t *testing.T) {
		if err := OptionalPath(cmd, []string{}); err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("accepts one arg", func(t *testing.T) {
		if err := OptionalPath(cmd, []string{"./reports"}); err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("rejects two args", func(t *testing.T) {
		if err := OptionalPath(cmd, []string{"a", "b"}); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestPathOrDot(t *testing.T) {
	if got := pathOrDot(nil); got != "." {
		t.Errorf("expected '.', got %q", got)
	}
	if got := pathOrDot([]string{"x"}); got != "x" {
		t.Errorf("expected 'x', got %q", got)
	}
}
