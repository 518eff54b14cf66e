package tui

import "testing"

func TestDetectMode_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"explicit non-interactive", "FNODE_NON_INTERACTIVE", "1"},
		{"ci convention", "CI", "true"},
		{"no-color convention", "NO_COLOR", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if got := DetectMode(); got != ModeNonInteractive {
				t.Errorf("expected ModeNonInteractive with %s=%s, got %v", tt.key, tt.value, got)
			}
			if IsInteractive() {
				t.Error("IsInteractive must be false")
			}
		})
	}
}

func TestDetectMode_NonTerminalStdin(t *testing.T) {
	// Test processes never run with a terminal stdin.
	t.Setenv("FNODE_NON_INTERACTIVE", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")

	if got := DetectMode(); got != ModeNonInteractive {
		t.Errorf("expected ModeNonInteractive without a terminal, got %v", got)
	}
}
