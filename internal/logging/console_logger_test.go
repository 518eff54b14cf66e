package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger_VerboseSuppressedByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLoggerTo(false, &buf)

	l.Verbose("hidden %d", 1)
	assert.Empty(t, buf.String())

	l.Info("shown")
	assert.Equal(t, "shown\n", buf.String())
}

func TestConsoleLogger_VerboseEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLoggerTo(true, &buf)

	l.Verbose("detail %s", "x")
	assert.Equal(t, "[VERBOSE] detail x\n", buf.String())
}

func TestConsoleLogger_Prefixes(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLoggerTo(true, &buf)

	l.Warn("careful")
	l.Error("broken")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "[WARN] careful", lines[0])
	assert.Equal(t, "[ERROR] broken", lines[1])
}

func TestConsoleLogger_LiteralPercentWithoutArgs(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLoggerTo(false, &buf)

	l.Info("100% done")
	assert.Equal(t, "100% done\n", buf.String())
}
