package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fnode/pkg/fnode"
)

// clearTreeEnv keeps ambient FNODE_* settings out of command tests.
func clearTreeEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FNODE_MODE", "")
	t.Setenv("FNODE_MAX_AGE", "")
}

// capture redirects a command's stdout into a buffer for the test's duration.
func capture(t *testing.T, cmd *cobra.Command) *bytes.Buffer {
	t.Helper()
	// Tests call RunE directly, skipping Execute(), which is what normally
	// installs the command's context; without one cmd.Context() is nil.
	cmd.SetContext(context.Background())
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	t.Cleanup(func() { cmd.SetOut(nil) })
	return &buf
}

func TestWriteCmd_ThenCat(t *testing.T) {
	clearTreeEnv(t)
	path := filepath.Join(t.TempDir(), "f.txt")

	resetWriteFlags()
	writeFlags.data = "hello"
	writeFlags.dataSet = true
	out := capture(t, writeCmd)

	if err := runWrite(writeCmd, []string{path}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !strings.Contains(out.String(), "f.txt") {
		t.Errorf("expected written path in output, got: %s", out.String())
	}

	catOut := capture(t, catCmd)
	if err := runCat(catCmd, []string{path}); err != nil {
		t.Fatalf("cat failed: %v", err)
	}
	if catOut.String() != "hello" {
		t.Errorf("expected 'hello', got %q", catOut.String())
	}
}

func TestWriteCmd_ExistingNeedsOverwrite(t *testing.T) {
	clearTreeEnv(t)
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	resetWriteFlags()
	writeFlags.data = "new"
	writeFlags.dataSet = true
	capture(t, writeCmd)

	err := runWrite(writeCmd, []string{path})
	if !errors.Is(err, fnode.ErrConflict) {
		t.Fatalf("expected ErrConflict, got: %v", err)
	}

	writeFlags.overwrite = true
	if err := runWrite(writeCmd, []string{path}); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("expected 'new', got %q", data)
	}
}

func TestAppendCmd(t *testing.T) {
	clearTreeEnv(t)
	path := filepath.Join(t.TempDir(), "log.txt")

	resetAppendFlags()
	appendFlags.data = "one\n"
	appendFlags.dataSet = true
	capture(t, appendCmd)

	if err := runAppend(appendCmd, []string{path}); err != nil {
		t.Fatalf("append (create) failed: %v", err)
	}
	appendFlags.data = "two\n"
	if err := runAppend(appendCmd, []string{path}); err != nil {
		t.Fatalf("append (extend) failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "one\ntwo\n" {
		t.Errorf("expected appended content, got %q", data)
	}
}

func TestAppendCmd_MustExist(t *testing.T) {
	clearTreeEnv(t)
	path := filepath.Join(t.TempDir(), "missing.txt")

	resetAppendFlags()
	appendFlags.data = "x"
	appendFlags.dataSet = true
	appendFlags.mustExist = true
	capture(t, appendCmd)

	err := runAppend(appendCmd, []string{path})
	if !errors.Is(err, fnode.ErrConflict) {
		t.Fatalf("expected ErrConflict, got: %v", err)
	}
}

func TestMkdirCmd(t *testing.T) {
	clearTreeEnv(t)
	path := filepath.Join(t.TempDir(), "a", "b", "c")
	capture(t, mkdirCmd)

	if err := runMkdir(mkdirCmd, []string{path}); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s, got info=%v err=%v", path, info, err)
	}

	// Idempotent on the directory that now exists.
	if err := runMkdir(mkdirCmd, []string{path}); err != nil {
		t.Errorf("second mkdir failed: %v", err)
	}
}

func TestMkdirCmd_OverFile(t *testing.T) {
	clearTreeEnv(t)
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	capture(t, mkdirCmd)

	err := runMkdir(mkdirCmd, []string{path})
	if !errors.Is(err, fnode.ErrConflict) {
		t.Fatalf("expected ErrConflict, got: %v", err)
	}
}

func TestMktempCmd(t *testing.T) {
	clearTreeEnv(t)
	dir := t.TempDir()

	resetMktempFlags()
	mktempFlags.suffix = ".txt"
	out := capture(t, mktempCmd)

	if err := runMktemp(mktempCmd, []string{dir}); err != nil {
		t.Fatalf("mktemp failed: %v", err)
	}

	created := strings.TrimSpace(out.String())
	base := filepath.Base(created)
	if !strings.HasPrefix(base, "tmp-") || !strings.HasSuffix(base, ".txt") {
		t.Errorf("unexpected temp name %q", base)
	}
	if _, err := os.Stat(created); err != nil {
		t.Errorf("expected temp file on disk: %v", err)
	}
}

func TestLsCmd(t *testing.T) {
	clearTreeEnv(t)
	dir := t.TempDir()
	mustWrite := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	mustWrite("a.txt", "aa")
	mustWrite("b.txt", "b")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	t.Run("default lists everything in order", func(t *testing.T) {
		resetLsFlags()
		out := capture(t, lsCmd)
		if err := runLs(lsCmd, []string{dir}); err != nil {
			t.Fatalf("ls failed: %v", err)
		}
		if got := out.String(); got != "a.txt\nb.txt\nsub\n" {
			t.Errorf("unexpected listing:\n%s", got)
		}
	})

	t.Run("files only", func(t *testing.T) {
		resetLsFlags()
		lsFlags.files = true
		out := capture(t, lsCmd)
		if err := runLs(lsCmd, []string{dir}); err != nil {
			t.Fatalf("ls --files failed: %v", err)
		}
		if strings.Contains(out.String(), "sub") {
			t.Errorf("folders leaked into --files listing:\n%s", out.String())
		}
	})

	t.Run("dirs only", func(t *testing.T) {
		resetLsFlags()
		lsFlags.dirs = true
		out := capture(t, lsCmd)
		if err := runLs(lsCmd, []string{dir}); err != nil {
			t.Fatalf("ls --dirs failed: %v", err)
		}
		if got := out.String(); got != "sub\n" {
			t.Errorf("unexpected --dirs listing:\n%s", got)
		}
	})

	t.Run("long format shows kind and size", func(t *testing.T) {
		resetLsFlags()
		lsFlags.long = true
		out := capture(t, lsCmd)
		if err := runLs(lsCmd, []string{dir}); err != nil {
			t.Fatalf("ls --long failed: %v", err)
		}
		if !strings.Contains(out.String(), "file") || !strings.Contains(out.String(), "folder") {
			t.Errorf("expected kinds in long listing:\n%s", out.String())
		}
	})

	t.Run("files and dirs are mutually exclusive", func(t *testing.T) {
		resetLsFlags()
		lsFlags.files = true
		lsFlags.dirs = true
		if err := runLs(lsCmd, []string{dir}); err == nil {
			t.Fatal("expected error for --files with --dirs")
		}
	})
}

func TestStatCmd(t *testing.T) {
	clearTreeEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	resetStatFlags()
	out := capture(t, statCmd)
	if err := runStat(statCmd, []string{path}); err != nil {
		t.Fatalf("stat failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{"kind:     file", "size:     5", "name:     f.txt"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output:\n%s", want, got)
		}
	}
	if strings.Contains(got, "sha256") {
		t.Errorf("digests must be opt-in:\n%s", got)
	}
}

func TestStatCmd_Digest(t *testing.T) {
	clearTreeEnv(t)
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0644); err != nil {
		t.Fatal(err)
	}

	resetStatFlags()
	statFlags.digest = true
	out := capture(t, statCmd)
	if err := runStat(statCmd, []string{path}); err != nil {
		t.Fatalf("stat --digest failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "sha256:") || !strings.Contains(got, "sha256n:") {
		t.Errorf("expected both digests in output:\n%s", got)
	}
}

func TestStatCmd_BadModeEnv(t *testing.T) {
	clearTreeEnv(t)
	t.Setenv("FNODE_MODE", "bogus")
	capture(t, statCmd)

	err := runStat(statCmd, []string{"."})
	if !errors.Is(err, fnode.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got: %v", err)
	}
}

func TestBrowseCmd_NonInteractiveListsOnce(t *testing.T) {
	clearTreeEnv(t)
	t.Setenv("CI", "true")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("aa"), 0644); err != nil {
		t.Fatal(err)
	}

	out := capture(t, browseCmd)
	if err := runBrowse(browseCmd, []string{dir}); err != nil {
		t.Fatalf("browse failed: %v", err)
	}
	if !strings.Contains(out.String(), "a.txt") || !strings.Contains(out.String(), "file") {
		t.Errorf("expected long-format listing, got:\n%s", out.String())
	}
}
