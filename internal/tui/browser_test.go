package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fnode/internal/files/filesystem"
	"github.com/vvka-141/fnode/pkg/fnode"
)

func newBrowserFixture(t *testing.T) Browser {
	t.Helper()
	mem := filesystem.NewMemoryFileSystem()
	mem.SetDir("./docs")
	mem.SetFile("./docs/guide.txt", []byte("read me"))
	mem.SetFile("./notes.txt", []byte("n"))

	tree := fnode.New(
		fnode.WithFileSystem(mem),
		fnode.WithGetwd(func() (string, error) { return "/work", nil }),
		fnode.WithClock(func() time.Time { return time.Unix(1700000000, 0) }),
	)
	start, err := tree.Node(".")
	require.NoError(t, err)
	return NewBrowser(tree, start)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, b Browser, msg tea.Msg) Browser {
	t.Helper()
	model, _ := b.Update(msg)
	next, ok := model.(Browser)
	require.True(t, ok)
	return next
}

func TestBrowser_ListsStartDirectory(t *testing.T) {
	b := newBrowserFixture(t)

	view := b.View()
	assert.Contains(t, view, "docs")
	assert.Contains(t, view, "notes.txt")
	assert.Contains(t, view, b.keys.HelpText())
}

func TestBrowser_CursorNavigation(t *testing.T) {
	b := newBrowserFixture(t)
	require.Equal(t, 0, b.cursor)

	b = update(t, b, keyRune('j'))
	assert.Equal(t, 1, b.cursor)

	// Bottom of the list clamps.
	b = update(t, b, keyRune('j'))
	assert.Equal(t, 1, b.cursor)

	b = update(t, b, keyRune('k'))
	assert.Equal(t, 0, b.cursor)
}

func TestBrowser_DescendAndAscend(t *testing.T) {
	b := newBrowserFixture(t)

	// Entries are name-ordered, so "docs" is first.
	b = update(t, b, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "./docs", b.Current().Path())
	assert.Contains(t, b.View(), "guide.txt")

	b = update(t, b, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ".", b.Current().Path())
	assert.Equal(t, 0, b.cursor, "cursor lands on the folder we left")
}

func TestBrowser_EnterOnFileStaysPut(t *testing.T) {
	b := newBrowserFixture(t)

	b = update(t, b, keyRune('j')) // notes.txt
	b = update(t, b, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ".", b.Current().Path())
}

func TestBrowser_SelectedFileShowsSize(t *testing.T) {
	b := newBrowserFixture(t)

	b = update(t, b, keyRune('j')) // notes.txt, 1 byte
	assert.Contains(t, b.View(), "1 bytes")
}

func TestBrowser_QuitEmptiesView(t *testing.T) {
	b := newBrowserFixture(t)

	model, cmd := b.Update(keyRune('q'))
	require.NotNil(t, cmd, "quit must return tea.Quit")
	assert.Empty(t, model.(Browser).View())
}

func TestBrowser_RefreshObservesNewEntries(t *testing.T) {
	mem := filesystem.NewMemoryFileSystem()
	mem.SetDir("./docs")

	tree := fnode.New(
		fnode.WithFileSystem(mem),
		fnode.WithGetwd(func() (string, error) { return "/work", nil }),
		fnode.WithClock(func() time.Time { return time.Unix(1700000000, 0) }),
	)
	start, err := tree.Node(".")
	require.NoError(t, err)
	b := NewBrowser(tree, start)
	require.False(t, strings.Contains(b.View(), "late.txt"))

	mem.SetFile("./late.txt", []byte("x"))
	b = update(t, b, keyRune('r'))
	assert.Contains(t, b.View(), "late.txt")
}
