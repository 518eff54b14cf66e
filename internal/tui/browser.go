package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/fnode/pkg/fnode"
)

// Browser is an interactive directory walker over a node tree. Navigation
// reuses the tree's attribute caches, so revisiting a folder inside the
// freshness window does not touch the filesystem again.
type Browser struct {
	tree    *fnode.Tree
	current *fnode.Node
	entries []*fnode.Node
	cursor  int
	loadErr error
	keys    KeyMap
	width   int
	height  int
	done    bool
}

// NewBrowser creates a browser rooted at start.
func NewBrowser(tree *fnode.Tree, start *fnode.Node) Browser {
	b := Browser{
		tree:    tree,
		current: start,
		keys:    DefaultKeyMap(),
		width:   80,
		height:  24,
	}
	b.reload()
	return b
}

// reload refreshes the entry list for the current node.
func (b *Browser) reload() {
	ctx := context.Background()
	b.entries, b.loadErr = b.current.Children(ctx, nil)
	if b.cursor >= len(b.entries) {
		b.cursor = 0
	}
}

// Init implements tea.Model.
func (b Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Up):
			if b.cursor > 0 {
				b.cursor--
			}
		case key.Matches(msg, b.keys.Down):
			if b.cursor < len(b.entries)-1 {
				b.cursor++
			}
		case key.Matches(msg, b.keys.Enter):
			b.descend()
		case key.Matches(msg, b.keys.Back):
			b.ascend()
		case key.Matches(msg, b.keys.Refresh):
			b.current.Invalidate()
			b.reload()
		case key.Matches(msg, b.keys.Quit):
			b.done = true
			return b, tea.Quit
		}
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
	}
	return b, nil
}

// descend enters the folder under the cursor. Files are ignored.
func (b *Browser) descend() {
	if b.cursor >= len(b.entries) {
		return
	}
	target := b.entries[b.cursor]
	if target.Kind(context.Background()) != fnode.KindFolder {
		return
	}
	b.current = target
	b.cursor = 0
	b.reload()
}

// ascend moves to the parent folder. At the filesystem root it stays put.
func (b *Browser) ascend() {
	parent, err := b.current.Parent()
	if err != nil {
		return
	}
	leaving := b.current
	b.current = parent
	b.reload()
	// Land the cursor on the folder we just left.
	for i, e := range b.entries {
		if e == leaving {
			b.cursor = i
			break
		}
	}
}

// View implements tea.Model.
func (b Browser) View() string {
	if b.done {
		return ""
	}

	ctx := context.Background()
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render(b.current.Path()))
	sb.WriteString("\n\n")

	if b.loadErr != nil {
		sb.WriteString(ErrorStyle.Render(SymbolCross + " " + b.loadErr.Error()))
		sb.WriteString("\n")
	}

	if len(b.entries) == 0 && b.loadErr == nil {
		sb.WriteString(SubtitleStyle.Render("(empty)"))
		sb.WriteString("\n")
	}

	for i, e := range b.entries {
		symbol := SymbolFile
		style := FileStyle
		if e.Kind(ctx) == fnode.KindFolder {
			symbol = SymbolFolder
			style = FolderStyle
		}

		line := symbol + " " + e.Name()
		if i == b.cursor {
			line = SelectedStyle.Render("> " + line)
			if e.Kind(ctx) == fnode.KindFile {
				line += DetailStyle.Render(fmt.Sprintf("%d bytes", e.Size(ctx)))
			}
		} else {
			line = "  " + style.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString(HelpStyle.Render(b.keys.HelpText()))
	return sb.String()
}

// Current returns the folder the browser is showing.
func (b Browser) Current() *fnode.Node {
	return b.current
}

// RunBrowser runs the interactive browser until the user quits.
func RunBrowser(tree *fnode.Tree, start *fnode.Node) error {
	p := tea.NewProgram(NewBrowser(tree, start), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
