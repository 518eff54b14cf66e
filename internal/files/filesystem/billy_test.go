package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillyFileSystem_WriteStatReadOverMemfs(t *testing.T) {
	b := NewBillyFileSystem(memfs.New())

	require.NoError(t, b.MkdirAll("dir/sub", 0755))
	require.NoError(t, b.WriteFile("dir/file.txt", []byte("content"), 0644))

	info, err := b.Stat("dir/file.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(7), info.Size())
	assert.False(t, info.IsDir())

	data, err := b.ReadFile("dir/file.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)
}

func TestBillyFileSystem_ReadDir(t *testing.T) {
	b := NewBillyFileSystem(memfs.New())
	require.NoError(t, b.WriteFile("dir/a.txt", nil, 0644))
	require.NoError(t, b.MkdirAll("dir/sub", 0755))

	entries, err := b.ReadDir("dir")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	names := []string{entries[0].Name(), entries[1].Name()}
	assert.Contains(t, names, "a.txt")
	assert.Contains(t, names, "sub")
}

func TestBillyFileSystem_AppendCreatesAndExtends(t *testing.T) {
	b := NewBillyFileSystem(memfs.New())

	require.NoError(t, b.AppendFile("log.txt", []byte("one"), 0644))
	require.NoError(t, b.AppendFile("log.txt", []byte(" two"), 0644))

	data, err := b.ReadFile("log.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("one two"), data)
}

func TestBillyFileSystem_StatMissing(t *testing.T) {
	b := NewBillyFileSystem(memfs.New())

	_, err := b.Stat("missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
