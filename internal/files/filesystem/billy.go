package filesystem

import (
	"io/fs"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// BillyFileSystem adapts a go-billy filesystem to the node layer's OS-call
// table. It gives the library a second real backend: any billy
// implementation (memfs, osfs, a chroot) becomes usable as a node source.
type BillyFileSystem struct {
	fs billy.Filesystem
}

// NewBillyFileSystem wraps an existing billy filesystem.
func NewBillyFileSystem(bfs billy.Filesystem) *BillyFileSystem {
	return &BillyFileSystem{fs: bfs}
}

func (p *BillyFileSystem) Stat(path string) (fs.FileInfo, error) {
	return p.fs.Stat(path)
}

func (p *BillyFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	infos, err := p.fs.ReadDir(path)
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = fs.FileInfoToDirEntry(info)
	}
	return entries, nil
}

func (p *BillyFileSystem) ReadFile(path string) ([]byte, error) {
	return util.ReadFile(p.fs, path)
}

func (p *BillyFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return util.WriteFile(p.fs, path, data, perm)
}

func (p *BillyFileSystem) AppendFile(path string, data []byte, perm fs.FileMode) error {
	f, err := p.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (p *BillyFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return p.fs.MkdirAll(path, perm)
}
