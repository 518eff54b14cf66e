package filesystem

import (
	"io/fs"
	"path"
	"sort"
	"sync"
	"syscall"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries.
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryEntry is one file or directory in the in-memory tree.
type memoryEntry struct {
	content []byte
	isDir   bool
	modTime time.Time
}

func (e *memoryEntry) info(name string) fs.FileInfo {
	mode := fs.FileMode(0644)
	if e.isDir {
		mode = 0755 | fs.ModeDir
	}
	return &memoryFileInfo{
		name:    name,
		size:    int64(len(e.content)),
		mode:    mode,
		modTime: e.modTime,
		isDir:   e.isDir,
	}
}

// fault is one queued error for fault injection.
type fault struct {
	op   string
	path string
	err  error
}

// MemoryFileSystem implements the node layer's OS-call table in memory.
// Paths are opaque slash-separated strings; parents are derived with
// path.Dir. Safe for concurrent use.
//
// FailOnce queues a single error for a given operation and path, which lets
// tests exercise the transient-retry path without a real race.
type MemoryFileSystem struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	faults  []fault
}

// NewMemoryFileSystem creates an empty in-memory filesystem containing only
// the "." root directory.
func NewMemoryFileSystem() *MemoryFileSystem {
	m := &MemoryFileSystem{entries: make(map[string]*memoryEntry)}
	m.entries["."] = &memoryEntry{isDir: true, modTime: time.Now()}
	return m
}

// SetFile creates or replaces a file, creating missing ancestor directories.
func (m *MemoryFileSystem) SetFile(p string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureDirLocked(path.Dir(p))
	m.entries[p] = &memoryEntry{content: content, modTime: time.Now()}
}

// SetDir creates a directory and its missing ancestors.
func (m *MemoryFileSystem) SetDir(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureDirLocked(p)
}

// FailOnce queues err to be returned by the next call of op ("stat",
// "readdir", "readfile", "writefile", "appendfile", "mkdirall") on p.
func (m *MemoryFileSystem) FailOnce(op, p string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faults = append(m.faults, fault{op: op, path: p, err: err})
}

// Calls returns the number of entries currently stored (root included).
func (m *MemoryFileSystem) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *MemoryFileSystem) ensureDirLocked(p string) {
	for {
		if e, ok := m.entries[p]; ok && e.isDir {
			break
		}
		m.entries[p] = &memoryEntry{isDir: true, modTime: time.Now()}
		parent := path.Dir(p)
		if parent == p {
			break
		}
		p = parent
	}
}

func (m *MemoryFileSystem) takeFaultLocked(op, p string) error {
	for i, f := range m.faults {
		if f.op == op && f.path == p {
			m.faults = append(m.faults[:i], m.faults[i+1:]...)
			return f.err
		}
	}
	return nil
}

func (m *MemoryFileSystem) Stat(p string) (fs.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFaultLocked("stat", p); err != nil {
		return nil, err
	}
	e, ok := m.entries[p]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
	}
	return e.info(path.Base(p)), nil
}

// memoryDirEntry implements fs.DirEntry over a memoryEntry.
type memoryDirEntry struct {
	name  string
	entry *memoryEntry
}

func (d *memoryDirEntry) Name() string               { return d.name }
func (d *memoryDirEntry) IsDir() bool                { return d.entry.isDir }
func (d *memoryDirEntry) Info() (fs.FileInfo, error) { return d.entry.info(d.name), nil }
func (d *memoryDirEntry) Type() fs.FileMode {
	if d.entry.isDir {
		return fs.ModeDir
	}
	return 0
}

func (m *MemoryFileSystem) ReadDir(p string) ([]fs.DirEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFaultLocked("readdir", p); err != nil {
		return nil, err
	}
	dir, ok := m.entries[p]
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: p, Err: fs.ErrNotExist}
	}
	if !dir.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: p, Err: syscall.ENOTDIR}
	}

	var out []fs.DirEntry
	for candidate, e := range m.entries {
		if candidate != p && path.Dir(candidate) == p {
			out = append(out, &memoryDirEntry{name: path.Base(candidate), entry: e})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

func (m *MemoryFileSystem) ReadFile(p string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFaultLocked("readfile", p); err != nil {
		return nil, err
	}
	e, ok := m.entries[p]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	if e.isDir {
		return nil, &fs.PathError{Op: "read", Path: p, Err: syscall.EISDIR}
	}
	out := make([]byte, len(e.content))
	copy(out, e.content)
	return out, nil
}

func (m *MemoryFileSystem) WriteFile(p string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFaultLocked("writefile", p); err != nil {
		return err
	}
	if e, ok := m.entries[p]; ok && e.isDir {
		return &fs.PathError{Op: "open", Path: p, Err: syscall.EISDIR}
	}
	if parent, ok := m.entries[path.Dir(p)]; !ok || !parent.isDir {
		return &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	content := make([]byte, len(data))
	copy(content, data)
	m.entries[p] = &memoryEntry{content: content, modTime: time.Now()}
	return nil
}

func (m *MemoryFileSystem) AppendFile(p string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFaultLocked("appendfile", p); err != nil {
		return err
	}
	if e, ok := m.entries[p]; ok {
		if e.isDir {
			return &fs.PathError{Op: "open", Path: p, Err: syscall.EISDIR}
		}
		e.content = append(e.content, data...)
		e.modTime = time.Now()
		return nil
	}
	if parent, ok := m.entries[path.Dir(p)]; !ok || !parent.isDir {
		return &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	content := make([]byte, len(data))
	copy(content, data)
	m.entries[p] = &memoryEntry{content: content, modTime: time.Now()}
	return nil
}

func (m *MemoryFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFaultLocked("mkdirall", p); err != nil {
		return err
	}
	// Walk up from p; any non-directory ancestor blocks the create.
	for probe := p; ; {
		if e, ok := m.entries[probe]; ok && !e.isDir {
			return &fs.PathError{Op: "mkdir", Path: probe, Err: syscall.ENOTDIR}
		}
		parent := path.Dir(probe)
		if parent == probe {
			break
		}
		probe = parent
	}
	m.ensureDirLocked(p)
	return nil
}
