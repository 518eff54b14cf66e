package fnode

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/vvka-141/fnode/internal/metrics"
	"github.com/vvka-141/fnode/internal/retry"
)

// Node is the memoized object representing one filesystem entry. It is
// identified by exactly one canonical path and obtained through
// Tree.Node; constructing one directly bypasses the identity guarantee.
//
// Metadata reads (Stat, Kind, Children, Read) are lazily computed and
// cached for the tree's freshness window; every successful mutation
// (Write, Append, EnsureDir) invalidates all of the node's cached
// attributes before returning, never a subset.
//
// Attribute caches are not internally serialized: a single logical owner is
// assumed per path. See the package documentation.
type Node struct {
	tree *Tree
	path string

	stat     *entry[fs.FileInfo]
	children *entry[[]*Node]
	data     *entry[[]byte]
	parent   *Node
}

// Filter decides whether a child node is kept by Children. Filters run in
// listing order, one at a time.
type Filter func(ctx context.Context, n *Node) (bool, error)

// Path returns the node's canonical path.
func (n *Node) Path() string {
	return n.path
}

// Name returns the last segment of the node's path.
func (n *Node) Name() string {
	return path.Base(n.path)
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return n.path
}

// Invalidate drops every cached attribute so the next read observes the
// filesystem again. The parent relation is a path property and survives.
func (n *Node) Invalidate() {
	n.stat = nil
	n.children = nil
	n.data = nil
}

// refreshStat runs the stat table call through the retry executor and the
// attribute cache.
func (n *Node) refreshStat(ctx context.Context) *entry[fs.FileInfo] {
	prev := n.stat
	e := fetch(prev, n.tree.maxAge, n.tree.now, func() (fs.FileInfo, error) {
		res := retry.DoValue(n.tree.exec, ctx, fs.FileInfo(nil), func(ctx context.Context) (fs.FileInfo, error) {
			return n.tree.fsys.Stat(n.path)
		})
		return res.Data, res.Err
	})
	if e == prev {
		metrics.CacheHit("stat")
	} else {
		metrics.CacheMiss("stat")
	}
	n.stat = e
	return e
}

// Stat returns the entry's metadata, or nil when the entry is missing or
// could not be examined. "Does not exist" and "stat failed" are collapsed
// into the same observable outcome at this layer.
func (n *Node) Stat(ctx context.Context) fs.FileInfo {
	e := n.refreshStat(ctx)
	if e.err != nil {
		return nil
	}
	return e.value
}

// Kind reports whether the entry is a file, a folder, or absent.
func (n *Node) Kind(ctx context.Context) Kind {
	info := n.Stat(ctx)
	switch {
	case info == nil:
		return KindAbsent
	case info.IsDir():
		return KindFolder
	default:
		return KindFile
	}
}

// cachedKind reports the kind recorded by a still-fresh stat entry, without
// touching the filesystem. known is false when nothing fresh is cached.
func (n *Node) cachedKind() (kind Kind, known bool) {
	e := n.stat
	if e == nil || e.err != nil || !e.fresh(n.tree.now(), n.tree.maxAge) {
		return KindAbsent, false
	}
	if e.value == nil {
		return KindAbsent, true
	}
	if e.value.IsDir() {
		return KindFolder, true
	}
	return KindFile, true
}

// Exists reports whether the entry is present.
func (n *Node) Exists(ctx context.Context) bool {
	return n.Stat(ctx) != nil
}

// Size returns the entry's size in bytes, or 0 when absent.
func (n *Node) Size(ctx context.Context) int64 {
	info := n.Stat(ctx)
	if info == nil {
		return 0
	}
	return info.Size()
}

// Parent returns the node for the containing directory, memoized after the
// first computation. The parent relation is a registry lookup, not
// ownership. Paths without a representable parent (filesystem root, bare
// drive letters) return ErrNoParent.
func (n *Node) Parent() (*Node, error) {
	if n.parent != nil {
		return n.parent, nil
	}
	pp, err := n.tree.parentPathOf(n.path)
	if err != nil {
		return nil, err
	}
	n.parent = n.tree.node(pp)
	return n.parent, nil
}

// parentPathOf computes the canonical parent path. Deep paths strip their
// last segment textually; paths of two or fewer segments go through
// absolute-path directory resolution so root- and drive-relative inputs
// come out right.
func (t *Tree) parentPathOf(p string) (string, error) {
	if p == "/" || isDriveRoot(p) {
		return "", fmt.Errorf("%q: %w", p, ErrNoParent)
	}

	if body, ok := strings.CutPrefix(p, "./"); ok {
		if segs := strings.Split(body, "/"); len(segs) > 2 {
			return "./" + strings.Join(segs[:len(segs)-1], "/"), nil
		}
	} else if strings.HasPrefix(p, "/") {
		if segs := strings.Split(strings.TrimPrefix(p, "/"), "/"); len(segs) > 2 {
			return p[:strings.LastIndex(p, "/")], nil
		}
	}

	wd := ""
	if cwd, err := t.resolver.getwd(); err == nil {
		wd = normalize(cwd)
	}
	abs := p
	if !isAbsPath(p) {
		abs = path.Clean(wd + "/" + strings.TrimPrefix(p, "./"))
	}
	dir := path.Dir(abs)
	if dir == abs {
		return "", fmt.Errorf("%q: %w", p, ErrNoParent)
	}
	return canonicalize(dir, wd), nil
}

func isDriveRoot(p string) bool {
	if !isAbsPath(p) || strings.HasPrefix(p, "/") {
		return false
	}
	return p == p[:2] || p == p[:2]+"/"
}

// joinChild appends one name to a canonical path, staying canonical.
func joinChild(p, name string) string {
	if strings.HasSuffix(p, "/") {
		return p + name
	}
	return p + "/" + name
}

// Join constructs the node for a path underneath this one without
// requiring anything to exist. Arguments take the same shapes Tree.Node
// accepts.
func (n *Node) Join(args ...interface{}) (*Node, error) {
	all := make([]interface{}, 0, len(args)+1)
	all = append(all, n.path)
	all = append(all, args...)
	return n.tree.Node(all...)
}

// Child constructs the node for the named direct child without touching
// the filesystem. It refuses to descend below a node a fresh stat has
// confirmed to be a file, and rejects names containing a separator.
func (n *Node) Child(name string) (*Node, error) {
	if name == "" || strings.ContainsAny(name, "/\\") {
		return nil, fmt.Errorf("child name %q: %w", name, ErrInvalidArgument)
	}
	if kind, known := n.cachedKind(); known && kind == KindFile {
		return nil, fmt.Errorf("descend below file %s: %w", n.path, ErrNotFolder)
	}
	return n.tree.node(joinChild(n.path, name)), nil
}

// EnsureDir makes the node a directory, creating it and all missing
// ancestors in one recursive call. Idempotent: an existing folder is a
// no-op that issues no OS mutation. An existing file at the path is a
// structural conflict.
func (n *Node) EnsureDir(ctx context.Context) error {
	switch n.Kind(ctx) {
	case KindFolder:
		return nil
	case KindFile:
		return fmt.Errorf("create directory over file %s: %w", n.path, ErrConflict)
	}
	err := n.tree.exec.Do(ctx, func(ctx context.Context) error {
		return n.tree.fsys.MkdirAll(n.path, 0o755)
	})
	if err != nil {
		return fmt.Errorf("create directory %s: %w", n.path, err)
	}
	n.Invalidate()
	n.invalidateParentChildren()
	return nil
}

// EnsureSubdir makes name a directory under this node and returns its
// node. name must be a single path segment. Creating under a file, or over
// a child that is a file, is a structural conflict; an existing child
// folder is returned as-is.
func (n *Node) EnsureSubdir(ctx context.Context, name string) (*Node, error) {
	if name == "" || strings.ContainsAny(name, "/\\") {
		return nil, fmt.Errorf("subdirectory name %q: %w", name, ErrInvalidArgument)
	}
	if n.Kind(ctx) == KindFile {
		return nil, fmt.Errorf("create subdirectory under file %s: %w", n.path, ErrConflict)
	}
	child := n.tree.node(joinChild(n.path, name))
	switch child.Kind(ctx) {
	case KindFolder:
		return child, nil
	case KindFile:
		return nil, fmt.Errorf("create directory over file %s: %w", child.path, ErrConflict)
	}
	if err := child.EnsureDir(ctx); err != nil {
		return nil, err
	}
	return child, nil
}

// refreshChildren lists the directory through the retry executor and the
// attribute cache, mapping every entry through the registry so identity is
// shared with nodes already referencing those paths.
func (n *Node) refreshChildren(ctx context.Context) *entry[[]*Node] {
	prev := n.children
	e := fetch(prev, n.tree.maxAge, n.tree.now, func() ([]*Node, error) {
		res := retry.DoValue(n.tree.exec, ctx, []fs.DirEntry(nil), func(ctx context.Context) ([]fs.DirEntry, error) {
			return n.tree.fsys.ReadDir(n.path)
		})
		if res.Err != nil {
			return nil, res.Err
		}
		kids := make([]*Node, 0, len(res.Data))
		for _, de := range res.Data {
			kids = append(kids, n.tree.node(joinChild(n.path, de.Name())))
		}
		return kids, nil
	})
	if e == prev {
		metrics.CacheHit("children")
	} else {
		metrics.CacheMiss("children")
	}
	n.children = e
	return e
}

// Children returns the nodes for the directory's entries, optionally kept
// by filter. Non-folder targets yield an empty list, or ErrNotFolder under
// strict mode. The unfiltered listing is cached; the filter runs per call.
func (n *Node) Children(ctx context.Context, filter Filter) ([]*Node, error) {
	if n.Kind(ctx) != KindFolder {
		if n.tree.mode == ModeStrict {
			return nil, fmt.Errorf("list children of %s: %w", n.path, ErrNotFolder)
		}
		return nil, nil
	}
	e := n.refreshChildren(ctx)
	if e.err != nil {
		if n.tree.mode == ModeStrict {
			return nil, fmt.Errorf("list children of %s: %w", n.path, e.err)
		}
		return nil, nil
	}
	if filter == nil {
		out := make([]*Node, len(e.value))
		copy(out, e.value)
		return out, nil
	}
	var out []*Node
	for _, kid := range e.value {
		keep, err := filter(ctx, kid)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, kid)
		}
	}
	return out, nil
}

// Files returns the children that are files.
func (n *Node) Files(ctx context.Context) ([]*Node, error) {
	return n.Children(ctx, func(ctx context.Context, c *Node) (bool, error) {
		return c.Kind(ctx) == KindFile, nil
	})
}

// Dirs returns the children that are folders.
func (n *Node) Dirs(ctx context.Context) ([]*Node, error) {
	return n.Children(ctx, func(ctx context.Context, c *Node) (bool, error) {
		return c.Kind(ctx) == KindFolder, nil
	})
}

// Siblings returns the parent's children excluding this node. An existing
// node missing from its own parent's listing breaks the identity
// invariant; strict mode raises ErrInvariant, other modes log a warning.
func (n *Node) Siblings(ctx context.Context) ([]*Node, error) {
	parent, err := n.Parent()
	if err != nil {
		return nil, err
	}
	kids, err := parent.Children(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]*Node, 0, len(kids))
	found := false
	for _, kid := range kids {
		if kid == n {
			found = true
			continue
		}
		out = append(out, kid)
	}
	if !found && n.Exists(ctx) {
		if n.tree.mode == ModeStrict {
			return nil, fmt.Errorf("%s missing from parent listing: %w", n.path, ErrInvariant)
		}
		n.tree.log.Warn("%s exists but is missing from its parent's listing", n.path)
	}
	return out, nil
}

// refreshData reads the file through the retry executor and the attribute
// cache.
func (n *Node) refreshData(ctx context.Context) *entry[[]byte] {
	prev := n.data
	e := fetch(prev, n.tree.maxAge, n.tree.now, func() ([]byte, error) {
		res := retry.DoValue(n.tree.exec, ctx, []byte(nil), func(ctx context.Context) ([]byte, error) {
			return n.tree.fsys.ReadFile(n.path)
		})
		return res.Data, res.Err
	})
	if e == prev {
		metrics.CacheHit("data")
	} else {
		metrics.CacheMiss("data")
	}
	n.data = e
	return e
}

// Read returns the file's content. Non-file targets yield nil, or
// ErrNotFile under strict mode; a read that still fails after the retry
// yields nil rather than an error.
func (n *Node) Read(ctx context.Context) ([]byte, error) {
	if n.Kind(ctx) != KindFile {
		if n.tree.mode == ModeStrict {
			return nil, fmt.Errorf("read %s: %w", n.path, ErrNotFile)
		}
		return nil, nil
	}
	e := n.refreshData(ctx)
	if e.err != nil {
		return nil, nil
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

// Write replaces the file's content. With overwrite false the target must
// not already be an existing file, preventing accidental clobbering;
// writing onto a folder is always a structural conflict. On success every
// cached attribute of the node is invalidated, as is the parent's cached
// children list.
func (n *Node) Write(ctx context.Context, data []byte, overwrite bool) error {
	switch n.Kind(ctx) {
	case KindFolder:
		return fmt.Errorf("write onto folder %s: %w", n.path, ErrConflict)
	case KindFile:
		if !overwrite {
			return fmt.Errorf("file %s already exists: %w", n.path, ErrConflict)
		}
	}
	err := n.tree.exec.Do(ctx, func(ctx context.Context) error {
		return n.tree.fsys.WriteFile(n.path, data, 0o644)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", n.path, err)
	}
	n.Invalidate()
	n.invalidateParentChildren()
	return nil
}

// Append appends to the file, creating it when absent. With mustExist set
// the target must already be an existing file. Appending onto a folder is
// a structural conflict. Invalidation matches Write.
func (n *Node) Append(ctx context.Context, data []byte, mustExist bool) error {
	switch n.Kind(ctx) {
	case KindFolder:
		return fmt.Errorf("append onto folder %s: %w", n.path, ErrConflict)
	case KindAbsent:
		if mustExist {
			return fmt.Errorf("append target %s does not exist: %w", n.path, ErrConflict)
		}
	}
	err := n.tree.exec.Do(ctx, func(ctx context.Context) error {
		return n.tree.fsys.AppendFile(n.path, data, 0o644)
	})
	if err != nil {
		return fmt.Errorf("append %s: %w", n.path, err)
	}
	n.Invalidate()
	n.invalidateParentChildren()
	return nil
}

// Overwrite replaces the content of an existing file. A target that does
// not currently exist as a file is a structural conflict.
func (n *Node) Overwrite(ctx context.Context, data []byte) error {
	if n.Kind(ctx) != KindFile {
		return fmt.Errorf("overwrite target %s is not an existing file: %w", n.path, ErrConflict)
	}
	return n.Write(ctx, data, true)
}

// invalidateParentChildren drops the parent's cached children list after a
// mutation that may have created this entry.
func (n *Node) invalidateParentChildren() {
	parent, err := n.Parent()
	if err != nil {
		return
	}
	parent.children = nil
}
