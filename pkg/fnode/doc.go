// Package fnode provides a cached, object-oriented view of local filesystem
// entries.
//
// A Tree resolves heterogeneous path arguments into one canonical path,
// hands out exactly one *Node per canonical path, and lets each Node answer
// metadata questions (existence, kind, size, children) from short-lived
// attribute caches. Mutating operations (write, append, mkdir) retry once on
// transient OS errors and invalidate every cached attribute of the node on
// success.
//
// # Example Usage
//
//	tree := fnode.New(fnode.WithMode(fnode.ModeStrict))
//
//	n, err := tree.Node("projects", "demo", "main.go")
//	if err != nil {
//	    return err
//	}
//	if n.Exists(ctx) {
//	    data, _ := n.Read(ctx)
//	    ...
//	}
//
// # Identity
//
// Two lookups of the same canonical path return the same *Node pointer for
// the lifetime of the Tree. Equality-based membership ("is this node among
// its parent's children") relies on that guarantee. The registry only grows;
// call Tree.Reset to drop it (test isolation, long-running processes).
//
// # Concurrency
//
// The node registry is safe for concurrent use. Attribute caches on an
// individual Node are not internally serialized: the design assumes a single
// logical owner issues operations against a given path at a time. Serialize
// externally if concurrent mutation of one path is required.
package fnode
