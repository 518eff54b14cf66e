package fnode

import "github.com/vvka-141/fnode/internal/metrics"

// node returns the Node registered for the canonical path, creating and
// registering it on first lookup. The registry guarantees referential
// identity: equality-based membership checks ("is this node among its
// parent's children") depend on it.
//
// The registry only grows. Growth is bounded by the number of distinct
// canonical paths touched during the tree's lifetime; call Reset to drop it.
func (t *Tree) node(canonical string) *Node {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n, ok := t.nodes[canonical]; ok {
		return n
	}
	n := &Node{tree: t, path: canonical}
	t.nodes[canonical] = n
	metrics.RegistryGrew()
	return n
}

// Reset drops every registered node. Nodes obtained before the reset stay
// usable but lose their identity guarantee against nodes obtained after.
// Intended for test isolation and long-running processes.
func (t *Tree) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	metrics.RegistryReset(len(t.nodes))
	t.nodes = make(map[string]*Node)
}

// Len returns the number of registered nodes.
func (t *Tree) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.nodes)
}
