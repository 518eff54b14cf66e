package fnode

import "time"

// entry pairs a computed value-or-error with its creation time. It is the
// unit of attribute caching on a Node: stat, children and data each hold one.
type entry[T any] struct {
	value T
	err   error
	at    time.Time
}

// fresh reports whether the entry is still inside the freshness window.
func (e *entry[T]) fresh(now time.Time, maxAge time.Duration) bool {
	return now.Sub(e.at) < maxAge
}

// fetch is the read-through primitive behind every cached node attribute.
//
// A fresh value entry is returned unchanged without invoking generate.
// A nil, stale, or error-holding entry triggers generate; its outcome (value
// or error, whichever happened) is wrapped into a new entry stamped with the
// current time. Error outcomes are captured rather than propagated so the
// caller decides how to surface them.
//
// generate completes synchronously; the freshness window composes with the
// retry executor underneath it (outer staleness, inner transient-fault
// masking).
func fetch[T any](prev *entry[T], maxAge time.Duration, now func() time.Time, generate func() (T, error)) *entry[T] {
	if prev != nil && prev.err == nil && prev.fresh(now(), maxAge) {
		return prev
	}
	v, err := generate()
	return &entry[T]{value: v, err: err, at: now()}
}
