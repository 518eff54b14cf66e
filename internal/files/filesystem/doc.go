// Package filesystem provides the OS-call tables consumed by the node
// layer.
//
// Each implementation is a statically declared set of filesystem
// operations (stat, list, read, write, append, recursive mkdir) injected
// into a tree at construction, enabling testability without touching a real
// disk.
//
// Implementations:
//   - OSFileSystem: production implementation using the OS filesystem
//   - MemoryFileSystem: in-memory implementation for testing, with fault
//     injection for exercising the retry path
//   - BillyFileSystem: adapter over any go-billy filesystem (e.g. memfs)
package filesystem
