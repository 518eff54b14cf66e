// Package logging provides concrete implementations of the fnode.Logger
// interface.
//
// Available implementations:
//   - ConsoleLogger: writes formatted messages to stderr with thread-safe
//     output
//   - NullLogger: discards all messages (the library default)
//
// All logger implementations are safe for concurrent use by multiple
// goroutines.
package logging
