// Package checksum provides file content hashing with normalization support.
//
// Two digests are offered per content:
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash after normalizing line endings and trailing
//     whitespace (enables content identity across platforms and editors)
//
// # Normalization Strategy
//
//  1. Convert CRLF and bare CR line endings to LF
//  2. Strip trailing whitespace from every line
//  3. Drop trailing blank lines
//
// This makes the normalized digest stable for a file that was merely
// re-saved on another platform or by an editor that trims whitespace, which
// is what matters when deciding whether two entries carry the same content.
//
// # Example Usage
//
//	calculator := checksum.New()
//	rawChecksum := calculator.CalculateRaw(fileContent)
//	normalizedChecksum := calculator.CalculateNormalized(fileContent)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
