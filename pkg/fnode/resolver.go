package fnode

import (
	"fmt"
	"os"
	"path"
	"reflect"
	"strings"
)

// Problem records one path argument the resolver could not interpret.
// Index is the argument's position in the flattened argument sequence.
type Problem struct {
	Index int
	Value interface{}
}

// String returns a human-readable description of the problem.
func (p Problem) String() string {
	return fmt.Sprintf("argument %d (%T) is not a usable path segment", p.Index, p.Value)
}

// pathKeys is the ordered key set probed on map arguments. The first key
// carrying a non-empty string wins.
var pathKeys = []string{
	"name", "path", "filePath", "filepath", "file_path",
	"fullPath", "fullpath", "full_path",
}

// Resolver turns heterogeneous call arguments into one canonical path
// string. The working directory is read once per resolution through getwd.
type Resolver struct {
	getwd func() (string, error)
}

// NewResolver creates a Resolver reading the working directory from the
// process environment.
func NewResolver() *Resolver {
	return &Resolver{getwd: os.Getwd}
}

// newResolverWithGetwd is the test seam for working-directory injection.
func newResolverWithGetwd(getwd func() (string, error)) *Resolver {
	return &Resolver{getwd: getwd}
}

// Resolve assembles args into a canonical path and reports the arguments it
// had to drop. It never fails: propagation of problems is the caller's mode
// decision.
//
// Argument handling:
//   - nil is skipped
//   - strings and numbers become path segments
//   - slices are flattened in place (breadth-preserving, not recursed)
//   - values exposing Path() or Name(), and maps carrying one of the known
//     path keys, contribute that string
//   - anything else is recorded as a Problem
//
// A call shaped like an iteration callback, (value, index, slice) where
// slice[index] equals value, contributes only value. This lets the same
// resolver serve both as a direct path builder and as a per-element
// callback.
func (r *Resolver) Resolve(args ...interface{}) (string, []Problem) {
	if isIterationCallback(args) {
		args = args[:1]
	}

	var (
		segments []string
		problems []Problem
	)

	// Work through a queue so slice arguments can splice their elements in
	// at the current position instead of being recursed eagerly.
	work := make([]interface{}, len(args))
	copy(work, args)

	for i := 0; i < len(work); i++ {
		arg := work[i]
		if arg == nil {
			continue
		}

		if elems, ok := sliceElements(arg); ok {
			rest := make([]interface{}, 0, len(work)-i-1+len(elems))
			rest = append(rest, elems...)
			rest = append(rest, work[i+1:]...)
			work = append(work[:i+1], rest...)
			continue
		}

		seg, ok := segmentFor(arg)
		if !ok {
			problems = append(problems, Problem{Index: i, Value: arg})
			continue
		}
		if seg == "" {
			// An empty leading segment anchors the path at the working
			// directory. Later empties collapse away during normalization.
			if len(segments) == 0 {
				segments = append(segments, ".")
			}
			continue
		}
		segments = append(segments, seg)
	}

	wd := ""
	if cwd, err := r.getwd(); err == nil {
		wd = normalize(cwd)
	}

	return canonicalize(strings.Join(segments, "/"), wd), problems
}

// isIterationCallback recognizes a (value, index, slice) argument shape.
func isIterationCallback(args []interface{}) bool {
	if len(args) != 3 {
		return false
	}
	idx, ok := intValue(args[1])
	if !ok || idx < 0 {
		return false
	}
	rv := reflect.ValueOf(args[2])
	if !rv.IsValid() || rv.Kind() != reflect.Slice || int(idx) >= rv.Len() {
		return false
	}
	return reflect.DeepEqual(rv.Index(int(idx)).Interface(), args[0])
}

// sliceElements unpacks slice arguments into a generic element list.
func sliceElements(arg interface{}) ([]interface{}, bool) {
	switch v := arg.(type) {
	case []interface{}:
		return v, true
	case []string:
		elems := make([]interface{}, len(v))
		for i, s := range v {
			elems[i] = s
		}
		return elems, true
	}
	return nil, false
}

// segmentFor classifies a single argument into a path segment.
func segmentFor(arg interface{}) (string, bool) {
	switch v := arg.(type) {
	case string:
		return v, true
	case interface{ Path() string }:
		if p := v.Path(); p != "" {
			return p, true
		}
	case interface{ Name() string }:
		if n := v.Name(); n != "" {
			return n, true
		}
	case map[string]interface{}:
		for _, key := range pathKeys {
			if s, ok := v[key].(string); ok && s != "" {
				return s, true
			}
		}
	case map[string]string:
		for _, key := range pathKeys {
			if s := v[key]; s != "" {
				return s, true
			}
		}
	}
	if n, ok := intValue(arg); ok {
		return fmt.Sprintf("%d", n), true
	}
	if f, ok := floatValue(arg); ok {
		return fmt.Sprintf("%v", f), true
	}
	return "", false
}

func intValue(arg interface{}) (int64, bool) {
	switch v := arg.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	}
	return 0, false
}

func floatValue(arg interface{}) (float64, bool) {
	switch v := arg.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// normalize applies the syntactic canonicalization rules: forward slashes,
// no repeated slashes, no trailing slash, no query markers.
func normalize(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

// canonicalize resolves a normalized path against the working directory and
// re-expresses it relative to wd when it falls underneath. The result is
// idempotent under repeated canonicalization.
func canonicalize(p, wd string) string {
	p = normalize(p)
	if p == "" {
		p = "."
	}

	var abs string
	if isAbsPath(p) {
		abs = path.Clean(p)
	} else if wd == "" {
		abs = path.Clean(p)
	} else {
		abs = path.Clean(wd + "/" + p)
	}

	if wd != "" {
		if abs == wd {
			return "."
		}
		if strings.HasPrefix(abs, wd+"/") {
			return "./" + abs[len(wd)+1:]
		}
	}
	return abs
}

// isAbsPath reports whether p is absolute in slash form, including
// drive-letter prefixes.
func isAbsPath(p string) bool {
	if strings.HasPrefix(p, "/") {
		return true
	}
	if len(p) >= 2 && p[1] == ':' {
		c := p[0]
		return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	}
	return false
}
