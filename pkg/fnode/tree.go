package fnode

import (
	"fmt"
	"sync"
	"time"

	"github.com/vvka-141/fnode/internal/files/filesystem"
	"github.com/vvka-141/fnode/internal/logging"
	"github.com/vvka-141/fnode/internal/metrics"
	"github.com/vvka-141/fnode/internal/retry"
)

// Tree is the entry point of the library: it resolves path arguments,
// owns the node registry, and carries the configuration every node consults
// (mode, freshness window, OS-call table, logger). Multiple independently
// configured Trees can coexist; there is no ambient global state.
type Tree struct {
	mode     Mode
	maxAge   time.Duration
	fsys     FileSystem
	log      Logger
	exec     *retry.Executor
	now      func() time.Time
	resolver *Resolver

	mu    sync.Mutex
	nodes map[string]*Node
}

// Option configures a Tree at construction.
type Option func(*Tree)

// WithMode sets the error-handling mode (default ModeNormal).
func WithMode(m Mode) Option {
	return func(t *Tree) { t.mode = m }
}

// WithMaxAge sets the freshness window for cached node attributes
// (default DefaultMaxAge).
func WithMaxAge(d time.Duration) Option {
	return func(t *Tree) { t.maxAge = d }
}

// WithFileSystem injects the OS-call table (default: the real filesystem).
func WithFileSystem(fsys FileSystem) Option {
	return func(t *Tree) { t.fsys = fsys }
}

// WithLogger injects the logger (default: discard).
func WithLogger(log Logger) Option {
	return func(t *Tree) { t.log = log }
}

// WithGetwd injects the working-directory source used for path
// canonicalization (default os.Getwd). Tests use this to pin the working
// directory.
func WithGetwd(getwd func() (string, error)) Option {
	return func(t *Tree) { t.resolver = newResolverWithGetwd(getwd) }
}

// WithClock injects the time source used for cache freshness
// (default time.Now). Tests use this to step through the freshness window
// deterministically.
func WithClock(now func() time.Time) Option {
	return func(t *Tree) { t.now = now }
}

// New creates a Tree. Without options it operates in normal mode against
// the real filesystem with a one-second attribute freshness window.
func New(opts ...Option) *Tree {
	t := &Tree{
		mode:     ModeNormal,
		maxAge:   DefaultMaxAge,
		fsys:     filesystem.NewOSFileSystem(),
		log:      logging.NewNullLogger(),
		now:      time.Now,
		resolver: NewResolver(),
		nodes:    make(map[string]*Node),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.exec = retry.NewExecutor(retry.NewOSErrorClassifier(), retry.NewUniformBackoff()).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			metrics.RetryAttempt()
			t.log.Verbose("transient filesystem error, retrying in %v: %v", delay, err)
		})
	return t
}

// Mode returns the tree's error-handling mode.
func (t *Tree) Mode() Mode {
	return t.mode
}

// Node resolves args into a canonical path and returns the node bound to
// it. Repeated calls with arguments resolving to the same canonical path
// return the same *Node.
//
// Arguments the resolver cannot interpret are errors under strict and
// normal modes; forgiving mode logs them as warnings and drops them.
func (t *Tree) Node(args ...interface{}) (*Node, error) {
	path, problems := t.resolver.Resolve(args...)
	if len(problems) > 0 {
		if t.mode != ModeForgiving {
			return nil, fmt.Errorf("%s: %w", problems[0], ErrInvalidArgument)
		}
		for _, p := range problems {
			t.log.Warn("%s", p)
		}
	}
	return t.node(path), nil
}
