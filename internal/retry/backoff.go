package retry

import (
	"math/rand"
	"time"
)

// BackoffStrategy calculates the delay before the next retry attempt.
type BackoffStrategy interface {
	// NextDelay returns the duration to wait before the next attempt.
	// attempt is zero-indexed (0 = first retry).
	NextDelay(attempt int) time.Duration

	// MaxAttempts returns the maximum number of retry attempts
	// (0 = no retries).
	MaxAttempts() int
}

// UniformBackoff draws each delay uniformly from a fixed window.
// The defaults encode the library's retry policy: a single retry after
// 100-200 ms. The window is deliberately not exposed as a library-level
// tuning knob.
type UniformBackoff struct {
	// minDelay is the lower bound of the delay window
	minDelay time.Duration

	// maxDelay is the upper bound of the delay window
	maxDelay time.Duration

	// maxAttempts is the maximum number of retry attempts
	maxAttempts int

	// randFunc provides random values [0, 1) for delay selection
	// (defaults to math/rand). Tests set this to a deterministic function.
	randFunc func() float64
}

// UniformBackoffOption is a functional option for configuring UniformBackoff.
type UniformBackoffOption func(*UniformBackoff)

// WithDelayWindow sets the bounds of the delay window.
func WithDelayWindow(min, max time.Duration) UniformBackoffOption {
	return func(b *UniformBackoff) {
		b.minDelay = min
		b.maxDelay = max
	}
}

// WithMaxAttempts sets the maximum number of retry attempts.
func WithMaxAttempts(n int) UniformBackoffOption {
	return func(b *UniformBackoff) {
		b.maxAttempts = n
	}
}

// WithRandFunc sets a custom function for generating random delay values.
func WithRandFunc(f func() float64) UniformBackoffOption {
	return func(b *UniformBackoff) {
		b.randFunc = f
	}
}

// NewUniformBackoff creates the default backoff strategy: one retry, delay
// uniformly distributed across 100-200 ms.
func NewUniformBackoff(opts ...UniformBackoffOption) *UniformBackoff {
	b := &UniformBackoff{
		minDelay:    100 * time.Millisecond,
		maxDelay:    200 * time.Millisecond,
		maxAttempts: 1,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NextDelay returns a delay drawn uniformly from the configured window.
// The attempt number does not influence the delay; the window is flat.
func (b *UniformBackoff) NextDelay(int) time.Duration {
	randFunc := b.randFunc
	if randFunc == nil {
		randFunc = rand.Float64
	}
	window := float64(b.maxDelay - b.minDelay)
	return b.minDelay + time.Duration(randFunc()*window)
}

// MaxAttempts returns the maximum number of retry attempts.
func (b *UniformBackoff) MaxAttempts() int {
	return b.maxAttempts
}

// MinDelay returns the lower delay bound for tests and debugging.
func (b *UniformBackoff) MinDelay() time.Duration {
	return b.minDelay
}

// MaxDelay returns the upper delay bound for tests and debugging.
func (b *UniformBackoff) MaxDelay() time.Duration {
	return b.maxDelay
}
