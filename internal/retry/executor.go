package retry

import (
	"context"
	"time"
)

// Result pairs the outcome of a retried operation with the error that
// produced it, if any. Data holds the caller-supplied fallback when Err is
// non-nil. Executors never panic and never lose the last error.
type Result[T any] struct {
	Data T
	Err  error
}

// Executor orchestrates retry attempts with backoff and error
// classification.
//
// Thread Safety:
// The Executor itself is safe for concurrent use. WithOnRetry() returns a
// NEW instance with the callback configured; the original remains unchanged.
type Executor struct {
	classifier ErrorClassifier
	strategy   BackoffStrategy
	onRetry    func(attempt int, err error, delay time.Duration)
}

// NewExecutor creates a new retry executor with the given configuration.
// Panics if classifier or strategy is nil.
func NewExecutor(classifier ErrorClassifier, strategy BackoffStrategy) *Executor {
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	return &Executor{
		classifier: classifier,
		strategy:   strategy,
	}
}

// WithOnRetry returns a new Executor with the specified retry callback.
//
// This method does NOT modify the receiver; it returns a new instance so
// executors can be configured concurrently.
func (e *Executor) WithOnRetry(callback func(attempt int, err error, delay time.Duration)) *Executor {
	clone := *e
	clone.onRetry = callback
	return &clone
}

// Do runs the operation with retry logic and returns the error of the last
// attempt (nil on success).
func (e *Executor) Do(ctx context.Context, operation func(ctx context.Context) error) error {
	lastErr := operation(ctx)
	if lastErr == nil {
		return nil
	}
	if !e.classifier.IsTransient(lastErr) {
		return lastErr
	}

	maxAttempts := e.strategy.MaxAttempts()
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		delay := e.strategy.NextDelay(attempt)
		if e.onRetry != nil {
			e.onRetry(attempt, lastErr, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		lastErr = operation(ctx)
		if lastErr == nil {
			return nil
		}
		if !e.classifier.IsTransient(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

// DoValue runs a value-producing operation with retry logic. It never
// fails outright: after exhausting attempts the caller-supplied fallback is
// returned alongside the last error, and the caller decides whether to
// escalate.
func DoValue[T any](e *Executor, ctx context.Context, fallback T, operation func(ctx context.Context) (T, error)) Result[T] {
	var data T
	err := e.Do(ctx, func(ctx context.Context) error {
		var opErr error
		data, opErr = operation(ctx)
		return opErr
	})
	if err != nil {
		return Result[T]{Data: fallback, Err: err}
	}
	return Result[T]{Data: data}
}
