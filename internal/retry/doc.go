// Package retry provides automatic retry logic with jittered backoff for
// transient filesystem faults.
//
// The package supports pluggable error classification and backoff
// strategies. The library policy is fixed: one retry, with a delay drawn
// uniformly from the 100-200 ms window. It masks races inherent to
// filesystems (entries disappearing and reappearing, locks held momentarily)
// without hiding persistent faults like permission errors.
//
// # Example Usage
//
//	classifier := retry.NewOSErrorClassifier()
//	strategy := retry.NewUniformBackoff()
//	executor := retry.NewExecutor(classifier, strategy)
//
//	res := retry.DoValue(executor, ctx, nil, func(ctx context.Context) ([]byte, error) {
//	    return fsys.ReadFile(path)
//	})
//
// # Error Classification
//
// The ErrorClassifier interface determines which errors are transient
// (retryable) versus fatal (non-retryable). OSErrorClassifier treats
// not-found and resource-busy conditions as transient; everything else
// (permission denied, disk full, ...) aborts immediately.
//
// # Thread Safety
//
// Executor instances are safe for concurrent use. Use WithOnRetry() to
// create independent configurations per caller.
package retry
