// Package retry wraps fallible remote calls with a uniform
// retry-with-exponential-backoff contract.
package retry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Policy controls how a remote call is retried. The zero value is not
// usable; start from DefaultPolicy or fill every field.
type Policy struct {
	MaxAttempts    int
	BackoffFloor   time.Duration
	BackoffCeiling time.Duration
	// IsRetryable classifies an error as transient. Nil defaults to
	// Transient. Non-transient errors propagate on first occurrence.
	IsRetryable func(error) bool
}

// DefaultPolicy returns the standard retry tuning: three attempts, backoff
// starting at 2s, doubling, capped at 10s.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:    3,
		BackoffFloor:   2 * time.Second,
		BackoffCeiling: 10 * time.Second,
		IsRetryable:    Transient,
	}
}

// ServiceError marks a remote operation that exhausted its retry budget.
// It wraps the last error observed.
type ServiceError struct {
	Op       string
	Attempts int
	Err      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s failed after %d attempts: %v", e.Op, e.Attempts, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Do runs fn under the given policy. Transient errors are retried with
// exponential backoff; anything else returns immediately. Backoff sleeps
// abort when ctx is cancelled. Exhausting every attempt returns a
// *ServiceError wrapping the last error.
func Do[T any](ctx context.Context, logger *zap.Logger, op string, policy Policy, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	retryable := policy.IsRetryable
	if retryable == nil {
		retryable = Transient
	}

	delay := policy.BackoffFloor
	var lastErr error

	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !retryable(err) {
			return zero, err
		}
		if attempt == policy.MaxAttempts {
			break
		}

		logger.Info("Retrying remote call",
			zap.String("op", op),
			zap.Int("attempt", attempt+1),
			zap.Duration("backoff", delay),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}

		delay *= 2
		if delay > policy.BackoffCeiling {
			delay = policy.BackoffCeiling
		}
	}

	return zero, &ServiceError{Op: op, Attempts: policy.MaxAttempts, Err: lastErr}
}
