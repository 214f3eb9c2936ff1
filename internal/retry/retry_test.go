package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap/zaptest"
)

// fastPolicy keeps backoff sleeps negligible in tests.
func fastPolicy() Policy {
	return Policy{
		MaxAttempts:    3,
		BackoffFloor:   time.Millisecond,
		BackoffCeiling: 4 * time.Millisecond,
		IsRetryable:    func(error) bool { return true },
	}
}

func TestDoSucceedsFirstTry(t *testing.T) {
	logger := zaptest.NewLogger(t)

	calls := 0
	result, err := Do(context.Background(), logger, "op", fastPolicy(),
		func(ctx context.Context) (string, error) {
			calls++
			return "ok", nil
		})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != "ok" || calls != 1 {
		t.Errorf("Expected one call returning ok, got %q after %d calls", result, calls)
	}
}

func TestDoRecoversAfterTransientFailures(t *testing.T) {
	logger := zaptest.NewLogger(t)

	calls := 0
	result, err := Do(context.Background(), logger, "op", fastPolicy(),
		func(ctx context.Context) (int, error) {
			calls++
			if calls < 3 {
				return 0, errors.New("transient")
			}
			return 42, nil
		})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != 42 || calls != 3 {
		t.Errorf("Expected recovery on third call, got %d after %d calls", result, calls)
	}
}

func TestDoExhaustionReturnsServiceError(t *testing.T) {
	logger := zaptest.NewLogger(t)

	lastErr := errors.New("still down")
	calls := 0
	_, err := Do(context.Background(), logger, "transcribe", fastPolicy(),
		func(ctx context.Context) (string, error) {
			calls++
			return "", lastErr
		})
	if calls != 3 {
		t.Errorf("Expected 3 attempts, got %d", calls)
	}

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("Expected *ServiceError, got %T: %v", err, err)
	}
	if svcErr.Op != "transcribe" || svcErr.Attempts != 3 {
		t.Errorf("Unexpected ServiceError fields: %+v", svcErr)
	}
	if !errors.Is(err, lastErr) {
		t.Error("ServiceError should wrap the last error")
	}
}

func TestDoNonRetryableFailsImmediately(t *testing.T) {
	logger := zaptest.NewLogger(t)

	policy := fastPolicy()
	policy.IsRetryable = func(error) bool { return false }

	permanent := errors.New("bad request")
	calls := 0
	_, err := Do(context.Background(), logger, "op", policy,
		func(ctx context.Context) (string, error) {
			calls++
			return "", permanent
		})
	if calls != 1 {
		t.Errorf("Expected a single attempt, got %d", calls)
	}
	if !errors.Is(err, permanent) {
		t.Errorf("Expected the original error, got %v", err)
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		t.Error("Non-retryable errors must not be wrapped in ServiceError")
	}
}

func TestDoCancelledDuringBackoff(t *testing.T) {
	logger := zaptest.NewLogger(t)

	policy := fastPolicy()
	policy.BackoffFloor = time.Minute
	policy.BackoffCeiling = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := Do(ctx, logger, "op", policy,
		func(ctx context.Context) (string, error) {
			return "", errors.New("transient")
		})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Cancellation did not abort the backoff sleep, took %v", elapsed)
	}
}

func TestTransientClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"context canceled", context.Canceled, false},
		{"context deadline", context.DeadlineExceeded, false},
		{"plain error", errors.New("boom"), false},
		{"net timeout", &net.DNSError{IsTimeout: true}, true},
		{"connection refused", syscall.ECONNREFUSED, true},
		{"connection reset", fmt.Errorf("write: %w", syscall.ECONNRESET), true},
		{"openai rate limit", &openai.APIError{HTTPStatusCode: 429}, true},
		{"openai server error", &openai.APIError{HTTPStatusCode: 503}, true},
		{"openai auth failure", &openai.APIError{HTTPStatusCode: 401}, false},
		{"openai bad request", &openai.APIError{HTTPStatusCode: 400}, false},
		{"openai request 500", &openai.RequestError{HTTPStatusCode: 500}, true},
		{"openai request 404", &openai.RequestError{HTTPStatusCode: 404}, false},
	}

	for _, tc := range cases {
		if got := Transient(tc.err); got != tc.want {
			t.Errorf("Transient(%s) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
