package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

type hintedError struct {
	after time.Duration
}

func (e *hintedError) Error() string             { return "rate limited" }
func (e *hintedError) RetryAfter() time.Duration { return e.after }

func TestRetry_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	got, err := Retry(context.Background(), RetryConfig{MaxRetries: 3, Backoff: noBackoff}, func() (int, error) {
		calls++
		return 42, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	got, err := Retry(context.Background(), RetryConfig{MaxRetries: 3, Backoff: noBackoff}, func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" {
		t.Errorf("expected ok, got %q", got)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetry_ExhaustsBudget(t *testing.T) {
	calls := 0
	wantErr := errors.New("persistent")
	_, err := Retry(context.Background(), RetryConfig{MaxRetries: 3, Backoff: noBackoff}, func() (int, error) {
		calls++
		return 0, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected last error, got %v", err)
	}
	// MaxRetries retries on top of the initial attempt.
	if calls != 4 {
		t.Errorf("expected 4 attempts, got %d", calls)
	}
}

func TestRetry_NonRetryableStopsImmediately(t *testing.T) {
	calls := 0
	fatal := errors.New("fatal")
	_, err := Retry(context.Background(), RetryConfig{
		MaxRetries: 5,
		Backoff:    noBackoff,
		RetryIf:    func(err error) bool { return !errors.Is(err, fatal) },
	}, func() (int, error) {
		calls++
		return 0, fatal
	})
	if !errors.Is(err, fatal) {
		t.Fatalf("expected fatal error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	_, err := Retry(ctx, RetryConfig{MaxRetries: 3, Backoff: noBackoff}, func() (int, error) {
		calls++
		return 0, errors.New("boom")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no calls after cancellation, got %d", calls)
	}
}

func TestRetry_BackoffHintOverridesSchedule(t *testing.T) {
	var observed []time.Duration
	calls := 0
	_, _ = Retry(context.Background(), RetryConfig{
		MaxRetries: 2,
		Backoff:    func(int) time.Duration { return time.Millisecond },
		OnRetry: func(_ int, _ error, backoff time.Duration) {
			observed = append(observed, backoff)
		},
	}, func() (int, error) {
		calls++
		return 0, &hintedError{after: 3 * time.Millisecond}
	})
	if len(observed) != 2 {
		t.Fatalf("expected 2 retries, got %d", len(observed))
	}
	for _, d := range observed {
		if d != 3*time.Millisecond {
			t.Errorf("expected hinted backoff 3ms, got %v", d)
		}
	}
}

func TestLinearBackoff(t *testing.T) {
	backoff := LinearBackoff(5 * time.Second)
	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{3, 4 * time.Second},
		{4, 5 * time.Second},
		{10, 5 * time.Second},
	}
	for _, tc := range cases {
		if got := backoff(tc.attempt); got != tc.want {
			t.Errorf("attempt %d: expected %v, got %v", tc.attempt, tc.want, got)
		}
	}
}

func TestExponentialBackoff(t *testing.T) {
	backoff := ExponentialBackoff(100*time.Millisecond, time.Second, 2.0)
	if got := backoff(0); got != 100*time.Millisecond {
		t.Errorf("attempt 0: got %v", got)
	}
	if got := backoff(2); got != 400*time.Millisecond {
		t.Errorf("attempt 2: got %v", got)
	}
	if got := backoff(10); got != time.Second {
		t.Errorf("attempt 10: expected cap, got %v", got)
	}
}

func noBackoff(int) time.Duration { return 0 }
