package youtube

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetryDoSucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	got, err := RetryDo(context.Background(), testRetryConfig(3), func() (string, error) {
		calls++
		if calls < 3 {
			return "", &httpStatusError{StatusCode: 503}
		}
		return "ok", nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" || calls != 3 {
		t.Errorf("got %q after %d calls, want \"ok\" after 3", got, calls)
	}
}

func TestRetryDoExhaustsAttemptBudget(t *testing.T) {
	calls := 0
	_, err := RetryDo(context.Background(), testRetryConfig(3), func() (string, error) {
		calls++
		return "", &httpStatusError{StatusCode: 503}
	})

	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if calls != 3 {
		t.Errorf("made %d attempts, want 3", calls)
	}
}

func TestRetryDoStopsOnNonRetryableError(t *testing.T) {
	permanent := errors.New("bad request")
	calls := 0
	_, err := RetryDo(context.Background(), testRetryConfig(3), func() (string, error) {
		calls++
		return "", permanent
	})

	if !errors.Is(err, permanent) {
		t.Fatalf("error = %v, want %v", err, permanent)
	}
	if calls != 1 {
		t.Errorf("made %d attempts, want 1", calls)
	}
}

func TestRetryDoHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := RetryDo(ctx, testRetryConfig(3), func() (string, error) {
		calls++
		return "", &httpStatusError{StatusCode: 503}
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if calls != 0 {
		t.Errorf("made %d attempts after cancellation, want 0", calls)
	}
}

func TestIsRetryableStatus(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{429, true}, {500, true}, {502, true}, {503, true}, {504, true},
		{200, false}, {400, false}, {401, false}, {404, false},
	}

	for _, tt := range tests {
		if got := isRetryableStatus(tt.code); got != tt.want {
			t.Errorf("isRetryableStatus(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
