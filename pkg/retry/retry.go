// Package retry provides a small retry policy with linear backoff.
// The sleep function is injectable so callers can test retry behavior
// without wall-clock delays.
package retry

import (
	"context"
	"time"
)

// SleepFunc pauses for the given duration. A non-nil return aborts the
// retry loop, which is how context cancellation propagates mid-wait.
type SleepFunc func(ctx context.Context, d time.Duration) error

// DefaultSleep blocks on a timer or on ctx, whichever fires first.
func DefaultSleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Policy retries an operation up to MaxAttempts times, waiting
// attempt*Delay between rounds (linear backoff).
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
	Sleep       SleepFunc
}

// NewPolicy returns a policy with the default sleeper.
func NewPolicy(maxAttempts int, delay time.Duration) Policy {
	return Policy{MaxAttempts: maxAttempts, Delay: delay, Sleep: DefaultSleep}
}

// Do runs fn until it succeeds, attempts are exhausted, or ctx is done.
// The wait before round n (1-based) is n*Delay, matching the linear
// backoff the upstream services tolerate.
func (p Policy) Do(ctx context.Context, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = DefaultSleep
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if attempt < attempts {
			if err := sleep(ctx, time.Duration(attempt)*p.Delay); err != nil {
				return err
			}
		}
	}
	return lastErr
}
