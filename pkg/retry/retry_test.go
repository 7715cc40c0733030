package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSucceedsWithoutRetry(t *testing.T) {
	calls := 0
	p := Policy{MaxAttempts: 3, Delay: time.Second, Sleep: func(context.Context, time.Duration) error {
		t.Fatal("sleep should not be called on first success")
		return nil
	}}

	err := p.Do(context.Background(), func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoLinearBackoff(t *testing.T) {
	var waits []time.Duration
	p := Policy{MaxAttempts: 3, Delay: 2 * time.Second, Sleep: func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}}

	calls := 0
	err := p.Do(context.Background(), func() error {
		calls++
		return errors.New("boom")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, waits)
}

func TestDoRecoversMidway(t *testing.T) {
	calls := 0
	p := Policy{MaxAttempts: 3, Delay: time.Second, Sleep: func(context.Context, time.Duration) error { return nil }}

	err := p.Do(context.Background(), func() error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDoStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPolicy(3, time.Second)
	err := p.Do(ctx, func() error {
		t.Fatal("fn should not run with cancelled context")
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}
