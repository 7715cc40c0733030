package health

import (
	"ai-study-assistant-be/pkg/llm"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeProvider struct {
	err   error
	calls int
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "ok", nil
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func TestCheckProbesAndCaches(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	p := &fakeProvider{}
	m := NewMonitor(p, "llama3-8b-8192", WithClock(func() time.Time { return now }))

	st := m.Check(context.Background())
	assert.True(t, st.Available)
	assert.Equal(t, 1, p.calls)

	// within the interval the cached result is reused
	now = now.Add(30 * time.Second)
	st = m.Check(context.Background())
	assert.True(t, st.Available)
	assert.Equal(t, 1, p.calls)

	// past the interval it probes again
	now = now.Add(31 * time.Second)
	m.Check(context.Background())
	assert.Equal(t, 2, p.calls)
}

func TestCheckTracksFailures(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	p := &fakeProvider{err: errors.New("connection refused")}
	m := NewMonitor(p, "llama3-8b-8192",
		WithClock(func() time.Time { return now }),
		WithInterval(time.Second),
	)

	st := m.Check(context.Background())
	assert.False(t, st.Available)
	assert.Equal(t, 1, st.ConsecutiveFailures)
	assert.False(t, st.QuotaExceeded)

	now = now.Add(2 * time.Second)
	st = m.Check(context.Background())
	assert.Equal(t, 2, st.ConsecutiveFailures)
}

func TestCheckDetectsQuota(t *testing.T) {
	p := &fakeProvider{err: errors.New("status 429: rate limit reached")}
	m := NewMonitor(p, "llama3-8b-8192")

	st := m.Check(context.Background())
	assert.False(t, st.Available)
	assert.True(t, st.QuotaExceeded)
}

func TestReportFailureAndSuccess(t *testing.T) {
	m := NewMonitor(&fakeProvider{}, "llama3-8b-8192")

	m.ReportFailure(errors.New("quota exceeded"))
	st := m.Status()
	assert.True(t, st.QuotaExceeded)
	assert.Equal(t, 1, st.ConsecutiveFailures)

	m.ReportSuccess()
	st = m.Status()
	assert.True(t, st.Available)
	assert.False(t, st.QuotaExceeded)
	assert.Zero(t, st.ConsecutiveFailures)
}

func TestResetForcesProbe(t *testing.T) {
	p := &fakeProvider{}
	m := NewMonitor(p, "llama3-8b-8192")

	m.Check(context.Background())
	m.Reset()
	m.Check(context.Background())
	assert.Equal(t, 2, p.calls)
}

// blockingProvider parks inside Chat until released, signalling entry
// so tests can observe an in-flight probe.
type blockingProvider struct {
	entered chan struct{}
	release chan struct{}
	calls   int
}

func (p *blockingProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	p.calls++
	close(p.entered)
	<-p.release
	return "ok", nil
}

func (p *blockingProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func TestInflightProbeDoesNotBlockOtherCallers(t *testing.T) {
	p := &blockingProvider{entered: make(chan struct{}), release: make(chan struct{})}
	m := NewMonitor(p, "llama3-8b-8192")

	first := make(chan Status, 1)
	go func() { first <- m.Check(context.Background()) }()
	<-p.entered

	// while the probe is in flight, Status and Check return the stale
	// snapshot immediately instead of queueing behind the network call
	snapshot := make(chan Status, 1)
	go func() {
		m.Status()
		snapshot <- m.Check(context.Background())
	}()
	select {
	case st := <-snapshot:
		assert.False(t, st.Available)
		assert.True(t, st.LastChecked.IsZero())
	case <-time.After(time.Second):
		t.Fatal("concurrent caller blocked behind in-flight probe")
	}
	assert.Equal(t, 1, p.calls)

	close(p.release)
	st := <-first
	assert.True(t, st.Available)
}

// stuckProvider only returns when its context is cancelled.
type stuckProvider struct{}

func (p *stuckProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func (p *stuckProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func TestProbeTimeoutBoundsHungProvider(t *testing.T) {
	m := NewMonitor(&stuckProvider{}, "llama3-8b-8192",
		WithProbeTimeout(10*time.Millisecond))

	done := make(chan Status, 1)
	go func() { done <- m.Check(context.Background()) }()
	select {
	case st := <-done:
		assert.False(t, st.Available)
		assert.Equal(t, 1, st.ConsecutiveFailures)
	case <-time.After(time.Second):
		t.Fatal("Check did not return after the probe timeout")
	}
}
