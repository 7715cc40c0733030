package health

import (
	"ai-study-assistant-be/pkg/llm"
	"ai-study-assistant-be/pkg/llm/chain"
	"context"
	"sync"
	"time"
)

// Status is a snapshot of the AI backend health state.
type Status struct {
	Available           bool      `json:"api_available"`
	QuotaExceeded       bool      `json:"quota_exceeded"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	LastChecked         time.Time `json:"last_checked"`
}

// Monitor tracks whether the AI backend is usable. Probe results are
// cached for an interval so request handlers never hammer the provider
// with health pings.
type Monitor struct {
	mu           sync.Mutex
	provider     llm.LLMProvider
	model        string
	interval     time.Duration
	probeTimeout time.Duration
	now          func() time.Time

	refreshing bool
	status     Status
}

type MonitorOption func(*Monitor)

func WithInterval(d time.Duration) MonitorOption {
	return func(m *Monitor) { m.interval = d }
}

func WithProbeTimeout(d time.Duration) MonitorOption {
	return func(m *Monitor) { m.probeTimeout = d }
}

func WithClock(now func() time.Time) MonitorOption {
	return func(m *Monitor) { m.now = now }
}

func NewMonitor(provider llm.LLMProvider, model string, opts ...MonitorOption) *Monitor {
	m := &Monitor{
		provider:     provider,
		model:        model,
		interval:     60 * time.Second,
		probeTimeout: 10 * time.Second,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Check probes the provider with a minimal request, or returns the
// cached status when the last probe is still fresh. The lock is not
// held across the network call: while one caller refreshes, everyone
// else gets the stale snapshot immediately.
func (m *Monitor) Check(ctx context.Context) Status {
	m.mu.Lock()
	now := m.now()
	fresh := !m.status.LastChecked.IsZero() && now.Sub(m.status.LastChecked) < m.interval
	if fresh || m.refreshing {
		status := m.status
		m.mu.Unlock()
		return status
	}
	m.refreshing = true
	m.mu.Unlock()

	probeCtx, cancel := context.WithTimeout(ctx, m.probeTimeout)
	defer cancel()
	_, err := m.provider.Chat(probeCtx,
		[]llm.Message{{Role: "user", Content: "Test"}},
		llm.WithModel(m.model),
		llm.WithMaxTokens(5),
	)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshing = false
	m.status.LastChecked = now
	if err != nil {
		m.status.Available = false
		m.status.ConsecutiveFailures++
		if chain.IsQuotaError(err) {
			m.status.QuotaExceeded = true
		}
	} else {
		m.status.Available = true
		m.status.QuotaExceeded = false
		m.status.ConsecutiveFailures = 0
	}
	return m.status
}

// Status returns the cached state without probing.
func (m *Monitor) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// ReportFailure folds a generation failure into the health state so
// quota exhaustion surfaces without waiting for the next probe.
func (m *Monitor) ReportFailure(err error) {
	if err == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status.ConsecutiveFailures++
	if chain.IsQuotaError(err) {
		m.status.QuotaExceeded = true
		m.status.Available = false
	}
}

// ReportSuccess resets the failure counters after a working call.
func (m *Monitor) ReportSuccess() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status.Available = true
	m.status.QuotaExceeded = false
	m.status.ConsecutiveFailures = 0
}

// Reset clears cached state, forcing the next Check to probe.
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = Status{}
}
