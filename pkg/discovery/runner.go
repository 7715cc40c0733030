package discovery

import (
	"ai-study-assistant-be/pkg/retry"
	"context"
	"strings"
	"time"
)

// Strategy is one named way of querying one external source.
type Strategy[T any] struct {
	Name   string
	Search func(ctx context.Context) ([]T, error)
}

// Runner executes strategies with per-call retries and a politeness
// pause between external calls. The sleep is injectable for tests.
type Runner struct {
	Policy retry.Policy
	Pause  time.Duration
	Sleep  retry.SleepFunc
}

func NewRunner() *Runner {
	return &Runner{
		Policy: retry.NewPolicy(3, 2*time.Second),
		Pause:  1 * time.Second,
		Sleep:  retry.DefaultSleep,
	}
}

// Collect runs every strategy in order and accumulates results,
// deduplicating by the normalized key. Strategies that keep failing are
// skipped; an all-failed run yields an empty slice for the caller to
// replace with placeholders.
func Collect[T any](ctx context.Context, r *Runner, strategies []Strategy[T], key func(T) string) []T {
	seen := make(map[string]bool)
	var out []T
	for i, strat := range strategies {
		if i > 0 && r.Pause > 0 {
			if err := r.Sleep(ctx, r.Pause); err != nil {
				break
			}
		}

		var results []T
		err := r.Policy.Do(ctx, func() error {
			var searchErr error
			results, searchErr = strat.Search(ctx)
			return searchErr
		})
		if err != nil {
			continue
		}

		for _, item := range results {
			k := NormalizeTitle(key(item))
			if k == "" || seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, item)
		}
	}
	return out
}

// NormalizeTitle is the dedup key: lowercased, whitespace collapsed.
func NormalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}
