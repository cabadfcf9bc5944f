package trace

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/san-kum/shiftzeros/internal/algo"
)

// Ensemble runs numRuns random lists concurrently, seeded seedStart,
// seedStart+1, and so on. Every seed is taken literally, zero included.
type Ensemble struct {
	base      *Runner
	numRuns   int
	seedStart int64
}

func NewEnsemble(r *Runner, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{base: r, numRuns: numRuns, seedStart: seedStart}
}

// Run returns the results in seed order. Each run gets its own runner
// sharing the base logger; the base runner's observers are not attached
// because they would be called from several goroutines.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			seed := e.seedStart + int64(idx)
			cfgCopy := cfg
			cfgCopy.Name = fmt.Sprintf("seed-%d", seed)

			r := New(e.base.log)
			results[idx], errs[idx] = r.Run(ctx, algo.NewSeededSource(seed), cfgCopy)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// Summary aggregates one metric over a batch of results.
type Summary struct {
	Metric string  `json:"metric"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

// Summarize reports min, max and mean of every metric present in results,
// sorted by metric name.
func Summarize(results []*Result) []Summary {
	acc := make(map[string]*Summary)
	for _, res := range results {
		for name, v := range res.Metrics {
			s, ok := acc[name]
			if !ok {
				s = &Summary{Metric: name, Min: v, Max: v}
				acc[name] = s
			}
			s.Min = min(s.Min, v)
			s.Max = max(s.Max, v)
			s.Mean += v
		}
	}

	out := make([]Summary, 0, len(acc))
	for _, s := range acc {
		s.Mean /= float64(len(results))
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Metric < out[j].Metric })
	return out
}
