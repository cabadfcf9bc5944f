package trace

import (
	"context"
	"fmt"
	"testing"

	"github.com/san-kum/shiftzeros/internal/algo"
)

func TestEnsembleRun(t *testing.T) {
	const runs = 6
	results, err := NewEnsemble(New(nil), runs, 100).Run(context.Background(), Config{})
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(results) != runs {
		t.Fatalf("expected %d results, got %d", runs, len(results))
	}

	for i, res := range results {
		seed := int64(100 + i)
		if want := fmt.Sprintf("seed-%d", seed); res.Name != want {
			t.Errorf("result %d: expected name %s, got %s", i, want, res.Name)
		}

		solo, err := New(nil).Run(context.Background(), algo.NewSeededSource(seed), Config{})
		if err != nil {
			t.Fatal(err)
		}
		if !equalInts(res.Start.Numbers(), solo.Start.Numbers()) {
			t.Errorf("seed %d: ensemble start %v, sequential start %v", seed, res.Start.Numbers(), solo.Start.Numbers())
		}

		final := res.Final.Numbers()
		zeros := int(res.Metrics["zeros"])
		for j, n := range final {
			if (j < zeros) != (n == 0) {
				t.Errorf("seed %d: zeros not shifted left: %v", seed, final)
				break
			}
		}
	}
}

func TestEnsembleCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewEnsemble(New(nil), 3, 1).Run(ctx, Config{}); err == nil {
		t.Error("expected error from canceled ensemble")
	}
}

func TestSummarize(t *testing.T) {
	results := []*Result{
		{Metrics: map[string]float64{"marks": 1, "swaps": 4}},
		{Metrics: map[string]float64{"marks": 3, "swaps": 0}},
	}

	got := Summarize(results)
	want := []Summary{
		{Metric: "marks", Min: 1, Max: 3, Mean: 2},
		{Metric: "swaps", Min: 0, Max: 4, Mean: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d summaries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("summary %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestSummarizeTransitionsConstant(t *testing.T) {
	results, err := NewEnsemble(New(nil), 4, 7).Run(context.Background(), Config{})
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range Summarize(results) {
		if s.Metric != "transitions" {
			continue
		}
		want := float64(1 + 4*algo.ListLen)
		if s.Min != want || s.Max != want {
			t.Errorf("expected every run to take %v transitions, got %+v", want, s)
		}
	}
}

func TestEnsembleSeedZeroIsReproducible(t *testing.T) {
	first, err := NewEnsemble(New(nil), 5, -2).Run(context.Background(), Config{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewEnsemble(New(nil), 5, -2).Run(context.Background(), Config{})
	if err != nil {
		t.Fatal(err)
	}

	for i := range first {
		if !equalInts(first[i].Start.Numbers(), second[i].Start.Numbers()) {
			t.Errorf("%s: starts differ between batches: %v vs %v",
				first[i].Name, first[i].Start.Numbers(), second[i].Start.Numbers())
		}
		if first[i].Start.Keys()[0] != second[i].Start.Keys()[0] {
			t.Errorf("%s: keys differ between batches", first[i].Name)
		}
	}
	if first[2].Name != "seed-0" {
		t.Errorf("expected third run to use seed 0, got %s", first[2].Name)
	}
}
