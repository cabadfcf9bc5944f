// Package trace drives whole runs without a terminal and exports what
// happened along the way.
package trace

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/san-kum/shiftzeros/internal/algo"
)

// DefaultMaxSteps bounds a run. A full pass takes START plus four events
// per cell.
const DefaultMaxSteps = 10 * algo.ListLen

// ErrStepLimit indicates a run that did not reach done within MaxSteps.
var ErrStepLimit = errors.New("trace: step limit reached before done")

type Config struct {
	Name     string
	MaxSteps int
}

type Result struct {
	Name    string             `json:"name,omitempty"`
	Start   algo.RunContext    `json:"start"`
	Records []algo.Record      `json:"records"`
	Final   algo.RunContext    `json:"final"`
	Metrics map[string]float64 `json:"metrics"`
}

type Runner struct {
	observers []algo.Observer
	log       *zap.Logger
}

func New(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{observers: make([]algo.Observer, 0), log: log}
}

func (r *Runner) AddObserver(o algo.Observer) { r.observers = append(r.observers, o) }

// Run drives a fresh machine over src from idle to done with the driver.
func (r *Runner) Run(ctx context.Context, src algo.Source, cfg Config) (*Result, error) {
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}

	m := algo.New(src, r.log)
	for _, o := range r.observers {
		m.AddObserver(o)
	}

	result := &Result{
		Name:    cfg.Name,
		Start:   m.State().Context(),
		Records: make([]algo.Record, 0, min(cfg.MaxSteps, DefaultMaxSteps)),
		Metrics: make(map[string]float64),
	}

	for i := 0; !m.Done(); i++ {
		select {
		case <-ctx.Done():
			result.Final = m.State().Context()
			return result, ctx.Err()
		default:
		}

		if i >= cfg.MaxSteps {
			result.Final = m.State().Context()
			return result, fmt.Errorf("%w: %d steps", ErrStepLimit, cfg.MaxSteps)
		}

		rec, err := m.Advance()
		if err != nil {
			result.Final = m.State().Context()
			return result, fmt.Errorf("step %d: %w", i+1, err)
		}
		result.Records = append(result.Records, rec)
	}

	result.Final = m.State().Context()
	result.Metrics = metrics(result)
	r.log.Info("run finished",
		zap.String("name", cfg.Name),
		zap.Ints("start", result.Start.Numbers()),
		zap.Ints("final", result.Final.Numbers()),
		zap.Int("transitions", len(result.Records)))
	return result, nil
}

func metrics(res *Result) map[string]float64 {
	var marks, swaps, steps float64
	for _, rec := range res.Records {
		if rec.To() == algo.StateMark {
			marks++
		}
		if rec.Event == algo.EventSwap {
			swaps++
		}
		if rec.Entered(algo.StateStep) {
			steps++
		}
	}
	return map[string]float64{
		"transitions": float64(len(res.Records)),
		"marks":       marks,
		"swaps":       swaps,
		"outer_steps": steps,
		"zeros":       float64(res.Final.Zeros),
	}
}
