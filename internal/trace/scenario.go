package trace

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/shiftzeros/internal/algo"
)

// Scenario is a named batch of runs.
type Scenario struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Runs        []ScenarioRun `yaml:"runs"`
}

// ScenarioRun seeds one run, either with a fixed list or a random seed.
type ScenarioRun struct {
	Name string `yaml:"name"`
	List []int  `yaml:"list"`
	Seed int64  `yaml:"seed"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// RunScenario runs every entry of scenario in order, stopping at the first
// failure. cfg.MaxSteps applies to every run; run names replace cfg.Name.
func RunScenario(ctx context.Context, scenario *Scenario, runner *Runner, cfg Config) ([]*Result, error) {
	results := make([]*Result, 0, len(scenario.Runs))

	for i, run := range scenario.Runs {
		var src algo.Source = algo.NewRandomSource(run.Seed)
		if len(run.List) > 0 {
			fixed, err := algo.NewFixedSource(run.List)
			if err != nil {
				return results, fmt.Errorf("run %d: %w", i+1, err)
			}
			src = fixed
		}

		name := run.Name
		if name == "" {
			name = fmt.Sprintf("%s#%d", scenario.Name, i+1)
		}

		runCfg := cfg
		runCfg.Name = name
		result, err := runner.Run(ctx, src, runCfg)
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}
		results = append(results, result)
	}

	return results, nil
}
