package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes one benchmark run: how many entries to load and how
// many operations of each class to time against the loaded map.
type Scenario struct {
	Name string `yaml:"name"`
	// Seed fixes the pseudo-random key choices so runs are repeatable.
	Seed    int64 `yaml:"seed"`
	Inserts int   `yaml:"inserts"`
	Gets    int   `yaml:"gets"`
	// HotGets repeatedly fetches one key, measuring the splayed best case.
	HotGets int `yaml:"hotGets"`
	Deletes int `yaml:"deletes"`
}

func (s *Scenario) validate() error {
	if s.Inserts <= 0 {
		return fmt.Errorf("scenario %q: inserts must be positive", s.Name)
	}
	if s.Gets < 0 || s.HotGets < 0 || s.Deletes < 0 {
		return fmt.Errorf("scenario %q: operation counts must not be negative", s.Name)
	}
	if s.Deletes > s.Inserts {
		return fmt.Errorf("scenario %q: cannot delete %d of %d keys",
			s.Name, s.Deletes, s.Inserts)
	}
	return nil
}

// loadScenarios reads a YAML list of scenarios from path.
func loadScenarios(path string) ([]Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var scenarios []Scenario
	if err := yaml.Unmarshal(raw, &scenarios); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s is empty", path)
	}
	for i := range scenarios {
		if err := scenarios[i].validate(); err != nil {
			return nil, err
		}
	}
	return scenarios, nil
}

// defaultScenarios mirrors the benchmark suite shipped with the map's test
// harness.
func defaultScenarios() []Scenario {
	return []Scenario{
		{Name: "insert-1k", Seed: 1, Inserts: 1000},
		{Name: "insert-10k", Seed: 1, Inserts: 10000},
		{Name: "hot-key", Seed: 1, Inserts: 2000, HotGets: 100000},
		{Name: "mixed", Seed: 1, Inserts: 5000, Gets: 100000, Deletes: 500},
	}
}
