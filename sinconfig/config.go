// Package sinconfig loads the YAML configuration a sinrun invocation
// runs from: arena capacities, the scheduler to use, and which bundled
// scenario to evaluate.
package sinconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scheduler selects between the sequential reference engine, the
// worker-pool engine, and the akita-ticked engine.
type Scheduler string

const (
	Sequential Scheduler = "sequential"
	Pool       Scheduler = "pool"
	Akita      Scheduler = "akita"
)

// Config is the top-level YAML document sinrun reads.
type Config struct {
	Capacities Capacities `yaml:"capacities"`
	Scheduler  Scheduler  `yaml:"scheduler"`
	Workers    int        `yaml:"workers"`
	Scenario   Scenario   `yaml:"scenario"`
	LogLevel   string     `yaml:"log_level"`
}

// Capacities sets the fixed sizes of the net's cell/variable arenas, and
// the pre-allocation sizes (not limits) of its pending-equation queue
// and the scenario's rule book.
type Capacities struct {
	Cells     uint32 `yaml:"cells_capacity"`
	Vars      uint32 `yaml:"vars_capacity"`
	Equations uint32 `yaml:"equations_capacity"`
	Rules     uint32 `yaml:"rules_capacity"`
}

// Scenario picks one of the bundled end-to-end demonstrations and its
// input.
type Scenario struct {
	Name  string `yaml:"name"`
	Input uint64 `yaml:"input"`
}

// Default returns the configuration sinrun falls back to when no file
// is given.
func Default() Config {
	return Config{
		Capacities: Capacities{
			Cells:     1 << 24,
			Vars:      1 << 24,
			Equations: 1 << 20,
			Rules:     1 << 12,
		},
		Scheduler: Sequential,
		Workers:   1,
		Scenario:  Scenario{Name: "fib", Input: 10},
		LogLevel:  "info",
	}
}

// Load reads and parses a YAML config file, panicking on a missing
// file or malformed YAML — a broken config is a startup-time
// programming error, not a recoverable runtime condition.
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("sinconfig: failed to read config file: %v", err))
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		panic(fmt.Sprintf("sinconfig: failed to parse config file: %v", err))
	}
	return cfg
}
