package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"dealersim/internal/model"
	"dealersim/internal/scenario"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the demand schedule from a scenario preset file
	// (e.g. examples/scenarios/*.yaml). An explicit simulation.demand
	// overrides the scenario's schedule.
	ScenarioFile string `yaml:"scenario_file"`

	Simulation SimulationConfig `yaml:"simulation"`
	Driver     DriverConfig     `yaml:"driver"`
}

type SimulationConfig struct {
	PerceptionDelay int `yaml:"perception_delay"`
	ResponseDelay   int `yaml:"response_delay"`
	DeliveryDelay   int `yaml:"delivery_delay"`

	// Demand is the flat day,level list, e.g. "0,20,25,22".
	Demand string `yaml:"demand"`
}

type DriverConfig struct {
	TickMillis int `yaml:"tick_ms"`
	Window     int `yaml:"window"`
}

// Default returns the configuration used when no file is given: every
// delay at 3 days and a flat demand of 20 cars/day.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			PerceptionDelay: 3,
			ResponseDelay:   3,
			DeliveryDelay:   3,
			Demand:          "0,20",
		},
		Driver: DriverConfig{
			TickMillis: 100,
			Window:     35,
		},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.ScenarioFile != "" && c.Simulation.Demand == "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, falling back to the path as given.
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		s, err := scenario.Load(scenarioPath)
		if err != nil {
			return nil, err
		}
		c.Simulation.Demand = s.Demand
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Simulation.PerceptionDelay == 0 {
		c.Simulation.PerceptionDelay = def.Simulation.PerceptionDelay
	}
	if c.Simulation.ResponseDelay == 0 {
		c.Simulation.ResponseDelay = def.Simulation.ResponseDelay
	}
	if c.Simulation.DeliveryDelay == 0 {
		c.Simulation.DeliveryDelay = def.Simulation.DeliveryDelay
	}
	if c.Simulation.Demand == "" {
		c.Simulation.Demand = def.Simulation.Demand
	}
	if c.Driver.TickMillis == 0 {
		c.Driver.TickMillis = def.Driver.TickMillis
	}
	if c.Driver.Window == 0 {
		c.Driver.Window = def.Driver.Window
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("simulation config invalid: %w", err)
	}
	if _, err := c.Schedule(); err != nil {
		return fmt.Errorf("simulation config invalid: %w", err)
	}
	if c.Driver.TickMillis < 0 {
		return errors.New("driver.tick_ms must be >= 0")
	}
	if c.Driver.Window < 0 {
		return errors.New("driver.window must be >= 0")
	}
	return nil
}

func (c *Config) Params() model.Params {
	return model.Params{
		PerceptionDelay: c.Simulation.PerceptionDelay,
		ResponseDelay:   c.Simulation.ResponseDelay,
		DeliveryDelay:   c.Simulation.DeliveryDelay,
	}
}

func (c *Config) Schedule() (model.DemandSchedule, error) {
	return model.ParseDemandSchedule(c.Simulation.Demand)
}

func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Driver.TickMillis) * time.Millisecond
}
