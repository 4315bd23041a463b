package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"dealersim/internal/model"
)

// Scenario is a named demand-schedule preset, stored one per YAML file.
type Scenario struct {
	ID          string `yaml:"-" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Demand is the flat day,level list, e.g. "0,20,25,22".
	Demand string `yaml:"demand" json:"demand"`
}

// Schedule parses the scenario's demand list.
func (s Scenario) Schedule() (model.DemandSchedule, error) {
	sched, err := model.ParseDemandSchedule(s.Demand)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.ID, err)
	}
	return sched, nil
}

type fileWrapper struct {
	Scenario Scenario `yaml:"scenario"`
}

// Load reads one scenario file and validates its demand list.
func Load(path string) (Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	var w fileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return Scenario{}, fmt.Errorf("parse %s: %w", path, err)
	}
	s := w.Scenario
	s.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if s.Name == "" {
		s.Name = s.ID
	}
	if _, err := s.Schedule(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// List loads every .yaml/.yml scenario in dir, sorted by ID. Files that
// fail to parse are skipped; an empty or missing dir yields an empty list.
func List(dir string) ([]Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Scenario{}, nil
		}
		return nil, err
	}

	out := make([]Scenario, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		s, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// DefaultDir resolves the preset directory: SCENARIO_DIR when set,
// otherwise examples/scenarios under the working directory.
func DefaultDir() string {
	if dir := os.Getenv("SCENARIO_DIR"); dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "./examples/scenarios"
	}
	return filepath.Join(wd, "examples", "scenarios")
}
