package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

func writeScenario(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, t.TempDir(), "surge.yaml", `
scenario:
  name: Demand surge
  description: Ramps on day 30.
  demand: "0,20,30,35"
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.ID != "surge" {
		t.Fatalf("expected id from filename, got %q", s.ID)
	}
	if s.Name != "Demand surge" {
		t.Fatalf("unexpected name %q", s.Name)
	}
	sched, err := s.Schedule()
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if sched.LevelAt(30) != 35 {
		t.Fatalf("expected level 35 on day 30, got %d", sched.LevelAt(30))
	}
}

func TestLoadScenarioNameDefaultsToID(t *testing.T) {
	path := writeScenario(t, t.TempDir(), "plain.yaml", `
scenario:
  demand: "0,20"
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Name != "plain" {
		t.Fatalf("expected name to default to id, got %q", s.Name)
	}
}

func TestLoadScenarioRejectsBadDemand(t *testing.T) {
	path := writeScenario(t, t.TempDir(), "bad.yaml", `
scenario:
  name: Broken
  demand: "5,20"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for schedule without day 0")
	}
}

func TestListSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "b-steady.yaml", "scenario:\n  demand: \"0,20\"\n")
	writeScenario(t, dir, "a-surge.yaml", "scenario:\n  demand: \"0,20,30,35\"\n")
	writeScenario(t, dir, "broken.yaml", "scenario:\n  demand: \"nope\"\n")
	writeScenario(t, dir, "notes.txt", "not a scenario")

	scenarios, err := List(dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(scenarios) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(scenarios))
	}
	if scenarios[0].ID != "a-surge" || scenarios[1].ID != "b-steady" {
		t.Fatalf("expected sorted ids, got %q, %q", scenarios[0].ID, scenarios[1].ID)
	}
}

func TestListMissingDirIsEmpty(t *testing.T) {
	scenarios, err := List(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(scenarios) != 0 {
		t.Fatalf("expected empty list, got %d", len(scenarios))
	}
}
