package analysis

import (
	"testing"

	"dealersim/internal/model"
)

func TestSweepCoversGridAndSorts(t *testing.T) {
	results, err := Sweep(SweepOptions{
		Schedule: model.DemandSchedule{{Day: 0, Level: 20}, {Day: 25, Level: 22}},
		Days:     120,
		MinDelay: 1,
		MaxDelay: 3,
	})
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(results) != 27 {
		t.Fatalf("expected 3^3=27 combinations, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Amplitude < results[i-1].Amplitude {
			t.Fatalf("results not sorted by amplitude at index %d: %f < %f",
				i, results[i].Amplitude, results[i-1].Amplitude)
		}
	}
	for _, r := range results {
		if r.Days != 120 {
			t.Fatalf("expected every run to span 120 days, got %d", r.Days)
		}
	}
}

func TestSweepDeterministic(t *testing.T) {
	opts := SweepOptions{
		Schedule: model.DemandSchedule{{Day: 0, Level: 20}},
		Days:     50,
		MinDelay: 1,
		MaxDelay: 2,
	}
	a, err := Sweep(opts)
	if err != nil {
		t.Fatalf("sweep a: %v", err)
	}
	b, err := Sweep(opts)
	if err != nil {
		t.Fatalf("sweep b: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("result %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSweepRejectsBadOptions(t *testing.T) {
	sched := model.DemandSchedule{{Day: 0, Level: 20}}
	if _, err := Sweep(SweepOptions{Schedule: sched, Days: -1}); err == nil {
		t.Fatal("expected error for negative days")
	}
	if _, err := Sweep(SweepOptions{Schedule: sched, MinDelay: 4, MaxDelay: 2}); err == nil {
		t.Fatal("expected error for inverted delay bounds")
	}
	if _, err := Sweep(SweepOptions{Schedule: model.DemandSchedule{{Day: 3, Level: 20}}}); err == nil {
		t.Fatal("expected error for schedule without day 0")
	}
}
