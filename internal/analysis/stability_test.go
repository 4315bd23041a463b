package analysis

import (
	"testing"

	"dealersim/internal/sim"
)

func rowsFromInventory(values []int) []sim.LedgerRow {
	out := make([]sim.LedgerRow, 0, len(values))
	for i, v := range values {
		out = append(out, sim.LedgerRow{Day: i, InventoryEnd: v})
	}
	return out
}

func TestComputeStabilityEmpty(t *testing.T) {
	s := ComputeStability(nil)
	if s.Days != 0 || s.SettlingDay != -1 {
		t.Fatalf("unexpected zero-value stability: %+v", s)
	}
}

func TestComputeStabilityFlatSeries(t *testing.T) {
	s := ComputeStability(rowsFromInventory([]int{200, 200, 200, 200}))
	if s.MinInventory != 200 || s.MaxInventory != 200 {
		t.Fatalf("expected flat min/max 200, got %d/%d", s.MinInventory, s.MaxInventory)
	}
	if s.Amplitude != 0 {
		t.Fatalf("expected zero amplitude, got %f", s.Amplitude)
	}
	if s.SettlingDay != 0 {
		t.Fatalf("expected settled from day 0, got %d", s.SettlingDay)
	}
	if s.StockoutDays != 0 {
		t.Fatalf("expected no stockouts, got %d", s.StockoutDays)
	}
}

func TestComputeStabilityOscillation(t *testing.T) {
	// Overshoot that decays to 200 and stays within the band from day 4.
	s := ComputeStability(rowsFromInventory([]int{200, 320, 80, 260, 205, 198, 201, 200}))
	if s.MinInventory != 80 || s.MaxInventory != 320 {
		t.Fatalf("expected min 80 max 320, got %d/%d", s.MinInventory, s.MaxInventory)
	}
	if s.Amplitude <= 0 {
		t.Fatalf("expected positive amplitude, got %f", s.Amplitude)
	}
	if s.SettlingDay != 4 {
		t.Fatalf("expected settling on day 4, got %d", s.SettlingDay)
	}
}

func TestComputeStabilityNeverSettles(t *testing.T) {
	s := ComputeStability(rowsFromInventory([]int{200, 300, 100, 300, 100}))
	if s.SettlingDay != -1 {
		t.Fatalf("expected never settled, got %d", s.SettlingDay)
	}
}

func TestComputeStabilityCountsStockouts(t *testing.T) {
	s := ComputeStability(rowsFromInventory([]int{100, -10, -50, 40}))
	if s.StockoutDays != 2 {
		t.Fatalf("expected 2 stockout days, got %d", s.StockoutDays)
	}
	if s.MinInventory != -50 {
		t.Fatalf("expected min -50, got %d", s.MinInventory)
	}
}

func TestPercentileSorted(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}
	if got := percentileSorted(sorted, 0); got != 10 {
		t.Fatalf("p0: expected 10, got %f", got)
	}
	if got := percentileSorted(sorted, 1); got != 50 {
		t.Fatalf("p100: expected 50, got %f", got)
	}
	if got := percentileSorted(sorted, 0.5); got != 30 {
		t.Fatalf("p50: expected 30, got %f", got)
	}
	if got := percentileSorted(sorted, 0.25); got != 20 {
		t.Fatalf("p25: expected 20, got %f", got)
	}
}
