package analysis

import (
	"math"
	"sort"

	"dealersim/internal/sim"
)

// settlingBand is the tolerance (in cars) around the final inventory level
// within which the series counts as settled.
const settlingBand = 10

// Stability is a run-level summary of how settled the inventory series
// is. Delay parameters that overshoot and oscillate show up as a large
// amplitude and a late (or absent) settling day.
type Stability struct {
	Days int

	MinInventory  int
	MaxInventory  int
	MeanInventory float64

	P05 float64
	P95 float64

	// Amplitude is P95 - P05: the band most of the series moves in.
	Amplitude float64

	// StockoutDays counts days ending with negative inventory.
	StockoutDays int

	// SettlingDay is the first day from which inventory stays within
	// settlingBand of its final level, or -1 if it never settles.
	SettlingDay int
}

func ComputeStability(ledger []sim.LedgerRow) Stability {
	s := Stability{SettlingDay: -1}
	if len(ledger) == 0 {
		return s
	}
	s.Days = len(ledger)

	sum := 0.0
	minv := math.MaxInt
	maxv := math.MinInt
	vals := make([]float64, 0, len(ledger))
	for _, r := range ledger {
		v := r.InventoryEnd
		vals = append(vals, float64(v))
		sum += float64(v)
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
		if v < 0 {
			s.StockoutDays++
		}
	}
	s.MinInventory = minv
	s.MaxInventory = maxv
	s.MeanInventory = sum / float64(len(vals))

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	s.P05 = percentileSorted(sorted, 0.05)
	s.P95 = percentileSorted(sorted, 0.95)
	s.Amplitude = s.P95 - s.P05

	s.SettlingDay = settlingDay(ledger)
	return s
}

func settlingDay(ledger []sim.LedgerRow) int {
	final := ledger[len(ledger)-1].InventoryEnd
	for i := len(ledger) - 1; i >= 0; i-- {
		diff := ledger[i].InventoryEnd - final
		if diff < -settlingBand || diff > settlingBand {
			if i == len(ledger)-1 {
				return -1
			}
			return ledger[i].Day + 1
		}
	}
	return ledger[0].Day
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
