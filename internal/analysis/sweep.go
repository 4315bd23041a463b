package analysis

import (
	"fmt"
	"sort"

	"dealersim/internal/model"
	"dealersim/internal/sim"
)

// SweepOptions controls the parameter sweep. The grid covers every
// combination of the three delays between MinDelay and MaxDelay.
type SweepOptions struct {
	Schedule model.DemandSchedule

	Days     int // horizon per run; 0 means 200
	MinDelay int // 0 means 1
	MaxDelay int // 0 means 5
}

// SweepResult pairs one parameter combination with its stability summary.
type SweepResult struct {
	Params model.Params
	Stability
}

// Sweep runs the simulation once per delay combination over a fixed
// horizon and ranks the results ascending by amplitude, so the steadiest
// parameter choices come first.
func Sweep(opts SweepOptions) ([]SweepResult, error) {
	if opts.Days == 0 {
		opts.Days = 200
	}
	if opts.MinDelay == 0 {
		opts.MinDelay = 1
	}
	if opts.MaxDelay == 0 {
		opts.MaxDelay = 5
	}
	if opts.Days < 1 {
		return nil, fmt.Errorf("days must be >= 1, got %d", opts.Days)
	}
	if opts.MinDelay < 1 || opts.MaxDelay < opts.MinDelay {
		return nil, fmt.Errorf("delay bounds invalid: %d..%d", opts.MinDelay, opts.MaxDelay)
	}
	if err := opts.Schedule.Validate(); err != nil {
		return nil, err
	}

	span := opts.MaxDelay - opts.MinDelay + 1
	out := make([]SweepResult, 0, span*span*span)
	for p := opts.MinDelay; p <= opts.MaxDelay; p++ {
		for r := opts.MinDelay; r <= opts.MaxDelay; r++ {
			for d := opts.MinDelay; d <= opts.MaxDelay; d++ {
				params := model.Params{PerceptionDelay: p, ResponseDelay: r, DeliveryDelay: d}
				engine, err := sim.New(params, opts.Schedule)
				if err != nil {
					return nil, err
				}
				res, err := engine.Run(opts.Days)
				if err != nil {
					return nil, err
				}
				out = append(out, SweepResult{
					Params:    params,
					Stability: ComputeStability(res.Ledger),
				})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Amplitude != out[j].Amplitude {
			return out[i].Amplitude < out[j].Amplitude
		}
		// Deterministic order for equal amplitudes.
		a, b := out[i].Params, out[j].Params
		if a.PerceptionDelay != b.PerceptionDelay {
			return a.PerceptionDelay < b.PerceptionDelay
		}
		if a.ResponseDelay != b.ResponseDelay {
			return a.ResponseDelay < b.ResponseDelay
		}
		return a.DeliveryDelay < b.DeliveryDelay
	})
	return out, nil
}
