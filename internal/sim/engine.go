package sim

import (
	"fmt"
	"math"

	"dealersim/internal/model"
)

// Engine advances a dealership inventory simulation one day at a time.
// It owns its histories exclusively; the caller controls pacing by
// deciding when to call NextDay. There is no in-place reset: to restart
// from day 0, construct a new Engine.
type Engine struct {
	params   model.Params
	schedule model.DemandSchedule

	day       int
	inventory int
	orders    []int
	sales     []int
}

func New(params model.Params, schedule model.DemandSchedule) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("params invalid: %w", err)
	}
	if err := schedule.Validate(); err != nil {
		return nil, fmt.Errorf("schedule invalid: %w", err)
	}
	return &Engine{
		params:    params,
		schedule:  schedule,
		inventory: model.InitialInventory,
	}, nil
}

// Day returns the number of completed simulated days.
func (e *Engine) Day() int { return e.day }

// Inventory returns the current stock level. It can be negative: demand
// is realized in full even when it exceeds stock.
func (e *Engine) Inventory() int { return e.inventory }

// NextDay advances the simulation by exactly one day and returns that
// day's ledger row. The step order matters: the order is placed against
// the pre-update inventory, and only then does stock move.
func (e *Engine) NextDay() LedgerRow {
	day := e.day

	// In-flow: a flat seed shipment while the ordering loop has no
	// history, afterwards whatever was ordered DeliveryDelay days ago.
	// An order index before day 0 means nothing is arriving yet.
	deliveries := 0
	switch {
	case day < model.SeedDays:
		deliveries = model.SeedDeliveries
	case day-e.params.DeliveryDelay >= 0:
		deliveries = e.orders[day-e.params.DeliveryDelay]
	}

	// Out-flow: the scheduled demand, recorded as realized sales with no
	// clamp to available stock.
	demand := e.schedule.LevelAt(day)
	e.sales = append(e.sales, demand)

	perceived := e.perceivedSales()
	desired := perceived * model.CoverageDays
	discrepancy := desired - float64(e.inventory)

	// Order to cover perceived sales plus a fraction of the discrepancy.
	// Stock cannot be returned to the factory, so orders clamp at zero.
	order := int(math.Round(perceived + discrepancy/float64(e.params.ResponseDelay)))
	if order < 0 {
		order = 0
	}
	e.orders = append(e.orders, order)

	start := e.inventory
	e.inventory += deliveries - demand
	e.day++

	return LedgerRow{
		Day:              day,
		Deliveries:       deliveries,
		Demand:           demand,
		PerceivedSales:   perceived,
		DesiredInventory: desired,
		Discrepancy:      discrepancy,
		Order:            order,
		InventoryStart:   start,
		InventoryEnd:     e.inventory,
		Trend:            model.TrendFromNetFlow(deliveries, demand),
	}
}

// Run advances the engine the given number of days and aggregates the
// per-day ledger into a Result.
func (e *Engine) Run(days int) (*Result, error) {
	if days <= 0 {
		return nil, fmt.Errorf("days must be > 0, got %d", days)
	}

	res := &Result{
		Ledger:       make([]LedgerRow, 0, days),
		MinInventory: e.inventory,
		MaxInventory: e.inventory,
	}
	for i := 0; i < days; i++ {
		row := e.NextDay()
		res.Ledger = append(res.Ledger, row)

		if row.InventoryEnd < res.MinInventory {
			res.MinInventory = row.InventoryEnd
		}
		if row.InventoryEnd > res.MaxInventory {
			res.MaxInventory = row.InventoryEnd
		}
		res.TotalOrdered += row.Order
		res.TotalDemand += row.Demand
		if row.InventoryEnd < 0 {
			res.StockoutDays++
		}
	}
	res.FinalInventory = e.inventory
	return res, nil
}

// perceivedSales is the mean of the most recent PerceptionDelay days of
// sales, or of as many days as exist.
func (e *Engine) perceivedSales() float64 {
	window := e.params.PerceptionDelay
	if window > len(e.sales) {
		window = len(e.sales)
	}
	sum := 0
	for _, s := range e.sales[len(e.sales)-window:] {
		sum += s
	}
	return float64(sum) / float64(window)
}
