package sim

import "dealersim/internal/model"

// LedgerRow is one day of per-step output.
// This is the primary artifact for "what happened" in a run.
type LedgerRow struct {
	Day int

	Deliveries int
	Demand     int

	PerceivedSales   float64
	DesiredInventory float64
	Discrepancy      float64
	Order            int

	InventoryStart int
	InventoryEnd   int

	Trend model.Trend
}

type Result struct {
	Ledger []LedgerRow

	FinalInventory int
	MinInventory   int
	MaxInventory   int
	TotalOrdered   int
	TotalDemand    int

	// StockoutDays counts days that ended with negative inventory.
	StockoutDays int
}
