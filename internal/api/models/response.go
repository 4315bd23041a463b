package models

// ErrorResponse is the envelope for every API error.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SimulateResponse is the result of a batch run.
type SimulateResponse struct {
	Status  string          `json:"status"`
	Summary SimulateSummary `json:"summary"`
	Ledger  []LedgerRow     `json:"ledger,omitempty"`
}

// SimulateSummary contains aggregated run results.
type SimulateSummary struct {
	Days           int `json:"days"`
	FinalInventory int `json:"final_inventory"`
	MinInventory   int `json:"min_inventory"`
	MaxInventory   int `json:"max_inventory"`
	TotalOrdered   int `json:"total_ordered"`
	TotalDemand    int `json:"total_demand"`
	StockoutDays   int `json:"stockout_days"`
}

// LedgerRow is one simulated day in the response ledger.
type LedgerRow struct {
	Day              int     `json:"day"`
	Deliveries       int     `json:"deliveries"`
	Demand           int     `json:"demand"`
	PerceivedSales   float64 `json:"perceived_sales"`
	DesiredInventory float64 `json:"desired_inventory"`
	Discrepancy      float64 `json:"discrepancy"`
	Order            int     `json:"order"`
	InventoryStart   int     `json:"inventory_start"`
	InventoryEnd     int     `json:"inventory_end"`
	Trend            string  `json:"trend"` // "RESTOCKING", "STEADY", "DRAWDOWN"
}

// RankResponse is the result of a parameter sweep.
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking is one parameter combination, steadiest first.
type Ranking struct {
	Rank            int     `json:"rank"`
	PerceptionDelay int     `json:"perception_delay"`
	ResponseDelay   int     `json:"response_delay"`
	DeliveryDelay   int     `json:"delivery_delay"`
	Amplitude       float64 `json:"amplitude"`
	MinInventory    int     `json:"min_inventory"`
	MaxInventory    int     `json:"max_inventory"`
	StockoutDays    int     `json:"stockout_days"`
	SettlingDay     int     `json:"settling_day"`
}
